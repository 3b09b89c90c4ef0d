// internal/app/system/notify/notify.go

// Package notify defines the alert fan-out boundary. Dispatch here is a
// simulation: the shipped implementation writes a human-readable transcript to
// the operational log instead of sending SMS/email/push, and offers no
// delivery confirmation or retry. Handlers depend on the Notifier interface so
// a real dispatcher can be injected without touching them.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ayush8123/sangamwebapp/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier receives alert lifecycle events for fan-out to linked contacts.
type Notifier interface {
	AlertTriggered(ctx context.Context, alert *models.Alert)
	AlertResolved(ctx context.Context, alert *models.Alert)
}

// LogNotifier is the simulated dispatcher. Each channel "send" is logged with
// a generated dispatch reference so transcripts from overlapping alerts can be
// told apart.
type LogNotifier struct {
	log        *zap.Logger
	transcript bool
}

// NewLogNotifier creates a LogNotifier. When transcript is false only the
// structured summary lines are emitted.
func NewLogNotifier(logger *zap.Logger, transcript bool) *LogNotifier {
	return &LogNotifier{log: logger, transcript: transcript}
}

// AlertTriggered logs the SOS fan-out for the given alert.
func (n *LogNotifier) AlertTriggered(ctx context.Context, alert *models.Alert) {
	n.log.Info("SOS alert triggered",
		zap.String("alert_id", alert.ID.Hex()),
		zap.String("user_id", alert.UserID),
		zap.String("location", alert.Location),
		zap.Int("family_members_notified", len(alert.FamilyMembers)),
	)

	if !n.transcript {
		return
	}
	n.log.Info("notification transcript", zap.String("transcript", triggerTranscript(alert)))
}

// AlertResolved logs the resolution of the given alert.
func (n *LogNotifier) AlertResolved(ctx context.Context, alert *models.Alert) {
	resolvedAt := ""
	if alert.ResolvedAt != nil {
		resolvedAt = alert.ResolvedAt.Format("2006-01-02 15:04:05 UTC")
	}
	n.log.Info("SOS alert resolved",
		zap.String("alert_id", alert.ID.Hex()),
		zap.String("user_id", alert.UserID),
		zap.String("resolved_at", resolvedAt),
	)
}

func triggerTranscript(alert *models.Alert) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)

	fmt.Fprintf(&b, "\n%s\nSOS ALERT TRIGGERED\n%s\n", rule, rule)
	fmt.Fprintf(&b, "User ID: %s\n", alert.UserID)
	fmt.Fprintf(&b, "Username: %s\n", alert.UserDetails.Username)
	fmt.Fprintf(&b, "Email: %s\n", alert.UserDetails.Email)
	fmt.Fprintf(&b, "Mobile: %s\n", alert.UserDetails.MobileNumber)
	fmt.Fprintf(&b, "Location: %s\n", alert.Location)
	fmt.Fprintf(&b, "Message: %s\n", alert.Message)
	fmt.Fprintf(&b, "Triggered at: %s\n", alert.TriggeredAt.Format("2006-01-02 15:04:05 UTC"))

	fmt.Fprintf(&b, "\nFAMILY MEMBERS NOTIFIED:\n%s\n", strings.Repeat("-", 40))
	if len(alert.FamilyMembers) == 0 {
		b.WriteString("   No family members registered\n")
		b.WriteString("   Consider adding family members for emergency contacts\n")
	}
	for i, member := range alert.FamilyMembers {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, member.Username, member.UserID)
		fmt.Fprintf(&b, "   Email: %s\n", member.Email)
		fmt.Fprintf(&b, "   Mobile: %s\n", member.MobileNumber)
	}

	fmt.Fprintf(&b, "%s\nNOTIFICATION SIMULATION:\n", rule)
	for _, channel := range []string{"sms", "email", "push"} {
		fmt.Fprintf(&b, "   - %s dispatch ref %s (simulated, no delivery)\n", channel, uuid.NewString())
	}
	b.WriteString("   - Emergency services contacted (if configured)\n")
	b.WriteString(rule + "\n")

	return b.String()
}
