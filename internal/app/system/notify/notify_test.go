package notify_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Ayush8123/sangamwebapp/internal/app/system/notify"
	"github.com/Ayush8123/sangamwebapp/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func sampleAlert() *models.Alert {
	now := time.Now().UTC()
	return &models.Alert{
		ID:          primitive.NewObjectID(),
		UserID:      "SANGAM_AAAA1111",
		TriggeredAt: now,
		Status:      models.AlertStatusActive,
		Location:    "Downtown",
		Message:     "Emergency SOS triggered",
		UserDetails: models.ContactCard{
			UserID:       "SANGAM_AAAA1111",
			Username:     "asha",
			Email:        "asha@example.com",
			MobileNumber: "9876543210",
		},
		FamilyNotified: []string{"SANGAM_BBBB2222"},
		FamilyMembers: []models.ContactCard{
			{UserID: "SANGAM_BBBB2222", Username: "ravi", Email: "ravi@example.com", MobileNumber: "9876500000"},
		},
	}
}

func TestAlertTriggered_Transcript(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := notify.NewLogNotifier(zap.New(core), true)

	n.AlertTriggered(context.Background(), sampleAlert())

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected summary + transcript entries, got %d", len(entries))
	}

	var transcript string
	for _, f := range entries[1].Context {
		if f.Key == "transcript" {
			transcript = f.String
		}
	}
	for _, want := range []string{"SOS ALERT TRIGGERED", "asha", "ravi (SANGAM_BBBB2222)", "Downtown", "NOTIFICATION SIMULATION"} {
		if !strings.Contains(transcript, want) {
			t.Errorf("transcript missing %q", want)
		}
	}
}

func TestAlertTriggered_NoContacts(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := notify.NewLogNotifier(zap.New(core), true)

	alert := sampleAlert()
	alert.FamilyNotified = nil
	alert.FamilyMembers = nil
	n.AlertTriggered(context.Background(), alert)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	var transcript string
	for _, f := range entries[1].Context {
		if f.Key == "transcript" {
			transcript = f.String
		}
	}
	if !strings.Contains(transcript, "No family members registered") {
		t.Errorf("transcript missing empty-contacts note:\n%s", transcript)
	}
}

func TestAlertTriggered_TranscriptDisabled(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := notify.NewLogNotifier(zap.New(core), false)

	n.AlertTriggered(context.Background(), sampleAlert())

	if got := len(logs.All()); got != 1 {
		t.Fatalf("expected only the structured summary, got %d entries", got)
	}
}

func TestAlertResolved(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := notify.NewLogNotifier(zap.New(core), true)

	alert := sampleAlert()
	now := time.Now().UTC()
	alert.Status = models.AlertStatusResolved
	alert.ResolvedAt = &now
	n.AlertResolved(context.Background(), alert)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := map[string]string{}
	for _, f := range entries[0].Context {
		fields[f.Key] = f.String
	}
	if fields["user_id"] != alert.UserID {
		t.Errorf("user_id field: got %q", fields["user_id"])
	}
	if fields["resolved_at"] == "" {
		t.Error("expected resolved_at field to be set")
	}
}
