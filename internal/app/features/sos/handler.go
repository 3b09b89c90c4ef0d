// internal/app/features/sos/handler.go
package sos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	alertstore "github.com/Ayush8123/sangamwebapp/internal/app/store/alerts"
	userstore "github.com/Ayush8123/sangamwebapp/internal/app/store/users"
	"github.com/Ayush8123/sangamwebapp/internal/app/system/httpjson"
	"github.com/Ayush8123/sangamwebapp/internal/app/system/notify"
	"github.com/Ayush8123/sangamwebapp/internal/app/system/sanitize"
	"github.com/Ayush8123/sangamwebapp/internal/app/system/timeouts"
	"github.com/Ayush8123/sangamwebapp/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Defaults applied when the trigger request omits the free-text fields.
const (
	DefaultLocation = "Unknown"
	DefaultMessage  = "Emergency SOS triggered"
)

// Handler serves the SOS alert operations.
type Handler struct {
	Users    *userstore.Store
	Alerts   *alertstore.Store
	Notifier notify.Notifier
	Log      *zap.Logger
}

// NewHandler constructs an SOS Handler backed by the given database and
// notifier.
func NewHandler(db *mongo.Database, notifier notify.Notifier, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userstore.New(db),
		Alerts:   alertstore.New(db),
		Notifier: notifier,
		Log:      logger,
	}
}

type triggerRequest struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// Trigger handles POST /@{user_id}/sos.
//
// The body is optional. The alert snapshots the triggering user and every
// currently resolvable linked contact, then fans out through the notifier.
// Contacts whose record no longer exists are skipped from the snapshot but
// remain in the stored family_notified id list, matching what was linked at
// trigger time.
func (h *Handler) Trigger(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	var req triggerRequest
	// A missing or malformed body means "use the defaults".
	_ = json.NewDecoder(r.Body).Decode(&req)

	location := sanitize.Text(req.Location)
	if location == "" {
		location = DefaultLocation
	}
	message := sanitize.Text(req.Message)
	if message == "" {
		message = DefaultMessage
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.fail(w, err, "SOS alert failed")
		return
	}

	cards, err := h.Users.ResolveCards(ctx, u.FamilyMembers)
	if err != nil {
		h.fail(w, err, "SOS alert failed")
		return
	}

	alert, err := h.Alerts.Create(ctx, models.Alert{
		UserID:         u.UserID,
		Status:         models.AlertStatusActive,
		Location:       location,
		Message:        message,
		FamilyNotified: u.FamilyMembers,
		UserDetails:    u.Card(),
		FamilyMembers:  cards,
	})
	if err != nil {
		h.fail(w, err, "SOS alert failed")
		return
	}

	h.Notifier.AlertTriggered(ctx, &alert)

	httpjson.Write(w, http.StatusOK, map[string]any{
		"success":                 true,
		"message":                 "SOS alert triggered successfully",
		"alert_id":                alert.ID.Hex(),
		"user_id":                 u.UserID,
		"triggered_at":            alert.TriggeredAt,
		"family_members_notified": len(cards),
		"family_members":          cards,
		"status":                  alert.Status,
	})
}

// History handles GET /@{user_id}/sos/history.
//
// Alerts are summarized newest first. History is scoped by the path user id
// only; there is no ownership guard beyond that.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	exists, err := h.Users.Exists(ctx, userID)
	if err != nil {
		h.fail(w, err, "Failed to get SOS history")
		return
	}
	if !exists {
		httpjson.Error(w, http.StatusNotFound, "User not found")
		return
	}

	alerts, err := h.Alerts.ListByUser(ctx, userID)
	if err != nil {
		h.fail(w, err, "Failed to get SOS history")
		return
	}

	summaries := make([]map[string]any, 0, len(alerts))
	for _, a := range alerts {
		summaries = append(summaries, map[string]any{
			"alert_id":                a.ID.Hex(),
			"triggered_at":            a.TriggeredAt,
			"status":                  a.Status,
			"location":                a.Location,
			"message":                 a.Message,
			"family_members_notified": len(a.FamilyNotified),
		})
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"success":      true,
		"user_id":      userID,
		"alerts":       summaries,
		"total_alerts": len(summaries),
	})
}

// Resolve handles POST /@{user_id}/sos/{alert_id}/resolve.
//
// Only the alert's owner may resolve it. Resolving an already-resolved alert
// succeeds again and overwrites resolved_at; the transition is deliberately
// unguarded.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	alertID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "alert_id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "SOS alert not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	alert, err := h.Alerts.GetByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, alertstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "SOS alert not found")
			return
		}
		h.fail(w, err, "Failed to resolve SOS alert")
		return
	}

	if alert.UserID != userID {
		httpjson.Error(w, http.StatusForbidden, "Unauthorized access to SOS alert")
		return
	}

	resolved, err := h.Alerts.Resolve(ctx, alertID)
	if err != nil {
		if errors.Is(err, alertstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "SOS alert not found")
			return
		}
		h.fail(w, err, "Failed to resolve SOS alert")
		return
	}

	h.Notifier.AlertResolved(ctx, resolved)

	httpjson.Write(w, http.StatusOK, map[string]any{
		"success":     true,
		"message":     "SOS alert resolved successfully",
		"alert_id":    resolved.ID.Hex(),
		"resolved_at": resolved.ResolvedAt,
	})
}

func (h *Handler) fail(w http.ResponseWriter, err error, msg string) {
	h.Log.Error("sos operation failed", zap.Error(err))
	httpjson.Error(w, http.StatusInternalServerError, msg+": "+err.Error())
}
