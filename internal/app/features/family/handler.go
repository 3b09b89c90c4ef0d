// internal/app/features/family/handler.go
package family

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	userstore "github.com/Ayush8123/sangamwebapp/internal/app/store/users"
	"github.com/Ayush8123/sangamwebapp/internal/app/system/httpjson"
	"github.com/Ayush8123/sangamwebapp/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the family-member link operations. Links are directional:
// adding B to A's list says nothing about B's list.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a family Handler backed by the given database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users: userstore.New(db),
		Log:   logger,
	}
}

type memberRequest struct {
	FamilyMemberID string `json:"family_member_id"`
}

func decodeMemberID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.FamilyMemberID) == "" {
		httpjson.Error(w, http.StatusBadRequest, "Family member ID is required")
		return "", false
	}
	return strings.TrimSpace(req.FamilyMemberID), true
}

// Add handles POST /@{user_id}/add_family.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	memberID, ok := decodeMemberID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Both ends of the link must exist; the user check comes first so the
	// caller learns about their own record before the contact's.
	exists, err := h.Users.Exists(ctx, userID)
	if err != nil {
		h.fail(w, err, "Failed to add family member")
		return
	}
	if !exists {
		httpjson.Error(w, http.StatusNotFound, "User not found")
		return
	}

	member, err := h.Users.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Family member not found")
			return
		}
		h.fail(w, err, "Failed to add family member")
		return
	}

	count, err := h.Users.AddFamilyMember(ctx, userID, memberID)
	if err != nil {
		switch {
		case errors.Is(err, userstore.ErrAlreadyLinked):
			httpjson.Error(w, http.StatusConflict, "Family member already added")
		case errors.Is(err, userstore.ErrNotFound):
			httpjson.Error(w, http.StatusNotFound, "User not found")
		default:
			h.fail(w, err, "Failed to add family member")
		}
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"success":              true,
		"message":              "Family member added successfully",
		"user_id":              userID,
		"family_member":        member.Card(),
		"total_family_members": count,
	})
}

// List handles GET /@{user_id}/family.
//
// Each stored id is resolved to its current identity; ids whose record no
// longer exists are silently omitted.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.fail(w, err, "Failed to get family members")
		return
	}

	cards, err := h.Users.ResolveCards(ctx, u.FamilyMembers)
	if err != nil {
		h.fail(w, err, "Failed to get family members")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"success":        true,
		"user_id":        userID,
		"family_members": cards,
		"total_count":    len(cards),
	})
}

// Remove handles POST /@{user_id}/remove_family.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	memberID, ok := decodeMemberID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	count, err := h.Users.RemoveFamilyMember(ctx, userID, memberID)
	if err != nil {
		switch {
		case errors.Is(err, userstore.ErrNotFound):
			httpjson.Error(w, http.StatusNotFound, "User not found")
		case errors.Is(err, userstore.ErrNotLinked):
			httpjson.Error(w, http.StatusNotFound, "Family member not found in your family list")
		default:
			h.fail(w, err, "Failed to remove family member")
		}
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"success":              true,
		"message":              "Family member removed successfully",
		"user_id":              userID,
		"removed_member_id":    memberID,
		"total_family_members": count,
	})
}

func (h *Handler) fail(w http.ResponseWriter, err error, msg string) {
	h.Log.Error("family operation failed", zap.Error(err))
	httpjson.Error(w, http.StatusInternalServerError, msg+": "+err.Error())
}
