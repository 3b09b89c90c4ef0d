// internal/app/features/auth/handler.go
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	userstore "github.com/Ayush8123/sangamwebapp/internal/app/store/users"
	"github.com/Ayush8123/sangamwebapp/internal/app/system/httpjson"
	"github.com/Ayush8123/sangamwebapp/internal/app/system/inputval"
	"github.com/Ayush8123/sangamwebapp/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves registration and login.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs an auth Handler backed by the given database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users: userstore.New(db),
		Log:   logger,
	}
}

type registerRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
}

// Register handles POST /register.
//
// 201 on success with the created identity fields; 400 on a missing or
// malformed field; 409 when the email is already registered.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	// Field order matters for the error message: username, email, mobile.
	for _, f := range []struct{ name, value string }{
		{"username", req.Username},
		{"email", req.Email},
		{"mobile_number", req.MobileNumber},
	} {
		if strings.TrimSpace(f.value) == "" {
			httpjson.Error(w, http.StatusBadRequest, "Missing required field: "+f.name)
			return
		}
	}
	if !inputval.IsValidEmail(req.Email) {
		httpjson.Error(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if !inputval.IsValidMobile(req.MobileNumber) {
		httpjson.Error(w, http.StatusBadRequest, "Invalid mobile number")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.Create(ctx, strings.TrimSpace(req.Username), strings.TrimSpace(req.Email), strings.TrimSpace(req.MobileNumber))
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.Error(w, http.StatusConflict, "User with this email already exists")
			return
		}
		h.Log.Error("registration failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Registration failed: "+err.Error())
		return
	}

	h.Log.Info("user registered", zap.String("user_id", u.UserID))
	httpjson.Write(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "User registered successfully",
		"user_id": u.UserID,
		"data": map[string]any{
			"username":      u.Username,
			"email":         u.Email,
			"mobile_number": u.MobileNumber,
		},
	})
}

type loginRequest struct {
	UserID string `json:"user_id"`
}

// Login handles POST /login.
//
// Login is a stateless lookup keyed by user id: it stamps last_login and
// returns the stored identity fields plus the current family id list. No
// session or token is issued.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		httpjson.Error(w, http.StatusBadRequest, "User ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.Log.Error("login failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Login failed: "+err.Error())
		return
	}

	if _, err := h.Users.TouchLastLogin(ctx, u.UserID); err != nil {
		h.Log.Error("login stamp failed", zap.String("user_id", u.UserID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Login failed: "+err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"user_id": u.UserID,
		"data": map[string]any{
			"username":       u.Username,
			"email":          u.Email,
			"mobile_number":  u.MobileNumber,
			"family_members": u.FamilyMembers,
		},
	})
}
