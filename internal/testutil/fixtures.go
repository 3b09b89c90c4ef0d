// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/Ayush8123/sangamwebapp/internal/app/system/userid"
	"github.com/Ayush8123/sangamwebapp/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user document directly and returns it.
func (f *Fixtures) CreateUser(ctx context.Context, username, email, mobile string) models.User {
	f.t.Helper()

	id, err := userid.New()
	if err != nil {
		f.t.Fatalf("generate user id: %v", err)
	}
	u := models.User{
		UserID:        id,
		Username:      username,
		Email:         email,
		MobileNumber:  mobile,
		FamilyMembers: []string{},
		CreatedAt:     time.Now().UTC(),
		IsActive:      true,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("create test user: %v", err)
	}
	return u
}

// LinkFamily appends memberID to the user's family list directly.
func (f *Fixtures) LinkFamily(ctx context.Context, userID, memberID string) {
	f.t.Helper()

	_, err := f.db.Collection("users").UpdateByID(ctx, userID, map[string]any{
		"$addToSet": map[string]any{"family_members": memberID},
	})
	if err != nil {
		f.t.Fatalf("link family member: %v", err)
	}
}

// DeleteUser removes a user document directly, bypassing any application
// logic. Used to simulate dangling family-member references.
func (f *Fixtures) DeleteUser(ctx context.Context, userID string) {
	f.t.Helper()

	if _, err := f.db.Collection("users").DeleteOne(ctx, map[string]any{"_id": userID}); err != nil {
		f.t.Fatalf("delete test user: %v", err)
	}
}

// CreateAlert inserts an alert document for the given owner and returns it.
func (f *Fixtures) CreateAlert(ctx context.Context, owner models.User, triggeredAt time.Time) models.Alert {
	f.t.Helper()

	a := models.Alert{
		ID:             primitive.NewObjectID(),
		UserID:         owner.UserID,
		TriggeredAt:    triggeredAt,
		Status:         models.AlertStatusActive,
		Location:       "Unknown",
		Message:        "Emergency SOS triggered",
		FamilyNotified: owner.FamilyMembers,
		UserDetails:    owner.Card(),
		FamilyMembers:  []models.ContactCard{},
	}
	if _, err := f.db.Collection("sos_alerts").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("create test alert: %v", err)
	}
	return a
}
