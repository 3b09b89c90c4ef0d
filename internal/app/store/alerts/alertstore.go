// internal/app/store/alerts/alertstore.go
package alertstore

import (
	"context"
	"errors"
	"time"

	"github.com/Ayush8123/sangamwebapp/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no alert record exists for the given id.
var ErrNotFound = errors.New("alert not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("sos_alerts")}
}

// Create inserts a new alert. The id is assigned here; status and trigger time
// default to active/now when the caller leaves them zero.
func (s *Store) Create(ctx context.Context, a models.Alert) (models.Alert, error) {
	a.ID = primitive.NewObjectID()
	if a.Status == "" {
		a.Status = models.AlertStatusActive
	}
	if a.TriggeredAt.IsZero() {
		a.TriggeredAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Alert{}, err
	}
	return a, nil
}

// GetByID loads an alert by id. Returns ErrNotFound if no record exists.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Alert, error) {
	var a models.Alert
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListByUser returns all alerts owned by userID, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.Alert, error) {
	opts := options.Find().SetSort(bson.D{{Key: "triggered_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	alerts := []models.Alert{}
	if err := cur.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// Resolve sets the alert's status to resolved and stamps resolved_at,
// returning the updated record. Resolving an already-resolved alert succeeds
// and overwrites the stamp; there is deliberately no previous-state guard.
func (s *Store) Resolve(ctx context.Context, id primitive.ObjectID) (*models.Alert, error) {
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"status":      models.AlertStatusResolved,
		"resolved_at": now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var a models.Alert
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
