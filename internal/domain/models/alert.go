// internal/domain/models/alert.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Alert status values. The only allowed transition is active → resolved.
const (
	AlertStatusActive   = "active"
	AlertStatusResolved = "resolved"
)

// Alert is a single SOS event.
//
// Once created, UserID, TriggeredAt, and the contact snapshots never change;
// only Status and ResolvedAt do. The snapshots capture the triggering user and
// each notified contact as they were at trigger time, so later profile edits
// or unlinks do not rewrite alert history.
type Alert struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"alert_id"`
	UserID         string             `bson:"user_id" json:"user_id"`
	TriggeredAt    time.Time          `bson:"triggered_at" json:"triggered_at"`
	Status         string             `bson:"status" json:"status"`
	Location       string             `bson:"location" json:"location"`
	Message        string             `bson:"message" json:"message"`
	FamilyNotified []string           `bson:"family_notified" json:"family_notified"`
	UserDetails    ContactCard        `bson:"user_details" json:"user_details"`
	FamilyMembers  []ContactCard      `bson:"family_members" json:"family_members"`
	ResolvedAt     *time.Time         `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
}
