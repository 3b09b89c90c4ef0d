// internal/domain/models/user.go
package models

import "time"

// User is an identity record plus its list of linked family-member ids.
//
// The document _id is the generated user id (e.g. "SANGAM_7K2QX9BD"), not a
// Mongo ObjectID, so the wire-visible id and the storage key are the same
// value.
type User struct {
	UserID        string     `bson:"_id" json:"user_id"`
	Username      string     `bson:"username" json:"username"`
	Email         string     `bson:"email" json:"email"`
	MobileNumber  string     `bson:"mobile_number" json:"mobile_number"`
	FamilyMembers []string   `bson:"family_members" json:"family_members"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	LastLogin     *time.Time `bson:"last_login" json:"last_login"`
	IsActive      bool       `bson:"is_active" json:"is_active"`

	// UpdatedAt is stamped whenever the family list is mutated.
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ContactCard is the public slice of a user's identity that gets embedded in
// alert snapshots and returned by family listings.
type ContactCard struct {
	UserID       string `bson:"user_id" json:"user_id"`
	Username     string `bson:"username" json:"username"`
	Email        string `bson:"email" json:"email"`
	MobileNumber string `bson:"mobile_number" json:"mobile_number"`
	IsActive     bool   `bson:"is_active,omitempty" json:"is_active,omitempty"`
}

// Card returns the user's public contact card.
func (u *User) Card() ContactCard {
	return ContactCard{
		UserID:       u.UserID,
		Username:     u.Username,
		Email:        u.Email,
		MobileNumber: u.MobileNumber,
		IsActive:     u.IsActive,
	}
}
