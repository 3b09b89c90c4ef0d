// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Ayush8123/sangamwebapp/internal/app/system/userid"
	"github.com/Ayush8123/sangamwebapp/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no user record exists for the given id.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a user with this email already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrAlreadyLinked is returned when the contact id is already in the family list.
	ErrAlreadyLinked = errors.New("family member already added")
	// ErrNotLinked is returned when the contact id is not in the family list.
	ErrNotLinked = errors.New("family member not in list")
)

// maxIDAttempts bounds regeneration when a generated id collides with an
// existing document key.
const maxIDAttempts = 5

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a new user with a freshly generated id, an empty family list,
// and is_active set. The generated id is the document key, so an id collision
// surfaces as a duplicate-key error and the insert is retried with a new id.
// A duplicate on the unique email index returns ErrDuplicateEmail.
func (s *Store) Create(ctx context.Context, username, email, mobile string) (models.User, error) {
	u := models.User{
		Username:      username,
		Email:         email,
		MobileNumber:  mobile,
		FamilyMembers: []string{},
		CreatedAt:     time.Now().UTC(),
		IsActive:      true,
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := userid.New()
		if err != nil {
			return models.User{}, err
		}
		u.UserID = id

		_, err = s.c.InsertOne(ctx, u)
		if err == nil {
			return u, nil
		}
		if wafflemongo.IsDup(err) {
			if strings.Contains(err.Error(), "email") {
				return models.User{}, ErrDuplicateEmail
			}
			// _id collision: regenerate and try again.
			continue
		}
		return models.User{}, err
	}
	return models.User{}, errors.New("userstore: exhausted id generation attempts")
}

// GetByID loads a user by id. Returns ErrNotFound if no record exists.
func (s *Store) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Exists reports whether a user record exists for the given id.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	proj := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := s.c.FindOne(ctx, bson.M{"_id": id}, proj).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// TouchLastLogin stamps last_login with the current UTC time and returns the
// stamp. Returns ErrNotFound if the user does not exist.
func (s *Store) TouchLastLogin(ctx context.Context, id string) (time.Time, error) {
	now := time.Now().UTC()
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"last_login": now}})
	if err != nil {
		return time.Time{}, err
	}
	if res.MatchedCount == 0 {
		return time.Time{}, ErrNotFound
	}
	return now, nil
}

// AddFamilyMember appends memberID to the user's family list and returns the
// new list length. The append is a single conditional update ($addToSet
// guarded by $ne), so concurrent adds to the same user cannot lose entries.
// Returns ErrAlreadyLinked if the id is already present and ErrNotFound if the
// user record is absent.
func (s *Store) AddFamilyMember(ctx context.Context, userID, memberID string) (int, error) {
	filter := bson.M{"_id": userID, "family_members": bson.M{"$ne": memberID}}
	update := bson.M{
		"$addToSet": bson.M{"family_members": memberID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.User
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&u)
	if err == nil {
		return len(u.FamilyMembers), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, err
	}

	// The filter failed either because the user is missing or because the
	// member is already linked; tell the two apart with an existence check.
	exists, err := s.Exists(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrNotFound
	}
	return 0, ErrAlreadyLinked
}

// RemoveFamilyMember removes memberID from the user's family list and returns
// the new list length. Like AddFamilyMember this is one conditional update
// ($pull guarded by membership). Returns ErrNotLinked if the id is not in the
// list and ErrNotFound if the user record is absent.
func (s *Store) RemoveFamilyMember(ctx context.Context, userID, memberID string) (int, error) {
	filter := bson.M{"_id": userID, "family_members": memberID}
	update := bson.M{
		"$pull": bson.M{"family_members": memberID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.User
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&u)
	if err == nil {
		return len(u.FamilyMembers), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, err
	}

	exists, err := s.Exists(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrNotFound
	}
	return 0, ErrNotLinked
}

// ResolveCards resolves each id to its current contact card, preserving list
// order. Ids whose record no longer exists are silently skipped, so a contact
// deleted out from under a family list never breaks listing or alert fan-out.
func (s *Store) ResolveCards(ctx context.Context, ids []string) ([]models.ContactCard, error) {
	cards := []models.ContactCard{}
	if len(ids) == 0 {
		return cards, nil
	}

	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	byID := make(map[string]models.ContactCard, len(ids))
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		byID[u.UserID] = u.Card()
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	for _, id := range ids {
		if card, ok := byID[id]; ok {
			cards = append(cards, card)
		}
	}
	return cards, nil
}
