package userstore_test

import (
	"errors"
	"sync"
	"testing"

	userstore "github.com/Ayush8123/sangamwebapp/internal/app/store/users"
	"github.com/Ayush8123/sangamwebapp/internal/app/system/userid"
	"github.com/Ayush8123/sangamwebapp/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, "asha", "asha@example.com", "9876543210")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !userid.IsWellFormed(u.UserID) {
		t.Errorf("generated id %q is not well formed", u.UserID)
	}
	if len(u.FamilyMembers) != 0 {
		t.Errorf("expected empty family list, got %v", u.FamilyMembers)
	}
	if !u.IsActive {
		t.Error("expected new user to be active")
	}
	if u.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if u.LastLogin != nil {
		t.Error("expected LastLogin to be nil on a fresh user")
	}

	// Round-trip through the store.
	got, err := store.GetByID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Email != "asha@example.com" {
		t.Errorf("Email: got %q", got.Email)
	}
	if got.FamilyMembers == nil {
		t.Error("expected family list to round-trip as an empty slice")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, "asha", "asha@example.com", "9876543210"); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, "imposter", "asha@example.com", "9876500000")
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, "SANGAM_NOPE0000")
	if !errors.Is(err, userstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_TouchLastLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "asha", "asha@example.com", "9876543210")

	stamp, err := store.TouchLastLogin(ctx, u.UserID)
	if err != nil {
		t.Fatalf("TouchLastLogin failed: %v", err)
	}
	if stamp.IsZero() {
		t.Error("expected a non-zero stamp")
	}

	got, err := store.GetByID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.LastLogin == nil {
		t.Fatal("expected last_login to be stored")
	}

	if _, err := store.TouchLastLogin(ctx, "SANGAM_NOPE0000"); !errors.Is(err, userstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestStore_AddFamilyMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fixtures.CreateUser(ctx, "asha", "asha@example.com", "9876543210")
	b := fixtures.CreateUser(ctx, "ravi", "ravi@example.com", "9876500000")

	count, err := store.AddFamilyMember(ctx, a.UserID, b.UserID)
	if err != nil {
		t.Fatalf("AddFamilyMember failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count: got %d, want 1", count)
	}

	// Second add of the same contact is rejected.
	if _, err := store.AddFamilyMember(ctx, a.UserID, b.UserID); !errors.Is(err, userstore.ErrAlreadyLinked) {
		t.Errorf("expected ErrAlreadyLinked, got %v", err)
	}

	// Unknown user.
	if _, err := store.AddFamilyMember(ctx, "SANGAM_NOPE0000", b.UserID); !errors.Is(err, userstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_RemoveFamilyMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fixtures.CreateUser(ctx, "asha", "asha@example.com", "9876543210")
	b := fixtures.CreateUser(ctx, "ravi", "ravi@example.com", "9876500000")
	fixtures.LinkFamily(ctx, a.UserID, b.UserID)

	count, err := store.RemoveFamilyMember(ctx, a.UserID, b.UserID)
	if err != nil {
		t.Fatalf("RemoveFamilyMember failed: %v", err)
	}
	if count != 0 {
		t.Errorf("count: got %d, want 0", count)
	}

	// Removing again: not linked anymore.
	if _, err := store.RemoveFamilyMember(ctx, a.UserID, b.UserID); !errors.Is(err, userstore.ErrNotLinked) {
		t.Errorf("expected ErrNotLinked, got %v", err)
	}

	// Unknown user.
	if _, err := store.RemoveFamilyMember(ctx, "SANGAM_NOPE0000", b.UserID); !errors.Is(err, userstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// Concurrent adds to the same user must not lose entries: the link is a single
// conditional update at the store, not a read-modify-write in the handler.
func TestStore_AddFamilyMember_Concurrent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "asha", "asha@example.com", "9876543210")
	members := make([]string, 8)
	for i := range members {
		u := fixtures.CreateUser(ctx, "m", string(rune('a'+i))+"@example.com", "9876500000")
		members[i] = u.UserID
	}

	var wg sync.WaitGroup
	for _, id := range members {
		wg.Add(1)
		go func(memberID string) {
			defer wg.Done()
			if _, err := store.AddFamilyMember(ctx, owner.UserID, memberID); err != nil {
				t.Errorf("concurrent add of %s failed: %v", memberID, err)
			}
		}(id)
	}
	wg.Wait()

	got, err := store.GetByID(ctx, owner.UserID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.FamilyMembers) != len(members) {
		t.Errorf("family list lost updates: got %d entries, want %d", len(got.FamilyMembers), len(members))
	}
}

func TestStore_ResolveCards_SkipsMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	b := fixtures.CreateUser(ctx, "ravi", "ravi@example.com", "9876500000")
	c := fixtures.CreateUser(ctx, "mira", "mira@example.com", "9876511111")

	// Delete one target directly, leaving a dangling reference.
	fixtures.DeleteUser(ctx, b.UserID)

	cards, err := store.ResolveCards(ctx, []string{b.UserID, c.UserID})
	if err != nil {
		t.Fatalf("ResolveCards failed: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	if cards[0].UserID != c.UserID {
		t.Errorf("card: got %q, want %q", cards[0].UserID, c.UserID)
	}
	if cards[0].Username != "mira" {
		t.Errorf("username: got %q", cards[0].Username)
	}
}

func TestStore_ResolveCards_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cards, err := store.ResolveCards(ctx, nil)
	if err != nil {
		t.Fatalf("ResolveCards failed: %v", err)
	}
	if cards == nil || len(cards) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", cards)
	}
}
