package repository

import (
	"errors"
	"testing"

	"github.com/yourorg/starchart/internal/domain"
)

func testSeed() []domain.Constellation {
	return []domain.Constellation{
		{ID: "aries", Name: "Aries", Symbol: "♈"},
		{ID: "taurus", Name: "Taurus", Symbol: "♉"},
		{ID: "gemini", Name: "Gemini", Symbol: "♊"},
	}
}

func TestGetAllConstellationsSeedOrder(t *testing.T) {
	s := NewMemoryStore(testSeed(), nil)

	all, err := s.GetAllConstellations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	for i, want := range []string{"aries", "taurus", "gemini"} {
		if all[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, all[i].ID)
		}
	}
}

func TestGetConstellationRoundTrip(t *testing.T) {
	s := NewMemoryStore(testSeed(), nil)

	for _, id := range []string{"aries", "taurus", "gemini"} {
		c, err := s.GetConstellation(id)
		if err != nil {
			t.Fatalf("get %s failed: %v", id, err)
		}
		if c.ID != id {
			t.Errorf("expected id %s, got %s", id, c.ID)
		}
	}
}

func TestGetConstellationNotFound(t *testing.T) {
	s := NewMemoryStore(testSeed(), nil)

	_, err := s.GetConstellation("nonexistent")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDemoUserSeeded(t *testing.T) {
	s := NewMemoryStore(testSeed(), nil)

	u, err := s.GetUser(1)
	if err != nil {
		t.Fatalf("expected demo user: %v", err)
	}
	if u.Username != "demo" {
		t.Errorf("expected username demo, got %s", u.Username)
	}

	byName, err := s.GetUserByUsername("demo")
	if err != nil {
		t.Fatalf("username lookup failed: %v", err)
	}
	if byName.ID != 1 {
		t.Errorf("expected user id 1, got %d", byName.ID)
	}
}

func TestCreateUserSequentialIDs(t *testing.T) {
	s := NewMemoryStore(testSeed(), nil)

	u2, _ := s.CreateUser("alice", "pw")
	u3, _ := s.CreateUser("bob", "pw")
	if u2.ID != 2 || u3.ID != 3 {
		t.Fatalf("expected ids 2 and 3, got %d and %d", u2.ID, u3.ID)
	}
}

// CreateUser deliberately performs no username-uniqueness check; the first
// created user wins on lookup. This mirrors the reference behavior and is a
// known latent defect, not a feature.
func TestCreateUserAllowsDuplicateUsername(t *testing.T) {
	s := NewMemoryStore(testSeed(), nil)

	first, _ := s.CreateUser("alice", "pw1")
	second, _ := s.CreateUser("alice", "pw2")
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids for duplicate usernames")
	}

	found, err := s.GetUserByUsername("alice")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if found.ID != first.ID {
		t.Errorf("expected first-created user %d, got %d", first.ID, found.ID)
	}
}

func TestAddFavoriteIdempotent(t *testing.T) {
	s := NewMemoryStore(testSeed(), nil)

	f1, err := s.AddFavorite(1, "aries")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	f2, err := s.AddFavorite(1, "aries")
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if f1.ID != f2.ID {
		t.Fatalf("expected same record, got ids %d and %d", f1.ID, f2.ID)
	}

	ids, _ := s.GetUserFavorites(1)
	if len(ids) != 1 || ids[0] != "aries" {
		t.Fatalf("expected exactly [aries], got %v", ids)
	}
}

func TestFavoritesReflectStoreState(t *testing.T) {
	s := NewMemoryStore(testSeed(), nil)

	s.AddFavorite(1, "aries")
	s.AddFavorite(1, "gemini")

	ids, _ := s.GetUserFavorites(1)
	if len(ids) != 2 || ids[0] != "aries" || ids[1] != "gemini" {
		t.Fatalf("expected [aries gemini] in add order, got %v", ids)
	}

	if err := s.RemoveFavorite(1, "aries"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	ids, _ = s.GetUserFavorites(1)
	if len(ids) != 1 || ids[0] != "gemini" {
		t.Fatalf("expected [gemini] after remove, got %v", ids)
	}
}

func TestRemoveFavoriteAbsentIsNoOp(t *testing.T) {
	s := NewMemoryStore(testSeed(), nil)

	s.AddFavorite(1, "taurus")
	if err := s.RemoveFavorite(1, "never-added"); err != nil {
		t.Fatalf("expected no-op, got error: %v", err)
	}

	ids, _ := s.GetUserFavorites(1)
	if len(ids) != 1 || ids[0] != "taurus" {
		t.Fatalf("expected store unchanged, got %v", ids)
	}
}

// The store accepts favorite IDs that are not in the catalog. The permissive
// behavior is intentional here; strict checking lives in the service layer
// behind a flag.
func TestAddFavoriteDoesNotValidateConstellation(t *testing.T) {
	s := NewMemoryStore(testSeed(), nil)

	f, err := s.AddFavorite(1, "ophiuchus")
	if err != nil {
		t.Fatalf("expected permissive add, got %v", err)
	}
	if f.ConstellationID != "ophiuchus" {
		t.Errorf("expected stored id ophiuchus, got %s", f.ConstellationID)
	}
}

func TestFavoritesScopedPerUser(t *testing.T) {
	s := NewMemoryStore(testSeed(), nil)

	s.AddFavorite(1, "aries")
	s.AddFavorite(2, "taurus")

	ids1, _ := s.GetUserFavorites(1)
	ids2, _ := s.GetUserFavorites(2)
	if len(ids1) != 1 || ids1[0] != "aries" {
		t.Errorf("user 1: expected [aries], got %v", ids1)
	}
	if len(ids2) != 1 || ids2[0] != "taurus" {
		t.Errorf("user 2: expected [taurus], got %v", ids2)
	}

	count, _ := s.CountFavorites()
	if count != 2 {
		t.Errorf("expected 2 favorites total, got %d", count)
	}
}

func TestFavoriteIDsSequential(t *testing.T) {
	s := NewMemoryStore(testSeed(), nil)

	f1, _ := s.AddFavorite(1, "aries")
	f2, _ := s.AddFavorite(1, "taurus")
	if f1.ID != 1 || f2.ID != 2 {
		t.Fatalf("expected sequential ids 1 and 2, got %d and %d", f1.ID, f2.ID)
	}
}
