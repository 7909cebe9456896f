package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/yourorg/starchart/internal/domain"
)

// countingStore wraps a MemoryStore and counts constellation reads hitting
// the inner store.
type countingStore struct {
	domain.Store
	listCalls int
	getCalls  int
}

func (c *countingStore) GetAllConstellations() ([]domain.Constellation, error) {
	c.listCalls++
	return c.Store.GetAllConstellations()
}

func (c *countingStore) GetConstellation(id string) (*domain.Constellation, error) {
	c.getCalls++
	return c.Store.GetConstellation(id)
}

func newCachedFixture() (*CachedStore, *countingStore) {
	inner := &countingStore{Store: NewMemoryStore(testSeed(), nil)}
	cached := NewCachedStore(inner, NewLocalCache(), time.Minute, nil)
	return cached, inner
}

func TestCachedListHitsInnerOnce(t *testing.T) {
	cached, inner := newCachedFixture()

	for i := 0; i < 3; i++ {
		all, err := cached.GetAllConstellations()
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(all) != 3 || all[0].ID != "aries" {
			t.Fatalf("unexpected catalog: %v", all)
		}
	}

	if inner.listCalls != 1 {
		t.Fatalf("expected 1 inner list call, got %d", inner.listCalls)
	}
}

func TestCachedGetHitsInnerOncePerID(t *testing.T) {
	cached, inner := newCachedFixture()

	for i := 0; i < 3; i++ {
		c, err := cached.GetConstellation("taurus")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if c.ID != "taurus" {
			t.Fatalf("expected taurus, got %s", c.ID)
		}
	}

	if inner.getCalls != 1 {
		t.Fatalf("expected 1 inner get call, got %d", inner.getCalls)
	}
}

func TestCachedGetNotFoundNotCached(t *testing.T) {
	cached, inner := newCachedFixture()

	for i := 0; i < 2; i++ {
		_, err := cached.GetConstellation("nonexistent")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	}

	// Misses always fall through; only successful reads are cached.
	if inner.getCalls != 2 {
		t.Fatalf("expected 2 inner get calls, got %d", inner.getCalls)
	}
}

func TestCachedStorePassesThroughFavorites(t *testing.T) {
	cached, _ := newCachedFixture()

	if _, err := cached.AddFavorite(1, "aries"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	ids, err := cached.GetUserFavorites(1)
	if err != nil {
		t.Fatalf("list favorites failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "aries" {
		t.Fatalf("expected [aries], got %v", ids)
	}
}
