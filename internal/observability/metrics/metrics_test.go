package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSetCatalogSize(t *testing.T) {
	SetCatalogSize(12)
	if got := testutil.ToFloat64(catalogSize); got != 12 {
		t.Fatalf("expected catalog size 12, got %v", got)
	}
}

func TestSetFavoritesStoredClampsNegative(t *testing.T) {
	SetFavoritesStored(-3)
	if got := testutil.ToFloat64(favoritesStored); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}

	SetFavoritesStored(5)
	if got := testutil.ToFloat64(favoritesStored); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
}

func TestObserveFavoriteOpCounts(t *testing.T) {
	before := testutil.ToFloat64(favoriteOperations.WithLabelValues("add", "ok"))
	ObserveFavoriteOp("add", "ok")
	after := testutil.ToFloat64(favoriteOperations.WithLabelValues("add", "ok"))
	if after != before+1 {
		t.Fatalf("expected counter to increment, got %v -> %v", before, after)
	}
}
