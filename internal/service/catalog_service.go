package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/yourorg/starchart/internal/domain"
	"github.com/yourorg/starchart/internal/observability/metrics"
)

// ErrUnknownConstellation is returned by favorite mutations when strict mode
// is on and the constellation ID is not in the catalog. Handlers map it to a
// validation failure rather than an internal error.
var ErrUnknownConstellation = errors.New("unknown constellation")

// CatalogService translates validated requests into store calls. It holds no
// state of its own.
type CatalogService struct {
	store           domain.Store
	logger          *slog.Logger
	strictFavorites bool
}

// ShareReference is the opaque shareable reference returned by Share. The
// URL is a client route built from the constellation ID; nothing is
// persisted and nothing expires.
type ShareReference struct {
	Message  string `json:"message"`
	ShareURL string `json:"shareUrl"`
}

// NewCatalogService creates a catalog service. With strictFavorites set,
// favorite mutations reject constellation IDs missing from the catalog; the
// default is the permissive behavior where any ID is accepted.
func NewCatalogService(store domain.Store, logger *slog.Logger, strictFavorites bool) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		store:           store,
		logger:          logger,
		strictFavorites: strictFavorites,
	}
}

// ListConstellations returns the full catalog in seed order.
func (s *CatalogService) ListConstellations() ([]domain.Constellation, error) {
	out, err := s.store.GetAllConstellations()
	if err != nil {
		return nil, fmt.Errorf("failed to list constellations: %w", err)
	}
	return out, nil
}

// GetConstellation returns one record or domain.ErrNotFound.
func (s *CatalogService) GetConstellation(id string) (*domain.Constellation, error) {
	c, err := s.store.GetConstellation(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get constellation %s: %w", id, err)
	}
	return c, nil
}

// ListFavorites returns the user's favorited constellation IDs in the order
// they were added.
func (s *CatalogService) ListFavorites(userID int) ([]string, error) {
	ids, err := s.store.GetUserFavorites(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return ids, nil
}

// AddFavorite stores the favorite for the user. Adding an existing pair
// returns the stored record unchanged.
func (s *CatalogService) AddFavorite(userID int, constellationID string) (*domain.Favorite, error) {
	if err := s.checkConstellation(constellationID); err != nil {
		metrics.ObserveFavoriteOp("add", "rejected")
		return nil, err
	}

	f, err := s.store.AddFavorite(userID, constellationID)
	if err != nil {
		metrics.ObserveFavoriteOp("add", "error")
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	metrics.ObserveFavoriteOp("add", "ok")
	return f, nil
}

// RemoveFavorite deletes the favorite; removing an absent pair is a no-op.
func (s *CatalogService) RemoveFavorite(userID int, constellationID string) error {
	if err := s.checkConstellation(constellationID); err != nil {
		metrics.ObserveFavoriteOp("remove", "rejected")
		return err
	}

	if err := s.store.RemoveFavorite(userID, constellationID); err != nil {
		metrics.ObserveFavoriteOp("remove", "error")
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	metrics.ObserveFavoriteOp("remove", "ok")
	return nil
}

// Share builds the shareable reference for a constellation. The ID is not
// checked against the catalog, matching the permissive favorite behavior.
func (s *CatalogService) Share(constellationID string) *ShareReference {
	return &ShareReference{
		Message:  "Shared successfully",
		ShareURL: "/constellation/" + constellationID,
	}
}

func (s *CatalogService) checkConstellation(id string) error {
	if !s.strictFavorites {
		return nil
	}
	if _, err := s.store.GetConstellation(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUnknownConstellation
		}
		return fmt.Errorf("failed to check constellation %s: %w", id, err)
	}
	return nil
}
