package repository

import (
	"log/slog"
	"sync"

	"github.com/yourorg/starchart/internal/domain"
)

// MemoryStore implements domain.Store with in-memory maps. It is the default
// backend: state lives for the process lifetime and resets on restart.
//
// Mutations are read-then-write sequences (existence check, then insert), so
// a single mutex serializes every operation against the three collections.
type MemoryStore struct {
	mu sync.Mutex

	constellations map[string]domain.Constellation
	catalogOrder   []string

	users         map[int]domain.User
	userIDCounter int

	favorites         []domain.Favorite
	favoriteIDCounter int

	logger *slog.Logger
}

// NewMemoryStore builds a store holding the given seed records in order and
// creates the demo user that all favorite operations run under.
func NewMemoryStore(seed []domain.Constellation, logger *slog.Logger) *MemoryStore {
	if logger == nil {
		logger = slog.Default()
	}

	s := &MemoryStore{
		constellations:    make(map[string]domain.Constellation, len(seed)),
		catalogOrder:      make([]string, 0, len(seed)),
		users:             make(map[int]domain.User),
		userIDCounter:     1,
		favoriteIDCounter: 1,
		logger:            logger,
	}

	for _, c := range seed {
		if _, exists := s.constellations[c.ID]; exists {
			logger.Warn("duplicate seed record skipped", slog.String("id", c.ID))
			continue
		}
		s.constellations[c.ID] = c
		s.catalogOrder = append(s.catalogOrder, c.ID)
	}

	if _, err := s.CreateUser("demo", "password"); err != nil {
		logger.Error("failed to create demo user", slog.String("error", err.Error()))
	}

	return s
}

// GetAllConstellations returns every record in seed order.
func (s *MemoryStore) GetAllConstellations() ([]domain.Constellation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Constellation, 0, len(s.catalogOrder))
	for _, id := range s.catalogOrder {
		out = append(out, s.constellations[id])
	}
	return out, nil
}

// GetConstellation looks up a record by ID.
func (s *MemoryStore) GetConstellation(id string) (*domain.Constellation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.constellations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// GetUser looks up a user by ID.
func (s *MemoryStore) GetUser(id int) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

// GetUserByUsername scans all users for a matching username. Linear, which is
// fine at this scale; the first match wins if duplicates were stored.
func (s *MemoryStore) GetUserByUsername(username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := 1; id < s.userIDCounter; id++ {
		if u, ok := s.users[id]; ok && u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// CreateUser stores a new user under the next sequential ID. Username
// uniqueness is not checked; a duplicate username is stored as-is.
func (s *MemoryStore) CreateUser(username, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := domain.User{
		ID:       s.userIDCounter,
		Username: username,
		Password: password,
	}
	s.userIDCounter++
	s.users[u.ID] = u

	return &u, nil
}

// GetUserFavorites returns the user's favorited constellation IDs in the
// order the favorites were added.
func (s *MemoryStore) GetUserFavorites(userID int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0)
	for _, f := range s.favorites {
		if f.UserID == userID {
			ids = append(ids, f.ConstellationID)
		}
	}
	return ids, nil
}

// AddFavorite stores the pair, or returns the existing record unchanged when
// the pair is already present. The constellation ID is not checked against
// the catalog.
func (s *MemoryStore) AddFavorite(userID int, constellationID string) (*domain.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.favorites {
		if f.UserID == userID && f.ConstellationID == constellationID {
			return &f, nil
		}
	}

	f := domain.Favorite{
		ID:              s.favoriteIDCounter,
		UserID:          userID,
		ConstellationID: constellationID,
	}
	s.favoriteIDCounter++
	s.favorites = append(s.favorites, f)

	s.logger.Debug("favorite added",
		slog.Int("user_id", userID),
		slog.String("constellation_id", constellationID),
	)
	return &f, nil
}

// RemoveFavorite deletes the first matching favorite. Removing a pair that
// was never added leaves the store unchanged and returns nil.
func (s *MemoryStore) RemoveFavorite(userID int, constellationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.favorites {
		if f.UserID == userID && f.ConstellationID == constellationID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			s.logger.Debug("favorite removed",
				slog.Int("user_id", userID),
				slog.String("constellation_id", constellationID),
			)
			return nil
		}
	}
	return nil
}

// CountFavorites reports the number of stored favorites across all users.
func (s *MemoryStore) CountFavorites() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.favorites), nil
}
