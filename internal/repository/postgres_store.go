package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yourorg/starchart/internal/domain"
)

// PostgresStore implements domain.Store on PostgreSQL with three tables
// mirroring the domain entities field-for-field. The favorites table is
// unique on (user_id, constellation_id), so the idempotent-add contract is
// enforced by the database rather than by a scan.
type PostgresStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresStore creates a Postgres-backed store.
func NewPostgresStore(db *sql.DB, logger *slog.Logger) *PostgresStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresStore{db: db, logger: logger}
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS constellations (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	symbol TEXT NOT NULL,
	element TEXT NOT NULL,
	date TEXT NOT NULL,
	description TEXT NOT NULL,
	history_image_url TEXT NOT NULL,
	sky_image_url TEXT NOT NULL,
	symbol_url TEXT NOT NULL,
	image_url TEXT NOT NULL,
	right_ascension TEXT NOT NULL,
	declination TEXT NOT NULL,
	area_degrees INTEGER NOT NULL,
	size_rank TEXT NOT NULL,
	borders_count INTEGER NOT NULL,
	borders TEXT NOT NULL,
	brightest_stars TEXT NOT NULL,
	observation_info TEXT NOT NULL,
	observation_period TEXT NOT NULL,
	seed_order INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS favorites (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL,
	constellation_id TEXT NOT NULL,
	UNIQUE (user_id, constellation_id)
);
`

// Init creates the schema if needed, upserts the seed records, and ensures
// the demo user exists. Safe to run on every startup.
func (s *PostgresStore) Init(ctx context.Context, seed []domain.Constellation) error {
	if _, err := s.db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	upsert := `
		INSERT INTO constellations (
			id, name, symbol, element, date, description,
			history_image_url, sky_image_url, symbol_url, image_url,
			right_ascension, declination, area_degrees, size_rank,
			borders_count, borders, brightest_stars, observation_info,
			observation_period, seed_order
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			symbol = EXCLUDED.symbol,
			element = EXCLUDED.element,
			date = EXCLUDED.date,
			description = EXCLUDED.description,
			history_image_url = EXCLUDED.history_image_url,
			sky_image_url = EXCLUDED.sky_image_url,
			symbol_url = EXCLUDED.symbol_url,
			image_url = EXCLUDED.image_url,
			right_ascension = EXCLUDED.right_ascension,
			declination = EXCLUDED.declination,
			area_degrees = EXCLUDED.area_degrees,
			size_rank = EXCLUDED.size_rank,
			borders_count = EXCLUDED.borders_count,
			borders = EXCLUDED.borders,
			brightest_stars = EXCLUDED.brightest_stars,
			observation_info = EXCLUDED.observation_info,
			observation_period = EXCLUDED.observation_period,
			seed_order = EXCLUDED.seed_order
	`
	for i, c := range seed {
		_, err := s.db.ExecContext(ctx, upsert,
			c.ID, c.Name, c.Symbol, c.Element, c.Date, c.Description,
			c.HistoryImageURL, c.SkyImageURL, c.SymbolURL, c.ImageURL,
			c.RightAscension, c.Declination, c.AreaDegrees, c.SizeRank,
			c.BordersCount, c.Borders, c.BrightestStars, c.ObservationInfo,
			c.ObservationPeriod, i,
		)
		if err != nil {
			return fmt.Errorf("failed to seed constellation %s: %w", c.ID, err)
		}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2) ON CONFLICT (username) DO NOTHING`,
		"demo", "password",
	)
	if err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	s.logger.Info("postgres store initialized", slog.Int("seed_records", len(seed)))
	return nil
}

const constellationColumns = `
	id, name, symbol, element, date, description,
	history_image_url, sky_image_url, symbol_url, image_url,
	right_ascension, declination, area_degrees, size_rank,
	borders_count, borders, brightest_stars, observation_info,
	observation_period
`

func scanConstellation(row interface{ Scan(dest ...any) error }) (*domain.Constellation, error) {
	c := &domain.Constellation{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Symbol, &c.Element, &c.Date, &c.Description,
		&c.HistoryImageURL, &c.SkyImageURL, &c.SymbolURL, &c.ImageURL,
		&c.RightAscension, &c.Declination, &c.AreaDegrees, &c.SizeRank,
		&c.BordersCount, &c.Borders, &c.BrightestStars, &c.ObservationInfo,
		&c.ObservationPeriod,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetAllConstellations returns every record in seed order.
func (s *PostgresStore) GetAllConstellations() ([]domain.Constellation, error) {
	query := `SELECT ` + constellationColumns + ` FROM constellations ORDER BY seed_order`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list constellations: %w", err)
	}
	defer rows.Close()

	var out []domain.Constellation
	for rows.Next() {
		c, err := scanConstellation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan constellation: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read constellations: %w", err)
	}
	return out, nil
}

// GetConstellation looks up a record by ID.
func (s *PostgresStore) GetConstellation(id string) (*domain.Constellation, error) {
	query := `SELECT ` + constellationColumns + ` FROM constellations WHERE id = $1`

	c, err := scanConstellation(s.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get constellation: %w", err)
	}
	return c, nil
}

// GetUser looks up a user by ID.
func (s *PostgresStore) GetUser(id int) (*domain.User, error) {
	u := &domain.User{}
	err := s.db.QueryRow(
		`SELECT id, username, password FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByUsername finds the earliest-created user with the given username.
func (s *PostgresStore) GetUserByUsername(username string) (*domain.User, error) {
	u := &domain.User{}
	err := s.db.QueryRow(
		`SELECT id, username, password FROM users WHERE username = $1 ORDER BY id LIMIT 1`, username,
	).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

// CreateUser inserts a new user. Unlike the memory store, the schema's unique
// constraint rejects duplicate usernames here; the error surfaces as-is.
func (s *PostgresStore) CreateUser(username, password string) (*domain.User, error) {
	u := &domain.User{Username: username, Password: password}
	err := s.db.QueryRow(
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`,
		username, password,
	).Scan(&u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// GetUserFavorites returns the user's favorited constellation IDs in
// insertion order.
func (s *PostgresStore) GetUserFavorites(userID int) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT constellation_id FROM favorites WHERE user_id = $1 ORDER BY id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}
	return ids, nil
}

// AddFavorite inserts the pair if absent. ON CONFLICT DO NOTHING plus a
// re-read keeps the operation idempotent under concurrent writers.
func (s *PostgresStore) AddFavorite(userID int, constellationID string) (*domain.Favorite, error) {
	_, err := s.db.Exec(
		`INSERT INTO favorites (user_id, constellation_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, constellation_id) DO NOTHING`,
		userID, constellationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	f := &domain.Favorite{UserID: userID, ConstellationID: constellationID}
	err = s.db.QueryRow(
		`SELECT id FROM favorites WHERE user_id = $1 AND constellation_id = $2`,
		userID, constellationID,
	).Scan(&f.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back favorite: %w", err)
	}
	return f, nil
}

// RemoveFavorite deletes the matching pair; deleting nothing is not an error.
func (s *PostgresStore) RemoveFavorite(userID int, constellationID string) error {
	_, err := s.db.Exec(
		`DELETE FROM favorites WHERE user_id = $1 AND constellation_id = $2`,
		userID, constellationID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// CountFavorites reports the number of stored favorites across all users.
func (s *PostgresStore) CountFavorites() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM favorites`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return n, nil
}
