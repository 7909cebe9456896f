package domain

import "errors"

// ErrNotFound signals a lookup that matched no record. Handlers translate it
// to 404; anything else coming out of the store is treated as internal.
var ErrNotFound = errors.New("not found")

// Constellation is one zodiac constellation record. Records are loaded once
// from the seed dataset and never created, updated, or deleted afterwards.
type Constellation struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	Element           string `json:"element"`
	Date              string `json:"date"`
	Description       string `json:"description"`
	HistoryImageURL   string `json:"historyImageUrl"`
	SkyImageURL       string `json:"skyImageUrl"`
	SymbolURL         string `json:"symbolUrl"`
	ImageURL          string `json:"imageUrl"`
	RightAscension    string `json:"rightAscension"`
	Declination       string `json:"declination"`
	AreaDegrees       int    `json:"areaDegrees"`
	SizeRank          string `json:"sizeRank"`
	BordersCount      int    `json:"bordersCount"`
	Borders           string `json:"borders"`
	BrightestStars    string `json:"brightestStars"`
	ObservationInfo   string `json:"observationInfo"`
	ObservationPeriod string `json:"observationPeriod"`
}

// User is a catalog user. IDs are assigned sequentially starting at 1.
// Passwords are opaque strings; no credential handling happens here.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Favorite marks that a user favorited a constellation. At most one record
// exists per (UserID, ConstellationID) pair.
type Favorite struct {
	ID              int    `json:"id"`
	UserID          int    `json:"userId"`
	ConstellationID string `json:"constellationId"`
}

// Store is the authoritative holder of constellations, users, and favorites
// for the lifetime of the process.
type Store interface {
	// GetAllConstellations returns every record in seed order. Never fails
	// for the in-memory implementation.
	GetAllConstellations() ([]Constellation, error)
	// GetConstellation returns the record with the given ID, or ErrNotFound.
	GetConstellation(id string) (*Constellation, error)

	GetUser(id int) (*User, error)
	GetUserByUsername(username string) (*User, error)
	// CreateUser assigns the next sequential ID and stores the user. It does
	// not check username uniqueness; duplicates are stored as-is.
	CreateUser(username, password string) (*User, error)

	// GetUserFavorites returns the constellation IDs the user favorited, in
	// the order the favorites were added.
	GetUserFavorites(userID int) ([]string, error)
	// AddFavorite stores a favorite, or returns the existing record when the
	// pair is already present. The constellation ID is not checked against
	// the catalog.
	AddFavorite(userID int, constellationID string) (*Favorite, error)
	// RemoveFavorite deletes the matching favorite. Removing a pair that was
	// never added is a no-op, not an error.
	RemoveFavorite(userID int, constellationID string) error

	// CountFavorites reports how many favorites are stored across all users.
	CountFavorites() (int, error)
}
