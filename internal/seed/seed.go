// Package seed carries the embedded constellation dataset the catalog is
// loaded from at startup. The dataset is treated as an opaque external input:
// it is parsed, never edited at runtime.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/yourorg/starchart/internal/domain"
)

//go:embed constellations.json
var constellationsJSON []byte

// Constellations parses the embedded dataset and returns the records in file
// order, which is the catalog's canonical order.
func Constellations() ([]domain.Constellation, error) {
	var records []domain.Constellation
	if err := json.Unmarshal(constellationsJSON, &records); err != nil {
		return nil, fmt.Errorf("failed to parse seed dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("seed dataset is empty")
	}
	return records, nil
}
