package seed

import "testing"

var zodiacOrder = []string{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo",
	"libra", "scorpius", "sagittarius", "capricornus", "aquarius", "pisces",
}

func TestConstellationsLoads(t *testing.T) {
	records, err := Constellations()
	if err != nil {
		t.Fatalf("failed to load seed: %v", err)
	}
	if len(records) != 12 {
		t.Fatalf("expected 12 records, got %d", len(records))
	}
}

func TestConstellationsZodiacOrder(t *testing.T) {
	records, err := Constellations()
	if err != nil {
		t.Fatalf("failed to load seed: %v", err)
	}
	for i, want := range zodiacOrder {
		if records[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, records[i].ID)
		}
	}
}

func TestConstellationsFieldsPopulated(t *testing.T) {
	records, err := Constellations()
	if err != nil {
		t.Fatalf("failed to load seed: %v", err)
	}

	seen := map[string]bool{}
	for _, c := range records {
		if seen[c.ID] {
			t.Errorf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true

		if c.Name == "" || c.Symbol == "" || c.Element == "" || c.Date == "" {
			t.Errorf("%s: missing display metadata", c.ID)
		}
		if c.AreaDegrees < 0 {
			t.Errorf("%s: negative area %d", c.ID, c.AreaDegrees)
		}
		if c.BordersCount <= 0 {
			t.Errorf("%s: borders count %d", c.ID, c.BordersCount)
		}
	}
}
