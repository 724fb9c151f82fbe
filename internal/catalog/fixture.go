// internal/catalog/fixture.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/javajoker/listing-discovery/internal/models"
	"github.com/javajoker/listing-discovery/internal/utils"
)

// Fixture is the pre-loaded data set handed to the store.
type Fixture struct {
	Categories []models.Category `json:"categories" validate:"dive"`
	Listings   []models.Listing  `json:"listings" validate:"dive"`
	Locations  []string          `json:"locations"`
}

func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	var fixture Fixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}

	if err := fixture.Validate(); err != nil {
		return Fixture{}, err
	}
	return fixture, nil
}

// Validate checks the record-level tags and the cross-record invariants:
// unique listing ids, unique category slugs and resolvable categories.
func (f Fixture) Validate() error {
	if err := utils.ValidateStruct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}

	slugs := make(map[string]struct{}, len(f.Categories))
	for _, c := range f.Categories {
		if _, dup := slugs[c.Slug]; dup {
			return fmt.Errorf("%w: duplicate category slug %q", ErrInvalidFixture, c.Slug)
		}
		slugs[c.Slug] = struct{}{}
	}

	ids := make(map[string]struct{}, len(f.Listings))
	for _, l := range f.Listings {
		if _, dup := ids[l.ID]; dup {
			return fmt.Errorf("%w: duplicate listing id %q", ErrInvalidFixture, l.ID)
		}
		ids[l.ID] = struct{}{}

		if _, ok := slugs[l.Category]; !ok {
			return fmt.Errorf("%w: listing %q references unknown category %q", ErrInvalidFixture, l.ID, l.Category)
		}
		if l.CreatedAt.IsZero() {
			return fmt.Errorf("%w: listing %q has no created_at", ErrInvalidFixture, l.ID)
		}
	}

	for _, loc := range f.Locations {
		if strings.TrimSpace(loc) == "" {
			return fmt.Errorf("%w: blank location", ErrInvalidFixture)
		}
	}
	return nil
}

// normalizedLocations puts the sentinel first and drops duplicates while
// keeping the fixture order of everything else.
func normalizedLocations(locations []string) []string {
	out := make([]string, 0, len(locations)+1)
	out = append(out, models.AllLocations)
	seen := map[string]struct{}{models.AllLocations: {}}
	for _, loc := range locations {
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		out = append(out, loc)
	}
	return out
}
