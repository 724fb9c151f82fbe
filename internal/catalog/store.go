// internal/catalog/store.go
package catalog

import (
	"fmt"
	"slices"
	"sync"

	"github.com/javajoker/listing-discovery/internal/models"
)

// Snapshot is one consistent view of the catalog. Its slices are never
// written after construction; accessors hand out copies.
type Snapshot struct {
	listings   []models.Listing
	categories []models.Category
	locations  []string
	byID       map[string]int
}

func newSnapshot(f Fixture) Snapshot {
	byID := make(map[string]int, len(f.Listings))
	for i, l := range f.Listings {
		byID[l.ID] = i
	}
	return Snapshot{
		listings:   slices.Clone(f.Listings),
		categories: slices.Clone(f.Categories),
		locations:  normalizedLocations(f.Locations),
		byID:       byID,
	}
}

// AllListings returns the listings in insertion order.
func (s Snapshot) AllListings() []models.Listing {
	return slices.Clone(s.listings)
}

// AllCategories returns the categories in insertion order.
func (s Snapshot) AllCategories() []models.Category {
	return slices.Clone(s.categories)
}

// Locations returns the place names with the "All Locations" sentinel first.
func (s Snapshot) Locations() []string {
	return slices.Clone(s.locations)
}

func (s Snapshot) Listing(id string) (models.Listing, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Listing{}, false
	}
	return s.listings[i], true
}

func (s Snapshot) Category(slug string) (models.Category, bool) {
	for _, c := range s.categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}

func (s Snapshot) HasLocation(location string) bool {
	return slices.Contains(s.locations, location)
}

// Store owns the catalog for the process lifetime. Writers swap the whole
// snapshot, so readers holding an older one never observe a torn read.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewStore(f Fixture) (*Store, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &Store{snap: newSnapshot(f)}, nil
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Replace validates f and installs it as the new catalog.
func (s *Store) Replace(f Fixture) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("failed to replace catalog: %w", err)
	}
	next := newSnapshot(f)

	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()
	return nil
}

func (s *Store) AllListings() []models.Listing {
	return s.Snapshot().AllListings()
}

func (s *Store) AllCategories() []models.Category {
	return s.Snapshot().AllCategories()
}

func (s *Store) Locations() []string {
	return s.Snapshot().Locations()
}

func (s *Store) Get(id string) (models.Listing, error) {
	l, ok := s.Snapshot().Listing(id)
	if !ok {
		return models.Listing{}, ErrListingNotFound
	}
	return l, nil
}
