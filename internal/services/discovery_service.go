// internal/services/discovery_service.go
package services

import (
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/listing-discovery/internal/catalog"
	"github.com/javajoker/listing-discovery/internal/config"
	"github.com/javajoker/listing-discovery/internal/discovery"
	"github.com/javajoker/listing-discovery/internal/metrics"
	"github.com/javajoker/listing-discovery/internal/models"
)

type DiscoveryService struct {
	store           *catalog.Store
	matcher         discovery.Matcher
	dismissDelay    time.Duration
	defaultLocation string
}

type HeadingKind string

const (
	HeadingQuery    HeadingKind = "query"
	HeadingCategory HeadingKind = "category"
	HeadingAll      HeadingKind = "all"
)

// Heading describes the title above a result list. Value is the query text
// or the category display name; handlers localize it.
type Heading struct {
	Kind  HeadingKind `json:"kind"`
	Value string      `json:"value,omitempty"`
}

type SearchResult struct {
	discovery.Result
	State   models.FilterState `json:"state"`
	Query   string             `json:"query"`
	Heading Heading            `json:"heading"`
}

func NewDiscoveryService(store *catalog.Store, cfg *config.Config) *DiscoveryService {
	return &DiscoveryService{
		store: store,
		matcher: discovery.NewMatcher(discovery.SuggestOptions{
			MinQueryLength: cfg.Suggest.MinQueryLength,
			MaxCategories:  cfg.Suggest.MaxCategories,
			MaxListings:    cfg.Suggest.MaxListings,
		}),
		dismissDelay:    cfg.Suggest.DismissDelayDuration(),
		defaultLocation: cfg.Catalog.DefaultLocation,
	}
}

// Search evaluates state against one catalog snapshot, so a concurrent
// reload never mixes two catalogs in a single result.
func (s *DiscoveryService) Search(state models.FilterState) SearchResult {
	start := time.Now()
	snap := s.store.Snapshot()
	result := discovery.Run(snap, state)
	metrics.ObserveEvaluation(result.Count)

	logrus.WithFields(logrus.Fields{
		"q":        state.GlobalQuery,
		"category": state.Category,
		"location": state.Location,
		"sort":     state.SortKey,
		"count":    result.Count,
		"duration": time.Since(start).Microseconds(),
	}).Debug("Listings evaluated")

	return SearchResult{
		Result:  result,
		State:   state,
		Query:   discovery.Encode(state).Encode(),
		Heading: headingFor(snap, state),
	}
}

// SearchQuery decodes a shareable query string and evaluates it.
func (s *DiscoveryService) SearchQuery(rawQuery string) SearchResult {
	return s.Search(discovery.DecodeQuery(rawQuery))
}

func (s *DiscoveryService) Clear() SearchResult {
	return s.Search(discovery.Clear())
}

func headingFor(snap catalog.Snapshot, state models.FilterState) Heading {
	if state.GlobalQuery != "" {
		return Heading{Kind: HeadingQuery, Value: state.GlobalQuery}
	}
	if state.Category != "" && state.Category != models.AllCategories {
		if c, ok := snap.Category(state.Category); ok {
			return Heading{Kind: HeadingCategory, Value: c.Name}
		}
		return Heading{Kind: HeadingCategory, Value: state.Category}
	}
	return Heading{Kind: HeadingAll}
}

func (s *DiscoveryService) Suggest(rawQuery string) discovery.Suggestions {
	suggestions := s.matcher.Suggest(s.store.Snapshot(), rawQuery)

	switch {
	case s.matcher.Gated(rawQuery):
		metrics.RecordSuggestion("gated")
	case suggestions.Empty():
		metrics.RecordSuggestion("empty")
	default:
		metrics.RecordSuggestion("hit")
	}
	return suggestions
}

// NewPanel returns a suggestion panel that reads the live catalog on every
// keystroke.
func (s *DiscoveryService) NewPanel() *discovery.Panel {
	return discovery.NewPanel(func() discovery.Source {
		return s.store.Snapshot()
	}, s.matcher, s.dismissDelay)
}

func (s *DiscoveryService) Listing(id string) (models.Listing, error) {
	return s.store.Get(id)
}

func (s *DiscoveryService) Categories() []models.Category {
	return s.store.AllCategories()
}

func (s *DiscoveryService) Locations() []string {
	return s.store.Locations()
}

// Featured returns the featured listings in catalog order.
func (s *DiscoveryService) Featured() []models.Listing {
	featured := make([]models.Listing, 0)
	for _, l := range s.store.AllListings() {
		if l.Featured {
			featured = append(featured, l)
		}
	}
	return featured
}

// InitialState seeds a new discovery view. A provider location the catalog
// does not know falls back to the configured default, then to
// "All Locations".
func (s *DiscoveryService) InitialState(p discovery.LocationProvider) models.FilterState {
	snap := s.store.Snapshot()
	return discovery.NewFilterState(locationFunc(func() string {
		if p != nil {
			if loc := p.DefaultLocation(); loc != "" && snap.HasLocation(loc) {
				return loc
			}
		}
		if snap.HasLocation(s.defaultLocation) {
			return s.defaultLocation
		}
		return models.AllLocations
	}))
}

// Submit turns a search box submission into the shareable listings query.
func (s *DiscoveryService) Submit(rawQuery string, p discovery.LocationProvider) url.Values {
	return discovery.SubmitQuery(rawQuery, s.InitialState(p).Location)
}

type locationFunc func() string

func (f locationFunc) DefaultLocation() string { return f() }
