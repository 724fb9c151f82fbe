package discovery

import (
	"strings"
	"unicode/utf8"

	"github.com/javajoker/listing-discovery/internal/models"
)

const (
	DefaultMinQueryLength = 2
	DefaultMaxCategories  = 2
	DefaultMaxListings    = 3
)

// Source is the catalog view the matcher reads. Callers pass a single
// snapshot so both sequences come from the same catalog state.
type Source interface {
	ListingSource
	AllCategories() []models.Category
}

type SuggestOptions struct {
	MinQueryLength int
	MaxCategories  int
	MaxListings    int
}

func DefaultSuggestOptions() SuggestOptions {
	return SuggestOptions{
		MinQueryLength: DefaultMinQueryLength,
		MaxCategories:  DefaultMaxCategories,
		MaxListings:    DefaultMaxListings,
	}
}

// Suggestions holds the capped matches of each source in catalog order.
type Suggestions struct {
	Categories []models.Category `json:"categories"`
	Listings   []models.Listing  `json:"listings"`
}

func emptySuggestions() Suggestions {
	return Suggestions{
		Categories: []models.Category{},
		Listings:   []models.Listing{},
	}
}

// Empty means "no suggestions": the panel is closed rather than shown empty.
func (s Suggestions) Empty() bool {
	return len(s.Categories) == 0 && len(s.Listings) == 0
}

// Targets lists the selection targets in display order, categories first.
func (s Suggestions) Targets() []Target {
	targets := make([]Target, 0, len(s.Categories)+len(s.Listings))
	for _, c := range s.Categories {
		targets = append(targets, CategoryTarget(c))
	}
	for _, l := range s.Listings {
		targets = append(targets, ListingTarget(l))
	}
	return targets
}

type Matcher struct {
	opts SuggestOptions
}

// NewMatcher replaces non-positive limits with the defaults.
func NewMatcher(opts SuggestOptions) Matcher {
	d := DefaultSuggestOptions()
	if opts.MinQueryLength <= 0 {
		opts.MinQueryLength = d.MinQueryLength
	}
	if opts.MaxCategories <= 0 {
		opts.MaxCategories = d.MaxCategories
	}
	if opts.MaxListings <= 0 {
		opts.MaxListings = d.MaxListings
	}
	return Matcher{opts: opts}
}

func (m Matcher) Options() SuggestOptions {
	return m.opts
}

// Gated reports whether rawQuery is too short to suggest anything. Only
// the length check trims; the text itself is matched as typed.
func (m Matcher) Gated(rawQuery string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(rawQuery)) < m.opts.MinQueryLength
}

// Suggest matches the query as typed against category names and slugs and
// against listing titles and descriptions. Gated queries return empty
// sequences without scanning the catalog.
func (m Matcher) Suggest(src Source, rawQuery string) Suggestions {
	if m.Gated(rawQuery) {
		return emptySuggestions()
	}
	q := strings.ToLower(rawQuery)

	out := emptySuggestions()
	for _, c := range src.AllCategories() {
		if len(out.Categories) == m.opts.MaxCategories {
			break
		}
		if containsFold(c.Name, q) || containsFold(c.Slug, q) {
			out.Categories = append(out.Categories, c)
		}
	}
	for _, l := range src.AllListings() {
		if len(out.Listings) == m.opts.MaxListings {
			break
		}
		if containsFold(l.Title, q) || containsFold(l.Description, q) {
			out.Listings = append(out.Listings, l)
		}
	}
	return out
}

// Suggest runs the matcher with the default limits.
func Suggest(src Source, rawQuery string) Suggestions {
	return NewMatcher(DefaultSuggestOptions()).Suggest(src, rawQuery)
}
