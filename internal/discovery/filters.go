// Package discovery implements the listing discovery engine: the filter and
// sort pipeline, the search-suggestion matcher and the codec between filter
// state and shareable URL parameters. Everything here is a pure function of
// its inputs and safe to call on every state change.
package discovery

import (
	"strings"

	"github.com/javajoker/listing-discovery/internal/models"
)

// Predicate is one filter of the pipeline. The pipeline ANDs all of them;
// an inactive predicate matches every listing.
type Predicate struct {
	Name  string
	Match func(models.Listing, models.FilterState) bool
}

// Predicates returns the six filters, cheapest first. The order does not
// change the result set.
func Predicates() []Predicate {
	return []Predicate{
		{Name: "category", Match: func(l models.Listing, s models.FilterState) bool {
			return MatchCategory(l, s.Category)
		}},
		{Name: "condition", Match: func(l models.Listing, s models.FilterState) bool {
			return MatchCondition(l, s.Condition)
		}},
		{Name: "location", Match: func(l models.Listing, s models.FilterState) bool {
			return MatchLocation(l, s.Location)
		}},
		{Name: "price", Match: func(l models.Listing, s models.FilterState) bool {
			return MatchPrice(l, s.PriceMin, s.PriceMax)
		}},
		{Name: "global_query", Match: func(l models.Listing, s models.FilterState) bool {
			return MatchGlobalQuery(l, s.GlobalQuery)
		}},
		{Name: "brand_query", Match: func(l models.Listing, s models.FilterState) bool {
			return MatchBrandQuery(l, s.BrandQuery)
		}},
	}
}

// MatchGlobalQuery is a case-insensitive substring test over title,
// description and category slug.
func MatchGlobalQuery(l models.Listing, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return containsFold(l.Title, q) ||
		containsFold(l.Description, q) ||
		containsFold(l.Category, q)
}

func MatchCategory(l models.Listing, category string) bool {
	if category == models.AllCategories {
		return true
	}
	return l.Category == category
}

func MatchCondition(l models.Listing, condition models.Condition) bool {
	if condition == models.ConditionAll {
		return true
	}
	return l.Condition == condition
}

// MatchPrice is always active: an unset bound is open. An inverted range
// simply matches nothing.
func MatchPrice(l models.Listing, priceMin, priceMax *int64) bool {
	var lo int64
	if priceMin != nil {
		lo = *priceMin
	}
	if l.Price < lo {
		return false
	}
	return priceMax == nil || l.Price <= *priceMax
}

// MatchLocation compares place names exactly. "Mumbai" does not match
// "Mumbai, Maharashtra".
func MatchLocation(l models.Listing, location string) bool {
	if location == models.AllLocations {
		return true
	}
	return l.Location == location
}

// MatchBrandQuery is active once the trimmed query is non-empty and tests
// the title only.
func MatchBrandQuery(l models.Listing, brand string) bool {
	if strings.TrimSpace(brand) == "" {
		return true
	}
	return containsFold(l.Title, strings.ToLower(brand))
}

// MatchAll reports whether l satisfies every predicate in preds.
func MatchAll(l models.Listing, s models.FilterState, preds []Predicate) bool {
	for _, p := range preds {
		if !p.Match(l, s) {
			return false
		}
	}
	return true
}

// containsFold expects lowerNeedle to be lowercased already.
func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
