package discovery

import "github.com/javajoker/listing-discovery/internal/models"

// ListingSource is the read side of the catalog the pipeline consumes.
type ListingSource interface {
	AllListings() []models.Listing
}

// Result is one pipeline evaluation. Empty drives the "clear filters"
// affordance and is not an error.
type Result struct {
	Listings []models.Listing `json:"listings"`
	Count    int              `json:"count"`
	Empty    bool             `json:"empty"`
}

// Evaluate filters the catalog with every predicate and sorts the matches
// by state.SortKey. It recomputes from scratch and never mutates state or
// the catalog.
func Evaluate(src ListingSource, state models.FilterState) []models.Listing {
	preds := Predicates()

	matched := make([]models.Listing, 0)
	for _, l := range src.AllListings() {
		if MatchAll(l, state, preds) {
			matched = append(matched, l)
		}
	}

	sortInPlace(matched, state.SortKey)
	return matched
}

func Run(src ListingSource, state models.FilterState) Result {
	listings := Evaluate(src, state)
	return Result{
		Listings: listings,
		Count:    len(listings),
		Empty:    len(listings) == 0,
	}
}

// Clear is the full reset: every field, the global query included, returns
// to its default. Encode(Clear()) is empty.
func Clear() models.FilterState {
	return models.DefaultFilterState()
}
