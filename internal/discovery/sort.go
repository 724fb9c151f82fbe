package discovery

import (
	"cmp"
	"slices"

	"github.com/javajoker/listing-discovery/internal/models"
)

// sortInPlace orders listings stably by key; unknown keys sort newest
// first.
func sortInPlace(listings []models.Listing, key models.SortKey) {
	switch key {
	case models.SortPriceLow:
		slices.SortStableFunc(listings, func(a, b models.Listing) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case models.SortPriceHigh:
		slices.SortStableFunc(listings, func(a, b models.Listing) int {
			return cmp.Compare(b.Price, a.Price)
		})
	default:
		slices.SortStableFunc(listings, func(a, b models.Listing) int {
			return b.CreatedAt.Compare(a.CreatedAt.Time)
		})
	}
}
