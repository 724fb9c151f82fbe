package discovery

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/javajoker/listing-discovery/internal/catalog"
	"github.com/javajoker/listing-discovery/internal/models"
)

// countingSource records how often the catalog is read.
type countingSource struct {
	listings      []models.Listing
	categories    []models.Category
	listingReads  int
	categoryReads int
}

func (s *countingSource) AllListings() []models.Listing {
	s.listingReads++
	return append([]models.Listing(nil), s.listings...)
}

func (s *countingSource) AllCategories() []models.Category {
	s.categoryReads++
	return append([]models.Category(nil), s.categories...)
}

func demoSnapshot(t *testing.T) catalog.Snapshot {
	t.Helper()
	store, err := catalog.NewStore(catalog.DefaultFixture())
	require.NoError(t, err)
	return store.Snapshot()
}

func ids(listings []models.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func slugs(categories []models.Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.Slug)
	}
	return out
}

func listing(id string, price int64, created string) models.Listing {
	return models.Listing{
		ID:        id,
		Title:     "Listing " + id,
		Price:     price,
		Category:  "misc",
		Condition: models.ConditionUsed,
		Location:  "Pune, Maharashtra",
		CreatedAt: models.MustDate(created),
	}
}
