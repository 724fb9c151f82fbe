package discovery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/javajoker/listing-discovery/internal/catalog"
	"github.com/javajoker/listing-discovery/internal/models"
)

func TestSuggestTitleMatch(t *testing.T) {
	got := Suggest(demoSnapshot(t), "ip")

	assert.Empty(t, got.Categories)
	assert.Contains(t, ids(got.Listings), "1")
	assert.False(t, got.Empty())
}

func TestSuggestCategoryByNameAndSlug(t *testing.T) {
	snap := demoSnapshot(t)

	assert.Equal(t, []string{"mobiles"}, slugs(Suggest(snap, "Phones").Categories))
	assert.Equal(t, []string{"appliances"}, slugs(Suggest(snap, "applian").Categories))
	assert.Equal(t, []string{"vehicles"}, slugs(Suggest(snap, "VEHIC").Categories))
}

func TestSuggestBelowMinimumLength(t *testing.T) {
	for _, q := range []string{"", "a", " a ", "   ", "\t\n", "é"} {
		t.Run(fmt.Sprintf("%q", q), func(t *testing.T) {
			src := &countingSource{
				listings:   catalog.DefaultFixture().Listings,
				categories: catalog.DefaultFixture().Categories,
			}
			got := Suggest(src, q)

			assert.Equal(t, Suggestions{Categories: []models.Category{}, Listings: []models.Listing{}}, got)
			assert.True(t, got.Empty())
			assert.Zero(t, src.listingReads+src.categoryReads, "no scan below the gate")
		})
	}
}

func TestSuggestMatchesUntrimmedText(t *testing.T) {
	snap := demoSnapshot(t)

	assert.Equal(t, []string{"7"}, ids(Suggest(snap, "x90j").Listings))
	assert.True(t, Suggest(snap, "x90j ").Empty(), "trailing space is part of the match")
	assert.True(t, Suggest(snap, "  sofa  ").Empty())
	assert.True(t, Suggest(snap, " 2022 ").Empty())
	assert.True(t, Suggest(snap, "phones ").Empty())

	// Inner spaces still match where the text has them
	assert.Equal(t, []string{"mobiles"}, slugs(Suggest(snap, "mobile phones").Categories))
}

func TestMatcherGated(t *testing.T) {
	m := NewMatcher(DefaultSuggestOptions())

	for _, q := range []string{"", "a", " a ", "\t\n", "é"} {
		assert.True(t, m.Gated(q), "%q", q)
	}
	for _, q := range []string{"ip", " ip", "éé", "x90j "} {
		assert.False(t, m.Gated(q), "%q", q)
	}

	strict := NewMatcher(SuggestOptions{MinQueryLength: 4})
	assert.True(t, strict.Gated("sof"))
	assert.True(t, strict.Suggest(demoSnapshot(t), "sof").Empty())
	assert.False(t, strict.Gated("sofa"))
}

func TestSuggestCapsInCatalogOrder(t *testing.T) {
	src := &countingSource{}
	for i := 1; i <= 6; i++ {
		src.categories = append(src.categories, models.Category{
			ID: fmt.Sprint(i), Name: fmt.Sprintf("Widgets %d", i), Slug: fmt.Sprintf("widgets-%d", i),
		})
		src.listings = append(src.listings, listing(fmt.Sprint(i), int64(i), "2024-01-01"))
		src.listings[i-1].Title = fmt.Sprintf("Widget model %d", i)
	}

	got := Suggest(src, "widget")
	assert.Equal(t, []string{"widgets-1", "widgets-2"}, slugs(got.Categories))
	assert.Equal(t, []string{"1", "2", "3"}, ids(got.Listings))
}

func TestSuggestCapsHoldForAnyQuery(t *testing.T) {
	snap := demoSnapshot(t)
	for _, q := range []string{"es", "an", "e ", "ing", "  in", "00", "mo", "zzz"} {
		got := Suggest(snap, q)
		assert.LessOrEqual(t, len(got.Categories), DefaultMaxCategories, q)
		assert.LessOrEqual(t, len(got.Listings), DefaultMaxListings, q)
	}
}

func TestSuggestNoMatchSignalsNoSuggestions(t *testing.T) {
	got := Suggest(demoSnapshot(t), "zeppelin")
	assert.True(t, got.Empty())
	assert.Empty(t, got.Targets())
}

func TestNewMatcherOptions(t *testing.T) {
	m := NewMatcher(SuggestOptions{MinQueryLength: 4, MaxListings: 1})
	assert.Equal(t, SuggestOptions{MinQueryLength: 4, MaxCategories: 2, MaxListings: 1}, m.Options())

	snap := demoSnapshot(t)
	assert.True(t, m.Suggest(snap, "sof").Empty())
	assert.Len(t, m.Suggest(snap, "condition").Listings, 1)
}

func TestSuggestionTargets(t *testing.T) {
	snap := demoSnapshot(t)
	got := Suggest(snap, "mobile")
	targets := got.Targets()

	if assert.NotEmpty(t, targets) {
		assert.Equal(t, Target{Kind: TargetCategory, Value: "mobiles"}, targets[0])
		assert.Equal(t, "/listings?category=mobiles", targets[0].Path())
	}

	iphone := Suggest(snap, "iphone").Listings[0]
	target := ListingTarget(iphone)
	assert.Equal(t, Target{Kind: TargetQuery, Value: iphone.Title}, target)

	state := models.DefaultFilterState()
	state.Category = "electronics"
	applied := target.Apply(state)
	assert.Equal(t, iphone.Title, applied.GlobalQuery)
	assert.Equal(t, "electronics", applied.Category, "only the targeted field changes")
	assert.Equal(t, "electronics", state.Category)

	assert.Equal(t, []string{"1"}, ids(Evaluate(snap, target.Apply(models.DefaultFilterState()))))
	assert.Equal(t, iphone.Title, DecodeQuery(target.Values().Encode()).GlobalQuery)
}
