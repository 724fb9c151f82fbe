package discovery

import (
	"net/url"

	"github.com/javajoker/listing-discovery/internal/models"
)

type TargetKind string

const (
	TargetCategory TargetKind = "category"
	TargetQuery    TargetKind = "query"
)

// Target is what selecting a suggestion navigates to. The matcher only
// returns it; the caller commits it into its FilterState.
type Target struct {
	Kind  TargetKind `json:"kind"`
	Value string     `json:"value"`
}

func CategoryTarget(c models.Category) Target {
	return Target{Kind: TargetCategory, Value: c.Slug}
}

// ListingTarget searches for the listing's exact title.
func ListingTarget(l models.Listing) Target {
	return Target{Kind: TargetQuery, Value: l.Title}
}

// Apply commits the target into state and returns the result.
func (t Target) Apply(state models.FilterState) models.FilterState {
	switch t.Kind {
	case TargetCategory:
		state.Category = t.Value
	case TargetQuery:
		state.GlobalQuery = t.Value
	}
	return state
}

// Values is the shareable query of a fresh discovery view opened on the
// target.
func (t Target) Values() url.Values {
	return Encode(t.Apply(models.DefaultFilterState()))
}

// Path is the listings route the front end navigates to.
func (t Target) Path() string {
	return ListingsPath(t.Values())
}

func ListingsPath(v url.Values) string {
	if len(v) == 0 {
		return "/listings"
	}
	return "/listings?" + v.Encode()
}
