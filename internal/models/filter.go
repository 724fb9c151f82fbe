// internal/models/filter.go
package models

import "strings"

// FilterState is the complete query evaluated by the discovery pipeline.
// Nil price bounds mean "unset".
type FilterState struct {
	GlobalQuery string    `json:"q"`
	Category    string    `json:"category"`
	Condition   Condition `json:"condition" validate:"omitempty,oneof=all new like-new used"`
	PriceMin    *int64    `json:"price_min,omitempty" validate:"omitempty,min=0"`
	PriceMax    *int64    `json:"price_max,omitempty" validate:"omitempty,min=0"`
	Location    string    `json:"location"`
	BrandQuery  string    `json:"brand_query"`
	SortKey     SortKey   `json:"sort" validate:"omitempty,oneof=newest price-low price-high"`
}

func DefaultFilterState() FilterState {
	return FilterState{
		Category:  AllCategories,
		Condition: ConditionAll,
		Location:  AllLocations,
		SortKey:   SortNewest,
	}
}

// Normalize fills blank sentinel fields with their defaults so that a
// partially populated state is never handed to the pipeline.
func (s FilterState) Normalize() FilterState {
	if strings.TrimSpace(s.Category) == "" {
		s.Category = AllCategories
	}
	if s.Condition == "" {
		s.Condition = ConditionAll
	}
	if strings.TrimSpace(s.Location) == "" {
		s.Location = AllLocations
	}
	if s.SortKey == "" {
		s.SortKey = SortNewest
	}
	return s
}

// IsDefault reports whether no filter deviates from its default.
func (s FilterState) IsDefault() bool {
	d := DefaultFilterState()
	return s.GlobalQuery == d.GlobalQuery &&
		s.Category == d.Category &&
		s.Condition == d.Condition &&
		s.PriceMin == nil && s.PriceMax == nil &&
		s.Location == d.Location &&
		s.BrandQuery == d.BrandQuery &&
		s.SortKey == d.SortKey
}

// Price returns a pointer suitable for the optional price bounds.
func Price(v int64) *int64 {
	return &v
}
