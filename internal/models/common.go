// internal/models/common.go
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used by the catalog fixture.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
type Date struct {
	time.Time
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return Date{Time: t}, nil
}

// MustDate is ParseDate for fixture literals; it panics on malformed input.
func MustDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*d = Date{}
		return nil
	}
	// Timestamps are accepted and truncated to their calendar date.
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		*d = Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Enums
type Condition string

const (
	ConditionAll     Condition = "all"
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like-new"
	ConditionUsed    Condition = "used"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionUsed:
		return true
	}
	return false
}

type ListingStatus string

const (
	ListingStatusActive  ListingStatus = "active"
	ListingStatusExpired ListingStatus = "expired"
	ListingStatusSold    ListingStatus = "sold"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortNewest, SortPriceLow, SortPriceHigh:
		return true
	}
	return false
}

// Sentinels meaning "no filter applied".
const (
	AllCategories = "all"
	AllLocations  = "All Locations"
)
