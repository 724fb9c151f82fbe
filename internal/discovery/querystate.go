package discovery

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/javajoker/listing-discovery/internal/models"
)

// Shareable URL parameters. Condition, price bounds, brand query and sort
// are session-local and never written to the URL.
const (
	ParamQuery    = "q"
	ParamCategory = "category"
	ParamLocation = "location"
)

// Encode writes the shareable subset of state; default-valued fields are
// omitted.
func Encode(state models.FilterState) url.Values {
	v := url.Values{}
	if state.GlobalQuery != "" {
		v.Set(ParamQuery, state.GlobalQuery)
	}
	if state.Category != "" && state.Category != models.AllCategories {
		v.Set(ParamCategory, state.Category)
	}
	if state.Location != "" && state.Location != models.AllLocations {
		v.Set(ParamLocation, state.Location)
	}
	return v
}

// Decode never fails: absent, blank or garbled parameters decode to the
// field default, and every session-local field starts at its default.
func Decode(v url.Values) models.FilterState {
	state := models.DefaultFilterState()

	if q := v.Get(ParamQuery); utf8.ValidString(q) {
		state.GlobalQuery = q
	}
	if c := v.Get(ParamCategory); validParam(c) {
		state.Category = c
	}
	if loc := v.Get(ParamLocation); validParam(loc) {
		state.Location = loc
	}
	return state
}

// DecodeQuery decodes a raw query string. Pairs url.ParseQuery rejects are
// dropped; the rest still apply.
func DecodeQuery(raw string) models.FilterState {
	v, _ := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	return Decode(v)
}

// SubmitQuery builds the shareable query of a search box submission: the
// trimmed text plus the caller's current location.
func SubmitQuery(rawQuery, location string) url.Values {
	state := models.DefaultFilterState()
	state.GlobalQuery = strings.TrimSpace(rawQuery)
	if location != "" {
		state.Location = location
	}
	return Encode(state)
}

func validParam(s string) bool {
	return strings.TrimSpace(s) != "" && utf8.ValidString(s)
}
