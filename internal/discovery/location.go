package discovery

import "github.com/javajoker/listing-discovery/internal/models"

// LocationProvider supplies the default location of a new discovery view.
// How the value is acquired is the provider's business.
type LocationProvider interface {
	DefaultLocation() string
}

// StaticLocation always provides the same place name.
type StaticLocation string

func (s StaticLocation) DefaultLocation() string {
	return string(s)
}

// NewFilterState returns the defaults with the provider's location.
func NewFilterState(p LocationProvider) models.FilterState {
	state := models.DefaultFilterState()
	if p == nil {
		return state
	}
	if loc := p.DefaultLocation(); loc != "" {
		state.Location = loc
	}
	return state
}
