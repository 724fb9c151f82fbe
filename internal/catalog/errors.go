// internal/catalog/errors.go
package catalog

import "errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidFixture  = errors.New("invalid catalog fixture")
)
