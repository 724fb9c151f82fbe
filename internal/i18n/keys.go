// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Listings
	KeyListingsFound      = "listings.found"
	KeyListingsResultsFor = "listings.results_for"
	KeyListingsAll        = "listings.all"
	KeyListingsEmpty      = "listings.empty"
	KeyListingNotFound    = "listing.not_found"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Rate limiting
	KeyRateLimitExceeded = "rate_limit.exceeded"
)
