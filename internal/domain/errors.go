package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id is absent from the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrNoVariants is returned when a raw record carries zero variants and
	// is therefore rejected from the canonical set
	ErrNoVariants = errors.New("raw record has no variants")

	// ErrSourceMissing is returned when a candidate data artifact does not exist
	ErrSourceMissing = errors.New("data source missing")

	// ErrMalformedSource is returned when a candidate artifact parses but has
	// neither a products envelope nor array shape
	ErrMalformedSource = errors.New("data source has unexpected shape")

	// ErrEmptyCatalog is returned when a source yields zero usable records
	ErrEmptyCatalog = errors.New("data source yielded no records")

	// ErrRateLimited is returned when a client exceeds the request rate limit
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUnauthorized is returned when a request carries no valid API token
	ErrUnauthorized = errors.New("missing or invalid API token")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
