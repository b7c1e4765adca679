package domain

import "errors"

var (
	// ErrMissingProduct is returned when the product query parameter is empty or absent
	ErrMissingProduct = errors.New("product name required")

	// ErrCacheMiss is returned when a query key has no cached result
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogUnavailable is returned when the product catalog cannot be read
	ErrCatalogUnavailable = errors.New("product catalog unavailable")

	// ErrProductNotFound is returned when a catalog record does not exist
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidProduct is returned when a catalog record fails validation on create
	ErrInvalidProduct = errors.New("invalid product record")
)
