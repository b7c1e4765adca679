package domain

import "context"

// CacheRepository defines the interface for the per-query result cache.
// Entries live for the process lifetime; there is no eviction or TTL.
type CacheRepository interface {
	Get(ctx context.Context, key string) (*CompareResult, error)
	Set(ctx context.Context, key string, value *CompareResult) error
}

// IngredientSource looks up ingredient names for a product in an external
// directory. Implementations absorb every upstream failure and return an
// empty slice instead; this call never fails.
type IngredientSource interface {
	Ingredients(ctx context.Context, productName string) []string
}

// PriceSource searches an external retail site for price listings.
// Same failure contract as IngredientSource: best effort, never fails.
type PriceSource interface {
	Listings(ctx context.Context, keyword string) []PriceListing
}

// CatalogRepository defines access to the persisted product catalog. Unlike
// the scrape sources the catalog is an owned dependency: failures propagate.
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, product *Product) error
}
