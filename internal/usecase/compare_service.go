package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/hero4147/cosmetic-compare-backend/internal/domain"
)

// CompareService drives the multi-source aggregation pipeline: cache check,
// concurrent lookups against the two scrape sources and the catalog,
// normalization, merge, cache write.
type CompareService struct {
	cache       domain.CacheRepository
	ingredients domain.IngredientSource
	prices      domain.PriceSource
	catalog     domain.CatalogRepository
	group       singleflight.Group
}

// NewCompareService creates a new compare service with dependencies
func NewCompareService(
	cache domain.CacheRepository,
	ingredients domain.IngredientSource,
	prices domain.PriceSource,
	catalog domain.CatalogRepository,
) *CompareService {
	return &CompareService{
		cache:       cache,
		ingredients: ingredients,
		prices:      prices,
		catalog:     catalog,
	}
}

// Compare aggregates ingredient and price data for a product name.
// Flow: check cache -> fan out to sources and catalog -> normalize -> merge
// -> cache -> return. The raw query string is both the search term for the
// external sources and the cache key: case-sensitive, untrimmed.
func (s *CompareService) Compare(ctx context.Context, productName string) (*domain.CompareResult, error) {
	if productName == "" {
		return nil, domain.ErrMissingProduct
	}

	cached, err := s.cache.Get(ctx, productName)
	if err == nil && cached != nil {
		log.Printf("[compare] cache hit for %q", productName)
		return cached, nil
	}

	// Concurrent misses on the same key coalesce into one computation.
	v, err, _ := s.group.Do(productName, func() (interface{}, error) {
		return s.aggregate(ctx, productName)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.CompareResult), nil
}

func (s *CompareService) aggregate(ctx context.Context, productName string) (*domain.CompareResult, error) {
	var (
		ingredients []string
		listings    []domain.PriceListing
		products    []domain.Product
	)

	// The scrape sources cannot fail by contract, so Wait only ever reports
	// a catalog error, and only after all three lookups have settled.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ingredients = s.ingredients.Ingredients(gctx, productName)
		return nil
	})
	g.Go(func() error {
		listings = s.prices.Listings(gctx, productName)
		return nil
	})
	g.Go(func() error {
		var err error
		products, err = s.catalog.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	prices := make([]domain.PriceEntry, 0, len(listings)+len(products))
	for _, l := range listings {
		prices = append(prices, domain.EntryFromListing(l))
	}
	prices = append(prices, NormalizeCatalog(products)...)

	if ingredients == nil {
		ingredients = []string{}
	}

	result := &domain.CompareResult{
		Product:     productName,
		Ingredients: ingredients,
		Prices:      prices,
	}

	// A failed write only costs a recomputation on the next request.
	if err := s.cache.Set(ctx, productName, result); err != nil {
		log.Printf("[compare] failed to cache result for %q: %v", productName, err)
	}

	return result, nil
}
