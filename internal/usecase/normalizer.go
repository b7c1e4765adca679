package usecase

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/hero4147/cosmetic-compare-backend/internal/domain"
)

// NormalizeCatalog converts catalog records into the merged price-entry
// shape, deriving the per-gram price. Pure, one-to-one, order-preserving;
// no deduplication against external listings or other catalog entries.
func NormalizeCatalog(products []domain.Product) []domain.PriceEntry {
	entries := make([]domain.PriceEntry, 0, len(products))
	for _, p := range products {
		entry := domain.PriceEntry{
			Name:        p.Name,
			Price:       p.Price,
			Ingredients: p.Ingredients,
			Link:        p.Link,
		}

		// Weight is positive by the catalog's write-side validation, but
		// pre-existing rows may violate that; the derived field is omitted
		// rather than rendered non-finite.
		if p.Weight > 0 {
			entry.PricePerGram = pricePerGram(p.Price, p.Weight)
		} else {
			log.Printf("[compare] product %q has non-positive weight %v, omitting pricePerGram", p.Name, p.Weight)
		}

		entries = append(entries, entry)
	}
	return entries
}

// pricePerGram renders price/weight with exactly one decimal digit
func pricePerGram(price, weight float64) string {
	return decimal.NewFromFloat(price).
		Div(decimal.NewFromFloat(weight)).
		StringFixed(1)
}
