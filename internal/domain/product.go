package domain

import "time"

// Product is a persisted catalog record. The compare pipeline only reads
// products; writes happen through the admin create endpoint.
type Product struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Ingredients []string  `json:"ingredients"`
	Price       float64   `json:"price"`
	Weight      float64   `json:"weight"` // grams
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PriceListing is a single result card scraped from the retail search.
// Price is the raw scraped integer with thousands separators stripped.
type PriceListing struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Link  string `json:"link"`
}

// PriceEntry is one element of the merged prices array. External listings
// carry only name/price/link; catalog entries additionally carry the derived
// per-gram price and the stored ingredient list.
type PriceEntry struct {
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	PricePerGram string   `json:"pricePerGram,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Link         string   `json:"link"`
}

// CompareResult is the aggregated answer for one product query. Prices holds
// external listings first, catalog entries after.
type CompareResult struct {
	Product     string       `json:"product"`
	Ingredients []string     `json:"ingredients"`
	Prices      []PriceEntry `json:"prices"`
}

// EntryFromListing converts a scraped retail listing into the merged shape.
func EntryFromListing(l PriceListing) PriceEntry {
	return PriceEntry{
		Name:  l.Name,
		Price: float64(l.Price),
		Link:  l.Link,
	}
}
