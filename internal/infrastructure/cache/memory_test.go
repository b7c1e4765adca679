package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/hero4147/cosmetic-compare-backend/internal/domain"
)

func testResult(product string) *domain.CompareResult {
	return &domain.CompareResult{
		Product:     product,
		Ingredients: []string{"Aqua", "Glycerin"},
		Prices: []domain.PriceEntry{
			{Name: product, Price: 12000, Link: "https://example.com/p/1"},
		},
	}
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	value := testResult("Serum A")
	if err := cache.Set(ctx, "Serum A", value); err != nil {
		t.Fatalf("Set() error = %v, want nil", err)
	}

	got, err := cache.Get(ctx, "Serum A")
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}
	// The stored pointer is returned as-is
	if got != value {
		t.Errorf("Get() = %p, want the identical object %p", got, value)
	}
}

func TestMemoryCache_GetMiss(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_, err := cache.Get(ctx, "never-stored")
	if err != domain.ErrCacheMiss {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_KeysAreCaseSensitive(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "Serum", testResult("Serum")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cache.Set(ctx, "serum ", testResult("serum ")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if cache.Size() != 2 {
		t.Errorf("Size() = %d, want 2 (keys differing in case/whitespace are distinct)", cache.Size())
	}

	got, err := cache.Get(ctx, "Serum")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Product != "Serum" {
		t.Errorf("Product = %q, want %q", got.Product, "Serum")
	}
}

func TestMemoryCache_SetOverwrites(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	first := testResult("Toner")
	second := testResult("Toner")

	cache.Set(ctx, "Toner", first)
	cache.Set(ctx, "Toner", second)

	got, err := cache.Get(ctx, "Toner")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != second {
		t.Errorf("Get() returned the old entry after overwrite")
	}
	if cache.Size() != 1 {
		t.Errorf("Size() = %d, want 1", cache.Size())
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "a", testResult("a"))
	cache.Set(ctx, "b", testResult("b"))
	cache.Clear()

	if cache.Size() != 0 {
		t.Errorf("Size() = %d after Clear(), want 0", cache.Size())
	}
	if _, err := cache.Get(ctx, "a"); err != domain.ErrCacheMiss {
		t.Errorf("Get() after Clear() error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("product-%d", n)
			cache.Set(ctx, key, testResult(key))
		}(i)
		go func(n int) {
			defer wg.Done()
			cache.Get(ctx, fmt.Sprintf("product-%d", n))
		}(i)
	}
	wg.Wait()

	if cache.Size() != 50 {
		t.Errorf("Size() = %d, want 50", cache.Size())
	}
}
