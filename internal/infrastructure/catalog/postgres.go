package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hero4147/cosmetic-compare-backend/internal/domain"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS products (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	ingredients TEXT[] NOT NULL DEFAULT '{}',
	price       DOUBLE PRECISION NOT NULL,
	weight      DOUBLE PRECISION NOT NULL,
	link        TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresRepository is the pgx-backed product catalog. The catalog is an
// owned dependency: read failures propagate to the caller instead of being
// degraded like the scrape sources.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository connects to the catalog database, verifies the
// connection, and ensures the products table exists.
func NewPostgresRepository(ctx context.Context, databaseURL string, maxConns int32) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping catalog database: %w", err)
	}

	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure products table: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// FindAll returns every persisted product, in store order
func (r *PostgresRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, ingredients, price, weight, link, created_at FROM products`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Ingredients, &p.Price, &p.Weight, &p.Link, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	return products, nil
}

// Create persists a new product record, assigning its id and creation time
func (r *PostgresRepository) Create(ctx context.Context, p *domain.Product) error {
	if p.Name == "" || p.Price < 0 || p.Weight <= 0 {
		return domain.ErrInvalidProduct
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	if p.Ingredients == nil {
		p.Ingredients = []string{}
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO products (id, name, ingredients, price, weight, link, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Name, p.Ingredients, p.Price, p.Weight, p.Link, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return nil
}

// Close releases the underlying connection pool
func (r *PostgresRepository) Close() {
	r.pool.Close()
}
