package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LookupsRepository serves small reference lists for client pickers.
type LookupsRepository interface {
	Categories(ctx context.Context) ([]string, error)
}

// PGXLookupsRepository implements LookupsRepository with pgx.
type PGXLookupsRepository struct {
	pool dbPool
}

// NewPGXLookupsRepository instantiates a lookups repository.
func NewPGXLookupsRepository(pool *pgxpool.Pool) *PGXLookupsRepository {
	return &PGXLookupsRepository{pool: pool}
}

// Categories returns the distinct product and service category slugs in use.
func (r *PGXLookupsRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT DISTINCT category_slug FROM products WHERE category_slug IS NOT NULL
        UNION
        SELECT DISTINCT service_category_slug FROM services WHERE service_category_slug IS NOT NULL
        ORDER BY 1
    `)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, slug)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}
