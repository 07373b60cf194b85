package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nibashhq/marketplace-api/internal/entity"
)

// ErrProductNotFound is returned when no product row matches the id and owner.
var ErrProductNotFound = errors.New("product not found")

// ProductUpdate carries optional column values for a product PATCH. Nil
// pointers mean "leave the column untouched".
type ProductUpdate struct {
	Title        *string
	Description  *string
	PriceBDT     *float64
	CategorySlug *string
	ImageURL     *string
}

// ProductsRepository declares persistence operations for vendor products.
type ProductsRepository interface {
	ListByVendor(ctx context.Context, vendorID int64) ([]entity.Product, error)
	Create(ctx context.Context, p *entity.Product) (*entity.Product, error)
	Update(ctx context.Context, vendorID, productID int64, upd ProductUpdate) (*entity.Product, error)
	Delete(ctx context.Context, vendorID, productID int64) error
	Exists(ctx context.Context, productID int64) (bool, error)
}

// PGXProductsRepository implements ProductsRepository with pgx.
type PGXProductsRepository struct {
	pool dbPool
}

// NewPGXProductsRepository instantiates a products repository.
func NewPGXProductsRepository(pool *pgxpool.Pool) *PGXProductsRepository {
	return &PGXProductsRepository{pool: pool}
}

const productColumns = `product_id, vendor_id, title, description, price_bdt, category_slug, image_url, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ProductID, &p.VendorID, &p.Title, &p.Description, &p.PriceBDT, &p.CategorySlug, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByVendor returns the vendor's own products, newest first.
func (r *PGXProductsRepository) ListByVendor(ctx context.Context, vendorID int64) ([]entity.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE vendor_id = $1 ORDER BY created_at DESC`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// Create inserts a new product owned by the given vendor.
func (r *PGXProductsRepository) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO products (vendor_id, title, description, price_bdt, category_slug, image_url)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+productColumns+`
    `, p.VendorID, p.Title, p.Description, p.PriceBDT, p.CategorySlug, p.ImageURL)

	created, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return created, nil
}

// Update patches caller-supplied columns on a product the vendor owns.
func (r *PGXProductsRepository) Update(ctx context.Context, vendorID, productID int64, upd ProductUpdate) (*entity.Product, error) {
	var set updateSet
	if upd.Title != nil {
		set.Set("title", *upd.Title)
	}
	if upd.Description != nil {
		set.Set("description", *upd.Description)
	}
	if upd.PriceBDT != nil {
		set.Set("price_bdt", *upd.PriceBDT)
	}
	if upd.CategorySlug != nil {
		set.Set("category_slug", *upd.CategorySlug)
	}
	if upd.ImageURL != nil {
		set.Set("image_url", *upd.ImageURL)
	}

	if set.Empty() {
		return nil, ErrNoFields
	}

	clause, args := set.Clause(1)
	args = append(args, productID, vendorID)
	query := fmt.Sprintf(`
        UPDATE products SET %s, updated_at = NOW()
        WHERE product_id = $%d AND vendor_id = $%d
        RETURNING `+productColumns,
		clause, len(args)-1, len(args))

	updated, err := scanProduct(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// Delete removes a product the vendor owns.
func (r *PGXProductsRepository) Delete(ctx context.Context, vendorID, productID int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1 AND vendor_id = $2`, productID, vendorID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Exists reports whether a product row exists at all, regardless of owner.
func (r *PGXProductsRepository) Exists(ctx context.Context, productID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE product_id = $1)`, productID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return exists, nil
}
