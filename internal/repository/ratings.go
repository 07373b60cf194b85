package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nibashhq/marketplace-api/internal/entity"
)

// ErrDuplicateRating is returned when a customer rates the same target twice.
var ErrDuplicateRating = errors.New("rating already exists")

// RatingsRepository declares persistence operations for ratings.
type RatingsRepository interface {
	RateVendor(ctx context.Context, customerID, vendorID int64, score int, comment *string) (*entity.Rating, error)
	RateProduct(ctx context.Context, customerID, productID int64, score int, comment *string) (*entity.Rating, error)
	ListForVendor(ctx context.Context, vendorID int64) ([]entity.Rating, error)
	VendorAverage(ctx context.Context, vendorID int64) (float64, error)
}

// PGXRatingsRepository implements RatingsRepository with pgx.
type PGXRatingsRepository struct {
	pool dbPool
}

// NewPGXRatingsRepository instantiates a ratings repository.
func NewPGXRatingsRepository(pool *pgxpool.Pool) *PGXRatingsRepository {
	return &PGXRatingsRepository{pool: pool}
}

const ratingColumns = `rating_id, customer_id, vendor_id, product_id, score, comment, created_at`

// RateVendor records a customer's score for a vendor.
func (r *PGXRatingsRepository) RateVendor(ctx context.Context, customerID, vendorID int64, score int, comment *string) (*entity.Rating, error) {
	return r.insert(ctx, `
        INSERT INTO ratings (customer_id, vendor_id, score, comment)
        VALUES ($1, $2, $3, $4)
        RETURNING `+ratingColumns+`
    `, customerID, vendorID, score, comment)
}

// RateProduct records a customer's score for a product.
func (r *PGXRatingsRepository) RateProduct(ctx context.Context, customerID, productID int64, score int, comment *string) (*entity.Rating, error) {
	return r.insert(ctx, `
        INSERT INTO ratings (customer_id, product_id, score, comment)
        VALUES ($1, $2, $3, $4)
        RETURNING `+ratingColumns+`
    `, customerID, productID, score, comment)
}

func (r *PGXRatingsRepository) insert(ctx context.Context, query string, args ...any) (*entity.Rating, error) {
	var rating entity.Rating
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&rating.RatingID,
		&rating.CustomerID,
		&rating.VendorID,
		&rating.ProductID,
		&rating.Score,
		&rating.Comment,
		&rating.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateRating, pgErr)
		}
		return nil, fmt.Errorf("insert rating: %w", err)
	}
	return &rating, nil
}

// ListForVendor returns all ratings against a vendor, newest first.
func (r *PGXRatingsRepository) ListForVendor(ctx context.Context, vendorID int64) ([]entity.Rating, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+ratingColumns+` FROM ratings WHERE vendor_id = $1 ORDER BY created_at DESC`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list vendor ratings: %w", err)
	}
	defer rows.Close()

	var ratings []entity.Rating
	for rows.Next() {
		var rating entity.Rating
		if err := rows.Scan(
			&rating.RatingID,
			&rating.CustomerID,
			&rating.VendorID,
			&rating.ProductID,
			&rating.Score,
			&rating.Comment,
			&rating.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}
	return ratings, nil
}

// VendorAverage computes the mean score across a vendor's ratings.
func (r *PGXRatingsRepository) VendorAverage(ctx context.Context, vendorID int64) (float64, error) {
	var avg *float64
	err := r.pool.QueryRow(ctx, `SELECT AVG(score)::float8 FROM ratings WHERE vendor_id = $1`, vendorID).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("average vendor rating: %w", err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
