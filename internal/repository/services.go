package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nibashhq/marketplace-api/internal/entity"
)

// ErrServiceNotFound is returned when no service row matches the id and owner.
var ErrServiceNotFound = errors.New("service not found")

// ServiceUpdate carries optional column values for a service PATCH.
type ServiceUpdate struct {
	Title        *string
	Description  *string
	RateBDT      *float64
	CategorySlug *string
	ImageURL     *string
}

// ServicesRepository declares persistence operations for vendor services.
type ServicesRepository interface {
	ListByVendor(ctx context.Context, vendorID int64) ([]entity.Service, error)
	Create(ctx context.Context, s *entity.Service) (*entity.Service, error)
	Update(ctx context.Context, vendorID, serviceID int64, upd ServiceUpdate) (*entity.Service, error)
	Delete(ctx context.Context, vendorID, serviceID int64) error
}

// PGXServicesRepository implements ServicesRepository with pgx.
type PGXServicesRepository struct {
	pool dbPool
}

// NewPGXServicesRepository instantiates a services repository.
func NewPGXServicesRepository(pool *pgxpool.Pool) *PGXServicesRepository {
	return &PGXServicesRepository{pool: pool}
}

const serviceColumns = `service_id, vendor_id, title, description, rate_bdt, service_category_slug, image_url, created_at, updated_at`

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	err := row.Scan(&s.ServiceID, &s.VendorID, &s.Title, &s.Description, &s.RateBDT, &s.CategorySlug, &s.ImageURL, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByVendor returns the vendor's own services, newest first.
func (r *PGXServicesRepository) ListByVendor(ctx context.Context, vendorID int64) ([]entity.Service, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+serviceColumns+` FROM services WHERE vendor_id = $1 ORDER BY created_at DESC`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []entity.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}
	return services, nil
}

// Create inserts a new service owned by the given vendor.
func (r *PGXServicesRepository) Create(ctx context.Context, s *entity.Service) (*entity.Service, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO services (vendor_id, title, description, rate_bdt, service_category_slug, image_url)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+serviceColumns+`
    `, s.VendorID, s.Title, s.Description, s.RateBDT, s.CategorySlug, s.ImageURL)

	created, err := scanService(row)
	if err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	return created, nil
}

// Update patches caller-supplied columns on a service the vendor owns.
func (r *PGXServicesRepository) Update(ctx context.Context, vendorID, serviceID int64, upd ServiceUpdate) (*entity.Service, error) {
	var set updateSet
	if upd.Title != nil {
		set.Set("title", *upd.Title)
	}
	if upd.Description != nil {
		set.Set("description", *upd.Description)
	}
	if upd.RateBDT != nil {
		set.Set("rate_bdt", *upd.RateBDT)
	}
	if upd.CategorySlug != nil {
		set.Set("service_category_slug", *upd.CategorySlug)
	}
	if upd.ImageURL != nil {
		set.Set("image_url", *upd.ImageURL)
	}

	if set.Empty() {
		return nil, ErrNoFields
	}

	clause, args := set.Clause(1)
	args = append(args, serviceID, vendorID)
	query := fmt.Sprintf(`
        UPDATE services SET %s, updated_at = NOW()
        WHERE service_id = $%d AND vendor_id = $%d
        RETURNING `+serviceColumns,
		clause, len(args)-1, len(args))

	updated, err := scanService(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("update service: %w", err)
	}
	return updated, nil
}

// Delete removes a service the vendor owns.
func (r *PGXServicesRepository) Delete(ctx context.Context, vendorID, serviceID int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM services WHERE service_id = $1 AND vendor_id = $2`, serviceID, vendorID)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}
