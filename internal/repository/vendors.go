package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nibashhq/marketplace-api/internal/entity"
)

var (
	// ErrVendorNotFound is returned when no vendor matches the lookup criteria.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrVendorEmailDuplicate is returned when registration hits the email unique key.
	ErrVendorEmailDuplicate = errors.New("vendor email already exists")
)

// VendorProfileUpdate carries the column values for a profile PATCH. Pointer
// fields bind NULL when nil; every field here is written on each update, which
// is how the profile endpoint behaves.
type VendorProfileUpdate struct {
	CompanyName      string
	Email            string
	Phone            string
	Location         string
	LogoURL          *string
	JobType          *string
	Description      *string
	Latitude         *float64
	Longitude        *float64
	WhatsappLink     *string
	ServiceRadiusKm  int
	VisitingCardURL  *string
	ShopAddress      *string
	ServiceLocations *string
}

// VendorsRepository declares persistence operations for vendor accounts.
type VendorsRepository interface {
	Create(ctx context.Context, companyName, email, passwordHash, phone string) (*entity.Vendor, error)
	FindByEmail(ctx context.Context, email string) (*entity.Vendor, error)
	GetProfile(ctx context.Context, vendorID int64) (*entity.Vendor, error)
	GetType(ctx context.Context, vendorID int64) (string, error)
	UpdateType(ctx context.Context, vendorID int64, vendorType string) error
	UpdateProfile(ctx context.Context, vendorID int64, upd VendorProfileUpdate) error
	UpdateLocation(ctx context.Context, vendorID int64, latitude, longitude float64, locationName string) error
	RequestVerification(ctx context.Context, vendorID int64, docs entity.VerificationDocs) error
	UpdateRating(ctx context.Context, vendorID int64, rating float64) error
}

// profileColumns is the projection shared by every profile read.
const profileColumns = `
        vendor_id,
        vendor_name,
        vendor_email,
        password_hash,
        phone,
        location,
        latitude,
        longitude,
        logo_url,
        vendor_type,
        rating,
        job_type,
        vendor_description,
        whatsapp_link,
        service_radius_km,
        visiting_card_url,
        shop_address,
        service_locations,
        verification_status,
        verification_requested_at,
        verification_documents`

// PGXVendorsRepository implements VendorsRepository with pgx.
type PGXVendorsRepository struct {
	pool dbPool
}

// NewPGXVendorsRepository instantiates a vendors repository.
func NewPGXVendorsRepository(pool *pgxpool.Pool) *PGXVendorsRepository {
	return &PGXVendorsRepository{pool: pool}
}

func scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var (
		v       entity.Vendor
		rawLocs *string
		rawDocs *string
	)
	err := row.Scan(
		&v.VendorID,
		&v.CompanyName,
		&v.Email,
		&v.PasswordHash,
		&v.Phone,
		&v.Location,
		&v.Latitude,
		&v.Longitude,
		&v.LogoURL,
		&v.VendorType,
		&v.Rating,
		&v.JobType,
		&v.Description,
		&v.WhatsappLink,
		&v.ServiceRadiusKm,
		&v.VisitingCardURL,
		&v.ShopAddress,
		&rawLocs,
		&v.VerificationStatus,
		&v.VerificationRequestedAt,
		&rawDocs,
	)
	if err != nil {
		return nil, err
	}

	v.ServiceLocations = entity.DecodeServiceLocations(rawLocs)
	v.VerificationDocuments = entity.DecodeVerificationDocs(rawDocs)
	return &v, nil
}

// Create inserts a minimal vendor row from the registration flow.
func (r *PGXVendorsRepository) Create(ctx context.Context, companyName, email, passwordHash, phone string) (*entity.Vendor, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO vendors (vendor_name, vendor_email, password_hash, phone)
        VALUES ($1, $2, $3, NULLIF($4, ''))
        RETURNING`+profileColumns+`
    `, companyName, email, passwordHash, phone)

	vendor, err := scanVendor(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "vendor_email") {
			return nil, fmt.Errorf("%w: %v", ErrVendorEmailDuplicate, pgErr)
		}
		return nil, fmt.Errorf("insert vendor: %w", err)
	}
	return vendor, nil
}

// FindByEmail fetches a vendor account for credential checks.
func (r *PGXVendorsRepository) FindByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+profileColumns+` FROM vendors WHERE vendor_email = $1`, email)
	vendor, err := scanVendor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("query vendor by email: %w", err)
	}
	return vendor, nil
}

// GetProfile fetches the full vendor profile by id.
func (r *PGXVendorsRepository) GetProfile(ctx context.Context, vendorID int64) (*entity.Vendor, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+profileColumns+` FROM vendors WHERE vendor_id = $1 LIMIT 1`, vendorID)
	vendor, err := scanVendor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("query vendor profile: %w", err)
	}
	return vendor, nil
}

// GetType returns only the vendor_type column.
func (r *PGXVendorsRepository) GetType(ctx context.Context, vendorID int64) (string, error) {
	var vendorType string
	err := r.pool.QueryRow(ctx, `SELECT vendor_type FROM vendors WHERE vendor_id = $1 LIMIT 1`, vendorID).Scan(&vendorType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrVendorNotFound
		}
		return "", fmt.Errorf("query vendor type: %w", err)
	}
	return vendorType, nil
}

// UpdateType sets the vendor classification. Value validation happens upstream.
func (r *PGXVendorsRepository) UpdateType(ctx context.Context, vendorID int64, vendorType string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE vendors SET vendor_type = $1, updated_at = NOW() WHERE vendor_id = $2`, vendorType, vendorID)
	if err != nil {
		return fmt.Errorf("update vendor type: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrVendorNotFound
	}
	return nil
}

// UpdateProfile writes the full candidate column set for a profile PATCH.
func (r *PGXVendorsRepository) UpdateProfile(ctx context.Context, vendorID int64, upd VendorProfileUpdate) error {
	var set updateSet
	set.Set("vendor_name", upd.CompanyName)
	set.Set("vendor_email", upd.Email)
	set.Set("phone", upd.Phone)
	set.Set("location", upd.Location)
	set.Set("logo_url", upd.LogoURL)
	set.Set("job_type", upd.JobType)
	set.Set("vendor_description", upd.Description)
	set.Set("latitude", upd.Latitude)
	set.Set("longitude", upd.Longitude)
	set.Set("whatsapp_link", upd.WhatsappLink)
	set.Set("service_radius_km", upd.ServiceRadiusKm)
	set.Set("visiting_card_url", upd.VisitingCardURL)
	set.Set("shop_address", upd.ShopAddress)
	set.Set("service_locations", upd.ServiceLocations)

	if set.Empty() {
		return ErrNoFields
	}

	clause, args := set.Clause(1)
	args = append(args, vendorID)
	query := fmt.Sprintf(`UPDATE vendors SET %s, updated_at = NOW() WHERE vendor_id = $%d`, clause, len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update vendor profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrVendorNotFound
	}
	return nil
}

// UpdateLocation writes only the coordinate columns and the location label.
func (r *PGXVendorsRepository) UpdateLocation(ctx context.Context, vendorID int64, latitude, longitude float64, locationName string) error {
	cmd, err := r.pool.Exec(ctx, `
        UPDATE vendors
        SET latitude = $1, longitude = $2, location = $3, updated_at = NOW()
        WHERE vendor_id = $4
    `, latitude, longitude, locationName, vendorID)
	if err != nil {
		return fmt.Errorf("update vendor location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrVendorNotFound
	}
	return nil
}

// RequestVerification stores the document set and flips the status to pending.
func (r *PGXVendorsRepository) RequestVerification(ctx context.Context, vendorID int64, docs entity.VerificationDocs) error {
	cmd, err := r.pool.Exec(ctx, `
        UPDATE vendors
        SET verification_status = 'pending',
            verification_requested_at = NOW(),
            verification_documents = $1,
            updated_at = NOW()
        WHERE vendor_id = $2
    `, docs.Encode(), vendorID)
	if err != nil {
		return fmt.Errorf("request vendor verification: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrVendorNotFound
	}
	return nil
}

// UpdateRating stores a recomputed rating aggregate.
func (r *PGXVendorsRepository) UpdateRating(ctx context.Context, vendorID int64, rating float64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE vendors SET rating = $1, updated_at = NOW() WHERE vendor_id = $2`, rating, vendorID)
	if err != nil {
		return fmt.Errorf("update vendor rating: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrVendorNotFound
	}
	return nil
}
