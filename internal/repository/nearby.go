package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nibashhq/marketplace-api/internal/dto"
)

// distanceExpr is the spherical law of cosines pushed into SQL. $1 is the
// caller latitude, $2 the caller longitude; it is used both as a projected
// column and as the radius predicate.
const distanceExpr = `(6371 * acos(cos(radians($1)) * cos(radians(v.latitude)) * cos(radians(v.longitude) - radians($2)) + sin(radians($1)) * sin(radians(v.latitude))))`

// blendedExpr ranks by rating and proximity together: 60% normalized rating,
// 40% closeness within the requested radius.
const blendedExpr = `(0.6 * (COALESCE(v.rating, 0) / 5.0) + 0.4 * (1 - LEAST(` + distanceExpr + ` / $3, 1)))`

// geoSource describes one resource the geo template can query. The three
// nearby endpoints differ only in these fields.
type geoSource struct {
	from        string
	columns     string
	categoryCol string
}

var (
	vendorGeoSource = geoSource{
		from: "vendors v",
		columns: `v.vendor_id,
            v.vendor_name AS company_name,
            v.vendor_email AS email,
            v.phone,
            v.location,
            v.latitude,
            v.longitude,
            v.logo_url,
            v.job_type,
            v.vendor_type,
            v.rating,
            v.vendor_description`,
		categoryCol: "v.job_type",
	}

	productGeoSource = geoSource{
		from: "products p JOIN vendors v ON p.vendor_id = v.vendor_id",
		columns: `p.product_id,
            p.title,
            p.description,
            p.price_bdt,
            p.category_slug,
            p.image_url,
            p.vendor_id,
            v.vendor_name AS vendor_name,
            v.location AS vendor_location,
            v.phone AS vendor_phone,
            v.latitude,
            v.longitude,
            v.rating`,
		categoryCol: "p.category_slug",
	}

	serviceGeoSource = geoSource{
		from: "services s JOIN vendors v ON s.vendor_id = v.vendor_id",
		columns: `s.service_id,
            s.title,
            s.description,
            s.rate_bdt,
            s.service_category_slug,
            s.image_url,
            s.vendor_id,
            v.vendor_name AS vendor_name,
            v.location AS vendor_location,
            v.phone AS vendor_phone,
            v.latitude,
            v.longitude,
            v.rating,
            v.job_type`,
		categoryCol: "s.service_category_slug",
	}
)

// buildGeoQuery renders one distance-filtered query for the given source.
// Args are always [latitude, longitude, radius, (category,) limit]. When
// scored is true a blended score column is projected and drives the ordering
// instead of raw distance.
func buildGeoQuery(src geoSource, q dto.NearbyQuery, scored bool) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(src.columns)
	b.WriteString(",\n            ")
	b.WriteString(distanceExpr)
	b.WriteString(" AS distance_km")
	if scored {
		b.WriteString(",\n            ")
		b.WriteString(blendedExpr)
		b.WriteString(" AS score")
	}
	b.WriteString("\n        FROM ")
	b.WriteString(src.from)
	b.WriteString("\n        WHERE v.latitude IS NOT NULL AND v.longitude IS NOT NULL")
	b.WriteString("\n          AND ")
	b.WriteString(distanceExpr)
	b.WriteString(" <= $3")

	args := []any{q.Latitude, q.Longitude, q.RadiusKm}
	idx := 4

	if q.Category != "" {
		fmt.Fprintf(&b, "\n          AND %s = $%d", src.categoryCol, idx)
		args = append(args, q.Category)
		idx++
	}

	if scored {
		b.WriteString("\n        ORDER BY score DESC, distance_km ASC")
	} else {
		b.WriteString("\n        ORDER BY distance_km ASC")
	}
	fmt.Fprintf(&b, "\n        LIMIT $%d", idx)
	args = append(args, q.Limit)

	return b.String(), args
}

// NearbyRepository runs the distance-ranked discovery queries.
type NearbyRepository interface {
	Vendors(ctx context.Context, q dto.NearbyQuery) ([]dto.NearbyVendor, error)
	Products(ctx context.Context, q dto.NearbyQuery) ([]dto.NearbyProduct, error)
	Services(ctx context.Context, q dto.NearbyQuery) ([]dto.NearbyService, error)
	RecommendVendors(ctx context.Context, q dto.NearbyQuery) ([]dto.RecommendedVendor, error)
	RecommendProducts(ctx context.Context, q dto.NearbyQuery) ([]dto.RecommendedProduct, error)
}

// PGXNearbyRepository implements NearbyRepository with pgx.
type PGXNearbyRepository struct {
	pool dbPool
}

// NewPGXNearbyRepository instantiates a nearby repository.
func NewPGXNearbyRepository(pool *pgxpool.Pool) *PGXNearbyRepository {
	return &PGXNearbyRepository{pool: pool}
}

// Vendors returns vendors within the radius, closest first.
func (r *PGXNearbyRepository) Vendors(ctx context.Context, q dto.NearbyQuery) ([]dto.NearbyVendor, error) {
	query, args := buildGeoQuery(vendorGeoSource, q, false)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("nearby vendors: %w", err)
	}
	defer rows.Close()

	var vendors []dto.NearbyVendor
	for rows.Next() {
		var v dto.NearbyVendor
		if err := rows.Scan(
			&v.VendorID, &v.CompanyName, &v.Email, &v.Phone, &v.Location,
			&v.Latitude, &v.Longitude, &v.LogoURL, &v.JobType, &v.VendorType,
			&v.Rating, &v.Description, &v.DistanceKm,
		); err != nil {
			return nil, fmt.Errorf("scan nearby vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nearby vendors: %w", err)
	}
	return vendors, nil
}

// Products returns products within the radius, joined to their vendor.
func (r *PGXNearbyRepository) Products(ctx context.Context, q dto.NearbyQuery) ([]dto.NearbyProduct, error) {
	query, args := buildGeoQuery(productGeoSource, q, false)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("nearby products: %w", err)
	}
	defer rows.Close()

	var products []dto.NearbyProduct
	for rows.Next() {
		var p dto.NearbyProduct
		if err := rows.Scan(
			&p.ProductID, &p.Title, &p.Description, &p.PriceBDT, &p.CategorySlug,
			&p.ImageURL, &p.VendorID, &p.VendorName, &p.VendorLocation, &p.VendorPhone,
			&p.Latitude, &p.Longitude, &p.Rating, &p.DistanceKm,
		); err != nil {
			return nil, fmt.Errorf("scan nearby product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nearby products: %w", err)
	}
	return products, nil
}

// Services returns services within the radius, joined to their vendor.
func (r *PGXNearbyRepository) Services(ctx context.Context, q dto.NearbyQuery) ([]dto.NearbyService, error) {
	query, args := buildGeoQuery(serviceGeoSource, q, false)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("nearby services: %w", err)
	}
	defer rows.Close()

	var services []dto.NearbyService
	for rows.Next() {
		var s dto.NearbyService
		if err := rows.Scan(
			&s.ServiceID, &s.Title, &s.Description, &s.RateBDT, &s.CategorySlug,
			&s.ImageURL, &s.VendorID, &s.VendorName, &s.VendorLocation, &s.VendorPhone,
			&s.Latitude, &s.Longitude, &s.Rating, &s.JobType, &s.DistanceKm,
		); err != nil {
			return nil, fmt.Errorf("scan nearby service: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nearby services: %w", err)
	}
	return services, nil
}

// RecommendVendors blends rating and proximity into a single ranking.
func (r *PGXNearbyRepository) RecommendVendors(ctx context.Context, q dto.NearbyQuery) ([]dto.RecommendedVendor, error) {
	query, args := buildGeoQuery(vendorGeoSource, q, true)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recommend vendors: %w", err)
	}
	defer rows.Close()

	var vendors []dto.RecommendedVendor
	for rows.Next() {
		var v dto.RecommendedVendor
		if err := rows.Scan(
			&v.VendorID, &v.CompanyName, &v.Email, &v.Phone, &v.Location,
			&v.Latitude, &v.Longitude, &v.LogoURL, &v.JobType, &v.VendorType,
			&v.Rating, &v.Description, &v.DistanceKm, &v.Score,
		); err != nil {
			return nil, fmt.Errorf("scan recommended vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recommended vendors: %w", err)
	}
	return vendors, nil
}

// RecommendProducts blends rating and proximity into a single ranking.
func (r *PGXNearbyRepository) RecommendProducts(ctx context.Context, q dto.NearbyQuery) ([]dto.RecommendedProduct, error) {
	query, args := buildGeoQuery(productGeoSource, q, true)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recommend products: %w", err)
	}
	defer rows.Close()

	var products []dto.RecommendedProduct
	for rows.Next() {
		var p dto.RecommendedProduct
		if err := rows.Scan(
			&p.ProductID, &p.Title, &p.Description, &p.PriceBDT, &p.CategorySlug,
			&p.ImageURL, &p.VendorID, &p.VendorName, &p.VendorLocation, &p.VendorPhone,
			&p.Latitude, &p.Longitude, &p.Rating, &p.DistanceKm, &p.Score,
		); err != nil {
			return nil, fmt.Errorf("scan recommended product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recommended products: %w", err)
	}
	return products, nil
}
