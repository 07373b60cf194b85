package handler

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nibashhq/marketplace-api/internal/dto"
	"github.com/nibashhq/marketplace-api/internal/repository"
)

const (
	defaultRadiusKm = 5
	defaultLimit    = 10
)

// DiscoveryHandler exposes the public location-based endpoints: nearby
// listings ordered by distance and recommendations ordered by the blended
// rating/distance score.
type DiscoveryHandler struct {
	nearby repository.NearbyRepository
}

// NewDiscoveryHandler constructs a DiscoveryHandler.
func NewDiscoveryHandler(nearby repository.NearbyRepository) *DiscoveryHandler {
	return &DiscoveryHandler{nearby: nearby}
}

// NearbyVendors handles GET /api/nearby/vendors requests.
func (h *DiscoveryHandler) NearbyVendors(c echo.Context) error {
	q, ok := parseNearbyQuery(c)
	if !ok {
		return nil
	}

	vendors, err := h.nearby.Vendors(c.Request().Context(), q)
	if err != nil {
		log.Printf("nearby vendors: %v", err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}
	if vendors == nil {
		vendors = []dto.NearbyVendor{}
	}
	return Success(c, http.StatusOK, vendors)
}

// NearbyProducts handles GET /api/nearby/products requests.
func (h *DiscoveryHandler) NearbyProducts(c echo.Context) error {
	q, ok := parseNearbyQuery(c)
	if !ok {
		return nil
	}

	products, err := h.nearby.Products(c.Request().Context(), q)
	if err != nil {
		log.Printf("nearby products: %v", err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}
	if products == nil {
		products = []dto.NearbyProduct{}
	}
	return Success(c, http.StatusOK, products)
}

// NearbyServices handles GET /api/nearby/services requests.
func (h *DiscoveryHandler) NearbyServices(c echo.Context) error {
	q, ok := parseNearbyQuery(c)
	if !ok {
		return nil
	}

	services, err := h.nearby.Services(c.Request().Context(), q)
	if err != nil {
		log.Printf("nearby services: %v", err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}
	if services == nil {
		services = []dto.NearbyService{}
	}
	return Success(c, http.StatusOK, services)
}

// RecommendVendors handles GET /api/recommendations/vendors requests.
func (h *DiscoveryHandler) RecommendVendors(c echo.Context) error {
	q, ok := parseNearbyQuery(c)
	if !ok {
		return nil
	}

	vendors, err := h.nearby.RecommendVendors(c.Request().Context(), q)
	if err != nil {
		log.Printf("recommend vendors: %v", err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}
	if vendors == nil {
		vendors = []dto.RecommendedVendor{}
	}
	return Success(c, http.StatusOK, vendors)
}

// RecommendProducts handles GET /api/recommendations/products requests.
func (h *DiscoveryHandler) RecommendProducts(c echo.Context) error {
	q, ok := parseNearbyQuery(c)
	if !ok {
		return nil
	}

	products, err := h.nearby.RecommendProducts(c.Request().Context(), q)
	if err != nil {
		log.Printf("recommend products: %v", err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}
	if products == nil {
		products = []dto.RecommendedProduct{}
	}
	return Success(c, http.StatusOK, products)
}

// parseNearbyQuery validates the shared query-string contract. On failure it
// writes the 400 response itself and reports ok=false.
func parseNearbyQuery(c echo.Context) (dto.NearbyQuery, bool) {
	latStr := strings.TrimSpace(c.QueryParam("latitude"))
	lngStr := strings.TrimSpace(c.QueryParam("longitude"))
	if latStr == "" || lngStr == "" {
		_ = Error(c, http.StatusBadRequest, "latitude and longitude required")
		return dto.NearbyQuery{}, false
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	radius := float64(defaultRadiusKm)
	var radErr error
	if radStr := strings.TrimSpace(c.QueryParam("radiusKm")); radStr != "" {
		radius, radErr = strconv.ParseFloat(radStr, 64)
	}
	if latErr != nil || lngErr != nil || radErr != nil ||
		math.IsNaN(lat) || math.IsNaN(lng) || math.IsNaN(radius) {
		_ = Error(c, http.StatusBadRequest, "Invalid coordinates or radius")
		return dto.NearbyQuery{}, false
	}

	limit := defaultLimit
	if limitStr := strings.TrimSpace(c.QueryParam("limit")); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return dto.NearbyQuery{
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radius,
		Category:  strings.TrimSpace(c.QueryParam("category")),
		Limit:     limit,
	}, true
}
