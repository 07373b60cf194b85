package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nibashhq/marketplace-api/internal/dto"
	"github.com/nibashhq/marketplace-api/internal/entity"
	"github.com/nibashhq/marketplace-api/internal/middleware"
	"github.com/nibashhq/marketplace-api/internal/repository"
	"github.com/nibashhq/marketplace-api/internal/service"
)

// VendorHandler exposes the authenticated vendor's profile endpoints.
type VendorHandler struct {
	vendorService *service.VendorService
}

// NewVendorHandler constructs a VendorHandler.
func NewVendorHandler(vendorService *service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// Profile handles GET /api/vendors/me requests.
func (h *VendorHandler) Profile(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	vendor, err := h.vendorService.Profile(c.Request().Context(), vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return Error(c, http.StatusNotFound, "Vendor not found")
		}
		log.Printf("vendor %d profile: %v", vendorID, err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return Success(c, http.StatusOK, vendor)
}

// UpdateProfile handles PATCH /api/vendors/me requests.
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid payload")
	}

	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.Email = strings.TrimSpace(req.Email)
	if req.CompanyName == "" || req.Phone == "" || req.Location == "" || req.Email == "" {
		return Error(c, http.StatusBadRequest, "Missing required fields")
	}

	vendor, err := h.vendorService.UpdateProfile(c.Request().Context(), vendorID, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrVendorNotFound):
			return Error(c, http.StatusNotFound, "Vendor not found")
		case errors.Is(err, repository.ErrNoFields):
			return Error(c, http.StatusBadRequest, "No fields to update")
		default:
			log.Printf("vendor %d update profile: %v", vendorID, err)
			return Error(c, http.StatusInternalServerError, "Internal server error")
		}
	}

	return Success(c, http.StatusOK, vendor)
}

// UpdateType handles PATCH /api/vendors/me/type requests.
func (h *VendorHandler) UpdateType(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateTypeRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid payload")
	}

	if !entity.ValidVendorType(req.VendorType) {
		return Error(c, http.StatusBadRequest, "vendor_type must be 'seller' | 'service' | 'both'")
	}

	if err := h.vendorService.UpdateType(c.Request().Context(), vendorID, req.VendorType); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return Error(c, http.StatusNotFound, "Vendor not found")
		}
		log.Printf("vendor %d update type: %v", vendorID, err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return Success(c, http.StatusOK, map[string]any{
		"vendor_id":   vendorID,
		"vendor_type": req.VendorType,
	})
}

// GetType handles GET /api/vendors/me/type requests.
func (h *VendorHandler) GetType(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	vendorType, err := h.vendorService.VendorType(c.Request().Context(), vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return Error(c, http.StatusNotFound, "Vendor not found")
		}
		log.Printf("vendor %d get type: %v", vendorID, err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return Success(c, http.StatusOK, map[string]string{"vendor_type": vendorType})
}

// Verify handles POST /api/vendors/me/verify requests.
func (h *VendorHandler) Verify(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req dto.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid payload")
	}

	docs := entity.VerificationDocs{
		NIDNo:               req.NIDNo,
		LivePhotoURL:        req.LivePhotoURL,
		TradeLicenseID:      req.TradeLicenseID,
		TrainingCertificate: req.TrainingCertificate,
	}
	if docs.Empty() {
		return Error(c, http.StatusBadRequest, "Provide at least one verification item")
	}

	if err := h.vendorService.RequestVerification(c.Request().Context(), vendorID, docs); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return Error(c, http.StatusNotFound, "Vendor not found")
		}
		log.Printf("vendor %d verify: %v", vendorID, err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return SuccessMessage(c, http.StatusOK, "your profile has been submitted for verification")
}

// UpdateLocation handles PATCH /api/vendors/me/location requests.
func (h *VendorHandler) UpdateLocation(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid payload")
	}

	if !req.Latitude.Present() || !req.Longitude.Present() {
		return Error(c, http.StatusBadRequest, "latitude and longitude are required")
	}
	latitude, latErr := req.Latitude.Float()
	longitude, lngErr := req.Longitude.Float()
	if latErr != nil || lngErr != nil {
		return Error(c, http.StatusBadRequest, "Invalid latitude or longitude")
	}

	locationName := ""
	if req.LocationName != nil {
		locationName = strings.TrimSpace(*req.LocationName)
	}

	vendor, err := h.vendorService.UpdateLocation(c.Request().Context(), vendorID, latitude, longitude, locationName)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return Error(c, http.StatusNotFound, "Vendor not found")
		}
		log.Printf("vendor %d update location: %v", vendorID, err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return Success(c, http.StatusOK, vendor)
}
