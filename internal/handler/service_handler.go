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
)

// ServiceHandler exposes the authenticated vendor's service catalogue.
type ServiceHandler struct {
	services repository.ServicesRepository
}

// NewServiceHandler constructs a ServiceHandler.
func NewServiceHandler(services repository.ServicesRepository) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// List handles GET /api/services requests.
func (h *ServiceHandler) List(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	services, err := h.services.ListByVendor(c.Request().Context(), vendorID)
	if err != nil {
		log.Printf("vendor %d list services: %v", vendorID, err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}
	if services == nil {
		services = []entity.Service{}
	}

	return Success(c, http.StatusOK, services)
}

// Create handles POST /api/services requests.
func (h *ServiceHandler) Create(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid payload")
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.RateBDT == nil {
		return Error(c, http.StatusBadRequest, "title and rate_bdt are required")
	}

	service := &entity.Service{
		VendorID:     vendorID,
		Title:        req.Title,
		Description:  req.Description,
		RateBDT:      *req.RateBDT,
		CategorySlug: req.CategorySlug,
		ImageURL:     req.ImageURL,
	}

	created, err := h.services.Create(c.Request().Context(), service)
	if err != nil {
		log.Printf("vendor %d create service: %v", vendorID, err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return Success(c, http.StatusCreated, created)
}

// Update handles PATCH /api/services/:id requests.
func (h *ServiceHandler) Update(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	serviceID, err := parseID(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "Invalid service id")
	}

	var req dto.UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid payload")
	}

	upd := repository.ServiceUpdate{
		Title:        req.Title,
		Description:  req.Description,
		RateBDT:      req.RateBDT,
		CategorySlug: req.CategorySlug,
		ImageURL:     req.ImageURL,
	}

	service, err := h.services.Update(c.Request().Context(), vendorID, serviceID, upd)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoFields):
			return Error(c, http.StatusBadRequest, "No fields to update")
		case errors.Is(err, repository.ErrServiceNotFound):
			return Error(c, http.StatusNotFound, "Service not found")
		default:
			log.Printf("vendor %d update service %d: %v", vendorID, serviceID, err)
			return Error(c, http.StatusInternalServerError, "Internal server error")
		}
	}

	return Success(c, http.StatusOK, service)
}

// Delete handles DELETE /api/services/:id requests.
func (h *ServiceHandler) Delete(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	serviceID, err := parseID(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "Invalid service id")
	}

	if err := h.services.Delete(c.Request().Context(), vendorID, serviceID); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return Error(c, http.StatusNotFound, "Service not found")
		}
		log.Printf("vendor %d delete service %d: %v", vendorID, serviceID, err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return SuccessMessage(c, http.StatusOK, "Service deleted")
}
