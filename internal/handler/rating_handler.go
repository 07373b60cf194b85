package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nibashhq/marketplace-api/internal/dto"
	"github.com/nibashhq/marketplace-api/internal/entity"
	"github.com/nibashhq/marketplace-api/internal/middleware"
	"github.com/nibashhq/marketplace-api/internal/repository"
	"github.com/nibashhq/marketplace-api/internal/service"
)

// RatingHandler exposes customer rating endpoints.
type RatingHandler struct {
	ratingService *service.RatingService
}

// NewRatingHandler constructs a RatingHandler.
func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RateVendor handles POST /api/ratings/vendors/:id requests.
func (h *RatingHandler) RateVendor(c echo.Context) error {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	vendorID, err := parseID(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "Invalid vendor id")
	}

	score, comment, ok := bindRateRequest(c)
	if !ok {
		return nil
	}

	rating, err := h.ratingService.RateVendor(c.Request().Context(), customerID, vendorID, score, comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRatingTargetNotFound):
			return Error(c, http.StatusNotFound, "Vendor not found")
		case errors.Is(err, repository.ErrDuplicateRating):
			return Error(c, http.StatusConflict, "You have already rated this vendor")
		default:
			log.Printf("customer %d rate vendor %d: %v", customerID, vendorID, err)
			return Error(c, http.StatusInternalServerError, "Internal server error")
		}
	}

	return Success(c, http.StatusCreated, rating)
}

// RateProduct handles POST /api/ratings/products/:id requests.
func (h *RatingHandler) RateProduct(c echo.Context) error {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	productID, err := parseID(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "Invalid product id")
	}

	score, comment, ok := bindRateRequest(c)
	if !ok {
		return nil
	}

	rating, err := h.ratingService.RateProduct(c.Request().Context(), customerID, productID, score, comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRatingTargetNotFound):
			return Error(c, http.StatusNotFound, "Product not found")
		case errors.Is(err, repository.ErrDuplicateRating):
			return Error(c, http.StatusConflict, "You have already rated this product")
		default:
			log.Printf("customer %d rate product %d: %v", customerID, productID, err)
			return Error(c, http.StatusInternalServerError, "Internal server error")
		}
	}

	return Success(c, http.StatusCreated, rating)
}

// VendorRatings handles GET /api/ratings/vendors/:id requests.
func (h *RatingHandler) VendorRatings(c echo.Context) error {
	if _, ok := middleware.CustomerIDFromContext(c); !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	vendorID, err := parseID(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "Invalid vendor id")
	}

	ratings, err := h.ratingService.VendorRatings(c.Request().Context(), vendorID)
	if err != nil {
		log.Printf("list ratings for vendor %d: %v", vendorID, err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}
	if ratings == nil {
		ratings = []entity.Rating{}
	}

	return Success(c, http.StatusOK, ratings)
}

// bindRateRequest decodes and validates the score payload, writing the 400
// response itself when invalid.
func bindRateRequest(c echo.Context) (int, *string, bool) {
	var req dto.RateRequest
	if err := c.Bind(&req); err != nil {
		_ = Error(c, http.StatusBadRequest, "Invalid payload")
		return 0, nil, false
	}
	if req.Score == nil || *req.Score < 1 || *req.Score > 5 {
		_ = Error(c, http.StatusBadRequest, "score must be between 1 and 5")
		return 0, nil, false
	}
	return *req.Score, req.Comment, true
}
