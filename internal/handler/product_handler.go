package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nibashhq/marketplace-api/internal/dto"
	"github.com/nibashhq/marketplace-api/internal/entity"
	"github.com/nibashhq/marketplace-api/internal/middleware"
	"github.com/nibashhq/marketplace-api/internal/repository"
)

// ProductHandler exposes the authenticated vendor's product catalogue.
type ProductHandler struct {
	products repository.ProductsRepository
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(products repository.ProductsRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	products, err := h.products.ListByVendor(c.Request().Context(), vendorID)
	if err != nil {
		log.Printf("vendor %d list products: %v", vendorID, err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}
	if products == nil {
		products = []entity.Product{}
	}

	return Success(c, http.StatusOK, products)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid payload")
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.PriceBDT == nil {
		return Error(c, http.StatusBadRequest, "title and price_bdt are required")
	}

	product := &entity.Product{
		VendorID:     vendorID,
		Title:        req.Title,
		Description:  req.Description,
		PriceBDT:     *req.PriceBDT,
		CategorySlug: req.CategorySlug,
		ImageURL:     req.ImageURL,
	}

	created, err := h.products.Create(c.Request().Context(), product)
	if err != nil {
		log.Printf("vendor %d create product: %v", vendorID, err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return Success(c, http.StatusCreated, created)
}

// Update handles PATCH /api/products/:id requests.
func (h *ProductHandler) Update(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	productID, err := parseID(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "Invalid product id")
	}

	var req dto.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid payload")
	}

	upd := repository.ProductUpdate{
		Title:        req.Title,
		Description:  req.Description,
		PriceBDT:     req.PriceBDT,
		CategorySlug: req.CategorySlug,
		ImageURL:     req.ImageURL,
	}

	product, err := h.products.Update(c.Request().Context(), vendorID, productID, upd)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoFields):
			return Error(c, http.StatusBadRequest, "No fields to update")
		case errors.Is(err, repository.ErrProductNotFound):
			return Error(c, http.StatusNotFound, "Product not found")
		default:
			log.Printf("vendor %d update product %d: %v", vendorID, productID, err)
			return Error(c, http.StatusInternalServerError, "Internal server error")
		}
	}

	return Success(c, http.StatusOK, product)
}

// Delete handles DELETE /api/products/:id requests.
func (h *ProductHandler) Delete(c echo.Context) error {
	vendorID, ok := middleware.VendorIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	productID, err := parseID(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "Invalid product id")
	}

	if err := h.products.Delete(c.Request().Context(), vendorID, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return Error(c, http.StatusNotFound, "Product not found")
		}
		log.Printf("vendor %d delete product %d: %v", vendorID, productID, err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return SuccessMessage(c, http.StatusOK, "Product deleted")
}

func parseID(input string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
