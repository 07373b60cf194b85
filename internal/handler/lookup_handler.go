package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nibashhq/marketplace-api/internal/repository"
)

// LookupHandler exposes shared reference data.
type LookupHandler struct {
	lookups repository.LookupsRepository
}

// NewLookupHandler constructs a LookupHandler.
func NewLookupHandler(lookups repository.LookupsRepository) *LookupHandler {
	return &LookupHandler{lookups: lookups}
}

// Categories handles GET /api/lookups/categories requests.
func (h *LookupHandler) Categories(c echo.Context) error {
	categories, err := h.lookups.Categories(c.Request().Context())
	if err != nil {
		log.Printf("lookup categories: %v", err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}
	if categories == nil {
		categories = []string{}
	}

	return Success(c, http.StatusOK, categories)
}
