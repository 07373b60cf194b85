package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nibashhq/marketplace-api/internal/middleware"
	"github.com/nibashhq/marketplace-api/internal/repository"
)

// CustomerHandler exposes the authenticated customer's profile endpoint.
type CustomerHandler struct {
	customers repository.CustomersRepository
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(customers repository.CustomersRepository) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// Me handles GET /api/customer/me requests.
func (h *CustomerHandler) Me(c echo.Context) error {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	customer, err := h.customers.FindByID(c.Request().Context(), customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return Error(c, http.StatusNotFound, "Customer not found")
		}
		log.Printf("customer %d profile: %v", customerID, err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return Success(c, http.StatusOK, customer)
}
