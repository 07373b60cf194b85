package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nibashhq/marketplace-api/internal/dto"
	"github.com/nibashhq/marketplace-api/internal/repository"
	"github.com/nibashhq/marketplace-api/internal/service"
)

// CustomerAuthHandler exposes customer registration and login endpoints.
type CustomerAuthHandler struct {
	authService *service.CustomerAuthService
}

// NewCustomerAuthHandler constructs a CustomerAuthHandler.
func NewCustomerAuthHandler(authService *service.CustomerAuthService) *CustomerAuthHandler {
	return &CustomerAuthHandler{authService: authService}
}

// Register handles POST /api/auth/register requests.
func (h *CustomerAuthHandler) Register(c echo.Context) error {
	var req dto.RegisterCustomerRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid payload")
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return Error(c, http.StatusBadRequest, "Missing required fields")
	}
	if !service.ValidEmail(req.Email) {
		return Error(c, http.StatusBadRequest, "Invalid email")
	}

	token, err := h.authService.Register(c.Request().Context(), req.FullName, req.Email, req.Password, req.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerEmailDuplicate) {
			return Error(c, http.StatusConflict, "Email already registered")
		}
		log.Printf("customer register: %v", err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return Success(c, http.StatusCreated, dto.LoginResponse{AccessToken: token})
}

// Login handles POST /api/auth/login requests.
func (h *CustomerAuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid payload")
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return Error(c, http.StatusBadRequest, "Email and password are required")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return Error(c, http.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("customer login: %v", err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return Success(c, http.StatusOK, dto.LoginResponse{AccessToken: token})
}

// VendorAuthHandler exposes vendor registration and login endpoints.
type VendorAuthHandler struct {
	authService *service.VendorAuthService
}

// NewVendorAuthHandler constructs a VendorAuthHandler.
func NewVendorAuthHandler(authService *service.VendorAuthService) *VendorAuthHandler {
	return &VendorAuthHandler{authService: authService}
}

// Register handles POST /api/vendor/register requests.
func (h *VendorAuthHandler) Register(c echo.Context) error {
	var req dto.RegisterVendorRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid payload")
	}

	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.Email = strings.TrimSpace(req.Email)
	if req.CompanyName == "" || req.Email == "" || req.Password == "" {
		return Error(c, http.StatusBadRequest, "Missing required fields")
	}
	if !service.ValidEmail(req.Email) {
		return Error(c, http.StatusBadRequest, "Invalid email")
	}

	token, err := h.authService.Register(c.Request().Context(), req.CompanyName, req.Email, req.Password, req.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrVendorEmailDuplicate) {
			return Error(c, http.StatusConflict, "Email already registered")
		}
		log.Printf("vendor register: %v", err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return Success(c, http.StatusCreated, dto.LoginResponse{AccessToken: token})
}

// Login handles POST /api/vendor/login requests.
func (h *VendorAuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid payload")
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return Error(c, http.StatusBadRequest, "Email and password are required")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return Error(c, http.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("vendor login: %v", err)
		return Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return Success(c, http.StatusOK, dto.LoginResponse{AccessToken: token})
}
