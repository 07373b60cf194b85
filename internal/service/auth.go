package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/nibashhq/marketplace-api/internal/auth"
	"github.com/nibashhq/marketplace-api/internal/repository"
)

// ErrInvalidCredentials is returned for unknown accounts and wrong passwords
// alike, so callers cannot probe which of the two failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CustomerAuthService handles customer registration and login.
type CustomerAuthService struct {
	customers repository.CustomersRepository
	jwt       *auth.JWTManager
	region    string
}

// NewCustomerAuthService constructs a new CustomerAuthService.
func NewCustomerAuthService(customers repository.CustomersRepository, jwtManager *auth.JWTManager, phoneRegion string) *CustomerAuthService {
	return &CustomerAuthService{customers: customers, jwt: jwtManager, region: phoneRegion}
}

// Register creates a customer account and returns a JWT.
func (s *CustomerAuthService) Register(ctx context.Context, fullName, email, password, phone string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	customer, err := s.customers.Create(ctx, fullName, email, string(hashed), NormalizePhone(phone, s.region))
	if err != nil {
		return "", err
	}

	return s.jwt.GenerateToken(customer.CustomerID, customer.Email, auth.RoleCustomer)
}

// Login validates customer credentials and returns a JWT.
func (s *CustomerAuthService) Login(ctx context.Context, email, password string) (string, error) {
	customer, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(customer.CustomerID, customer.Email, auth.RoleCustomer)
}

// VendorAuthService handles vendor registration and login.
type VendorAuthService struct {
	vendors repository.VendorsRepository
	jwt     *auth.JWTManager
	region  string
}

// NewVendorAuthService constructs a new VendorAuthService.
func NewVendorAuthService(vendors repository.VendorsRepository, jwtManager *auth.JWTManager, phoneRegion string) *VendorAuthService {
	return &VendorAuthService{vendors: vendors, jwt: jwtManager, region: phoneRegion}
}

// Register creates a vendor account and returns a JWT.
func (s *VendorAuthService) Register(ctx context.Context, companyName, email, password, phone string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	vendor, err := s.vendors.Create(ctx, companyName, email, string(hashed), NormalizePhone(phone, s.region))
	if err != nil {
		return "", err
	}

	return s.jwt.GenerateToken(vendor.VendorID, vendor.Email, auth.RoleVendor)
}

// Login validates vendor credentials and returns a JWT.
func (s *VendorAuthService) Login(ctx context.Context, email, password string) (string, error) {
	vendor, err := s.vendors.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(vendor.VendorID, vendor.Email, auth.RoleVendor)
}
