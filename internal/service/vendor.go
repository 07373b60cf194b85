package service

import (
	"context"

	"github.com/nibashhq/marketplace-api/internal/dto"
	"github.com/nibashhq/marketplace-api/internal/entity"
	"github.com/nibashhq/marketplace-api/internal/repository"
)

const defaultServiceRadiusKm = 5

// VendorService applies profile business rules on top of the repository.
type VendorService struct {
	vendors repository.VendorsRepository
	region  string
}

// NewVendorService constructs a VendorService.
func NewVendorService(vendors repository.VendorsRepository, phoneRegion string) *VendorService {
	return &VendorService{vendors: vendors, region: phoneRegion}
}

// Profile returns the full vendor profile.
func (s *VendorService) Profile(ctx context.Context, vendorID int64) (*entity.Vendor, error) {
	return s.vendors.GetProfile(ctx, vendorID)
}

// VendorType returns only the classification value.
func (s *VendorService) VendorType(ctx context.Context, vendorID int64) (string, error) {
	return s.vendors.GetType(ctx, vendorID)
}

// UpdateType persists a validated classification. Value closure is checked by
// the handler; the repository reports missing rows.
func (s *VendorService) UpdateType(ctx context.Context, vendorID int64, vendorType string) error {
	return s.vendors.UpdateType(ctx, vendorID, vendorType)
}

// UpdateProfile applies the documented defaults, writes the full candidate
// column set and returns the re-read profile. The follow-up read is not
// transactional with the write; a concurrent writer may win the race.
func (s *VendorService) UpdateProfile(ctx context.Context, vendorID int64, req dto.UpdateProfileRequest) (*entity.Vendor, error) {
	radius := defaultServiceRadiusKm
	if req.ServiceRadiusKm != nil && *req.ServiceRadiusKm != 0 {
		radius = *req.ServiceRadiusKm
	}

	upd := repository.VendorProfileUpdate{
		CompanyName:      req.CompanyName,
		Email:            req.Email,
		Phone:            NormalizePhone(req.Phone, s.region),
		Location:         req.Location,
		LogoURL:          req.LogoURL,
		JobType:          req.JobType,
		Description:      req.Description,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		WhatsappLink:     req.WhatsappLink,
		ServiceRadiusKm:  radius,
		VisitingCardURL:  req.VisitingCardURL,
		ShopAddress:      req.ShopAddress,
		ServiceLocations: req.ServiceLocations.Encode(),
	}

	if err := s.vendors.UpdateProfile(ctx, vendorID, upd); err != nil {
		return nil, err
	}

	return s.vendors.GetProfile(ctx, vendorID)
}

// UpdateLocation writes coordinates plus an optional label and returns the
// re-read profile.
func (s *VendorService) UpdateLocation(ctx context.Context, vendorID int64, latitude, longitude float64, locationName string) (*entity.Vendor, error) {
	if locationName == "" {
		locationName = "Updated location"
	}

	if err := s.vendors.UpdateLocation(ctx, vendorID, latitude, longitude, locationName); err != nil {
		return nil, err
	}

	return s.vendors.GetProfile(ctx, vendorID)
}

// RequestVerification stores the submitted document set and flips the
// verification status to pending. Documents emptiness is checked upstream.
func (s *VendorService) RequestVerification(ctx context.Context, vendorID int64, docs entity.VerificationDocs) error {
	return s.vendors.RequestVerification(ctx, vendorID, docs)
}
