package handler

import (
	"context"
	"errors"

	"github.com/nibashhq/marketplace-api/internal/dto"
	"github.com/nibashhq/marketplace-api/internal/entity"
	"github.com/nibashhq/marketplace-api/internal/repository"
)

var errNotImplemented = errors.New("not implemented")

type stubVendorsRepo struct {
	create              func(ctx context.Context, companyName, email, passwordHash, phone string) (*entity.Vendor, error)
	findByEmail         func(ctx context.Context, email string) (*entity.Vendor, error)
	getProfile          func(ctx context.Context, vendorID int64) (*entity.Vendor, error)
	getType             func(ctx context.Context, vendorID int64) (string, error)
	updateType          func(ctx context.Context, vendorID int64, vendorType string) error
	updateProfile       func(ctx context.Context, vendorID int64, upd repository.VendorProfileUpdate) error
	updateLocation      func(ctx context.Context, vendorID int64, latitude, longitude float64, locationName string) error
	requestVerification func(ctx context.Context, vendorID int64, docs entity.VerificationDocs) error
	updateRating        func(ctx context.Context, vendorID int64, rating float64) error
}

func (s *stubVendorsRepo) Create(ctx context.Context, companyName, email, passwordHash, phone string) (*entity.Vendor, error) {
	if s.create != nil {
		return s.create(ctx, companyName, email, passwordHash, phone)
	}
	return nil, errNotImplemented
}

func (s *stubVendorsRepo) FindByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	if s.findByEmail != nil {
		return s.findByEmail(ctx, email)
	}
	return nil, errNotImplemented
}

func (s *stubVendorsRepo) GetProfile(ctx context.Context, vendorID int64) (*entity.Vendor, error) {
	if s.getProfile != nil {
		return s.getProfile(ctx, vendorID)
	}
	return nil, errNotImplemented
}

func (s *stubVendorsRepo) GetType(ctx context.Context, vendorID int64) (string, error) {
	if s.getType != nil {
		return s.getType(ctx, vendorID)
	}
	return "", errNotImplemented
}

func (s *stubVendorsRepo) UpdateType(ctx context.Context, vendorID int64, vendorType string) error {
	if s.updateType != nil {
		return s.updateType(ctx, vendorID, vendorType)
	}
	return errNotImplemented
}

func (s *stubVendorsRepo) UpdateProfile(ctx context.Context, vendorID int64, upd repository.VendorProfileUpdate) error {
	if s.updateProfile != nil {
		return s.updateProfile(ctx, vendorID, upd)
	}
	return errNotImplemented
}

func (s *stubVendorsRepo) UpdateLocation(ctx context.Context, vendorID int64, latitude, longitude float64, locationName string) error {
	if s.updateLocation != nil {
		return s.updateLocation(ctx, vendorID, latitude, longitude, locationName)
	}
	return errNotImplemented
}

func (s *stubVendorsRepo) RequestVerification(ctx context.Context, vendorID int64, docs entity.VerificationDocs) error {
	if s.requestVerification != nil {
		return s.requestVerification(ctx, vendorID, docs)
	}
	return errNotImplemented
}

func (s *stubVendorsRepo) UpdateRating(ctx context.Context, vendorID int64, rating float64) error {
	if s.updateRating != nil {
		return s.updateRating(ctx, vendorID, rating)
	}
	return errNotImplemented
}

type stubCustomersRepo struct {
	create      func(ctx context.Context, fullName, email, passwordHash, phone string) (*entity.Customer, error)
	findByEmail func(ctx context.Context, email string) (*entity.Customer, error)
	findByID    func(ctx context.Context, customerID int64) (*entity.Customer, error)
}

func (s *stubCustomersRepo) Create(ctx context.Context, fullName, email, passwordHash, phone string) (*entity.Customer, error) {
	if s.create != nil {
		return s.create(ctx, fullName, email, passwordHash, phone)
	}
	return nil, errNotImplemented
}

func (s *stubCustomersRepo) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	if s.findByEmail != nil {
		return s.findByEmail(ctx, email)
	}
	return nil, errNotImplemented
}

func (s *stubCustomersRepo) FindByID(ctx context.Context, customerID int64) (*entity.Customer, error) {
	if s.findByID != nil {
		return s.findByID(ctx, customerID)
	}
	return nil, errNotImplemented
}

type stubProductsRepo struct {
	listByVendor func(ctx context.Context, vendorID int64) ([]entity.Product, error)
	create       func(ctx context.Context, p *entity.Product) (*entity.Product, error)
	update       func(ctx context.Context, vendorID, productID int64, upd repository.ProductUpdate) (*entity.Product, error)
	delete       func(ctx context.Context, vendorID, productID int64) error
	exists       func(ctx context.Context, productID int64) (bool, error)
}

func (s *stubProductsRepo) ListByVendor(ctx context.Context, vendorID int64) ([]entity.Product, error) {
	if s.listByVendor != nil {
		return s.listByVendor(ctx, vendorID)
	}
	return nil, errNotImplemented
}

func (s *stubProductsRepo) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if s.create != nil {
		return s.create(ctx, p)
	}
	return nil, errNotImplemented
}

func (s *stubProductsRepo) Update(ctx context.Context, vendorID, productID int64, upd repository.ProductUpdate) (*entity.Product, error) {
	if s.update != nil {
		return s.update(ctx, vendorID, productID, upd)
	}
	return nil, errNotImplemented
}

func (s *stubProductsRepo) Delete(ctx context.Context, vendorID, productID int64) error {
	if s.delete != nil {
		return s.delete(ctx, vendorID, productID)
	}
	return errNotImplemented
}

func (s *stubProductsRepo) Exists(ctx context.Context, productID int64) (bool, error) {
	if s.exists != nil {
		return s.exists(ctx, productID)
	}
	return false, errNotImplemented
}

type stubServicesRepo struct {
	listByVendor func(ctx context.Context, vendorID int64) ([]entity.Service, error)
	create       func(ctx context.Context, sv *entity.Service) (*entity.Service, error)
	update       func(ctx context.Context, vendorID, serviceID int64, upd repository.ServiceUpdate) (*entity.Service, error)
	delete       func(ctx context.Context, vendorID, serviceID int64) error
}

func (s *stubServicesRepo) ListByVendor(ctx context.Context, vendorID int64) ([]entity.Service, error) {
	if s.listByVendor != nil {
		return s.listByVendor(ctx, vendorID)
	}
	return nil, errNotImplemented
}

func (s *stubServicesRepo) Create(ctx context.Context, sv *entity.Service) (*entity.Service, error) {
	if s.create != nil {
		return s.create(ctx, sv)
	}
	return nil, errNotImplemented
}

func (s *stubServicesRepo) Update(ctx context.Context, vendorID, serviceID int64, upd repository.ServiceUpdate) (*entity.Service, error) {
	if s.update != nil {
		return s.update(ctx, vendorID, serviceID, upd)
	}
	return nil, errNotImplemented
}

func (s *stubServicesRepo) Delete(ctx context.Context, vendorID, serviceID int64) error {
	if s.delete != nil {
		return s.delete(ctx, vendorID, serviceID)
	}
	return errNotImplemented
}

type stubRatingsRepo struct {
	rateVendor    func(ctx context.Context, customerID, vendorID int64, score int, comment *string) (*entity.Rating, error)
	rateProduct   func(ctx context.Context, customerID, productID int64, score int, comment *string) (*entity.Rating, error)
	listForVendor func(ctx context.Context, vendorID int64) ([]entity.Rating, error)
	vendorAverage func(ctx context.Context, vendorID int64) (float64, error)
}

func (s *stubRatingsRepo) RateVendor(ctx context.Context, customerID, vendorID int64, score int, comment *string) (*entity.Rating, error) {
	if s.rateVendor != nil {
		return s.rateVendor(ctx, customerID, vendorID, score, comment)
	}
	return nil, errNotImplemented
}

func (s *stubRatingsRepo) RateProduct(ctx context.Context, customerID, productID int64, score int, comment *string) (*entity.Rating, error) {
	if s.rateProduct != nil {
		return s.rateProduct(ctx, customerID, productID, score, comment)
	}
	return nil, errNotImplemented
}

func (s *stubRatingsRepo) ListForVendor(ctx context.Context, vendorID int64) ([]entity.Rating, error) {
	if s.listForVendor != nil {
		return s.listForVendor(ctx, vendorID)
	}
	return nil, errNotImplemented
}

func (s *stubRatingsRepo) VendorAverage(ctx context.Context, vendorID int64) (float64, error) {
	if s.vendorAverage != nil {
		return s.vendorAverage(ctx, vendorID)
	}
	return 0, errNotImplemented
}

type stubNearbyRepo struct {
	vendors           func(ctx context.Context, q dto.NearbyQuery) ([]dto.NearbyVendor, error)
	products          func(ctx context.Context, q dto.NearbyQuery) ([]dto.NearbyProduct, error)
	services          func(ctx context.Context, q dto.NearbyQuery) ([]dto.NearbyService, error)
	recommendVendors  func(ctx context.Context, q dto.NearbyQuery) ([]dto.RecommendedVendor, error)
	recommendProducts func(ctx context.Context, q dto.NearbyQuery) ([]dto.RecommendedProduct, error)
}

func (s *stubNearbyRepo) Vendors(ctx context.Context, q dto.NearbyQuery) ([]dto.NearbyVendor, error) {
	if s.vendors != nil {
		return s.vendors(ctx, q)
	}
	return nil, errNotImplemented
}

func (s *stubNearbyRepo) Products(ctx context.Context, q dto.NearbyQuery) ([]dto.NearbyProduct, error) {
	if s.products != nil {
		return s.products(ctx, q)
	}
	return nil, errNotImplemented
}

func (s *stubNearbyRepo) Services(ctx context.Context, q dto.NearbyQuery) ([]dto.NearbyService, error) {
	if s.services != nil {
		return s.services(ctx, q)
	}
	return nil, errNotImplemented
}

func (s *stubNearbyRepo) RecommendVendors(ctx context.Context, q dto.NearbyQuery) ([]dto.RecommendedVendor, error) {
	if s.recommendVendors != nil {
		return s.recommendVendors(ctx, q)
	}
	return nil, errNotImplemented
}

func (s *stubNearbyRepo) RecommendProducts(ctx context.Context, q dto.NearbyQuery) ([]dto.RecommendedProduct, error) {
	if s.recommendProducts != nil {
		return s.recommendProducts(ctx, q)
	}
	return nil, errNotImplemented
}

type stubLookupsRepo struct {
	categories func(ctx context.Context) ([]string, error)
}

func (s *stubLookupsRepo) Categories(ctx context.Context) ([]string, error) {
	if s.categories != nil {
		return s.categories(ctx)
	}
	return nil, errNotImplemented
}

type stubCompleter struct {
	complete func(ctx context.Context, message string) (string, error)
}

func (s *stubCompleter) Complete(ctx context.Context, message string) (string, error) {
	if s.complete != nil {
		return s.complete(ctx, message)
	}
	return "", errNotImplemented
}
