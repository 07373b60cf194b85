package service

import (
	"context"
	"errors"
	"log"

	"github.com/nibashhq/marketplace-api/internal/entity"
	"github.com/nibashhq/marketplace-api/internal/repository"
)

// ErrRatingTargetNotFound is returned when the rated vendor or product does
// not exist.
var ErrRatingTargetNotFound = errors.New("rating target not found")

// RatingService records customer ratings and keeps vendor aggregates current.
type RatingService struct {
	ratings  repository.RatingsRepository
	vendors  repository.VendorsRepository
	products repository.ProductsRepository
}

// NewRatingService constructs a RatingService.
func NewRatingService(ratings repository.RatingsRepository, vendors repository.VendorsRepository, products repository.ProductsRepository) *RatingService {
	return &RatingService{ratings: ratings, vendors: vendors, products: products}
}

// RateVendor records a score against a vendor and refreshes its average.
func (s *RatingService) RateVendor(ctx context.Context, customerID, vendorID int64, score int, comment *string) (*entity.Rating, error) {
	if _, err := s.vendors.GetType(ctx, vendorID); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, ErrRatingTargetNotFound
		}
		return nil, err
	}

	rating, err := s.ratings.RateVendor(ctx, customerID, vendorID, score, comment)
	if err != nil {
		return nil, err
	}

	s.refreshVendorAverage(ctx, vendorID)
	return rating, nil
}

// RateProduct records a score against a product.
func (s *RatingService) RateProduct(ctx context.Context, customerID, productID int64, score int, comment *string) (*entity.Rating, error) {
	exists, err := s.products.Exists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRatingTargetNotFound
	}

	return s.ratings.RateProduct(ctx, customerID, productID, score, comment)
}

// VendorRatings lists the ratings recorded against a vendor.
func (s *RatingService) VendorRatings(ctx context.Context, vendorID int64) ([]entity.Rating, error) {
	return s.ratings.ListForVendor(ctx, vendorID)
}

// refreshVendorAverage recomputes the stored aggregate. Failures here must
// not undo an already-recorded rating, so they are only logged.
func (s *RatingService) refreshVendorAverage(ctx context.Context, vendorID int64) {
	avg, err := s.ratings.VendorAverage(ctx, vendorID)
	if err != nil {
		log.Printf("refresh vendor %d rating: %v", vendorID, err)
		return
	}
	if err := s.vendors.UpdateRating(ctx, vendorID, avg); err != nil {
		log.Printf("store vendor %d rating: %v", vendorID, err)
	}
}
