package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nibashhq/marketplace-api/internal/entity"
	"github.com/nibashhq/marketplace-api/internal/repository"
)

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
	return nil, errors.New("not implemented")
}

func (s *stubRatingsRepo) RateProduct(ctx context.Context, customerID, productID int64, score int, comment *string) (*entity.Rating, error) {
	if s.rateProduct != nil {
		return s.rateProduct(ctx, customerID, productID, score, comment)
	}
	return nil, errors.New("not implemented")
}

func (s *stubRatingsRepo) ListForVendor(ctx context.Context, vendorID int64) ([]entity.Rating, error) {
	if s.listForVendor != nil {
		return s.listForVendor(ctx, vendorID)
	}
	return nil, errors.New("not implemented")
}

func (s *stubRatingsRepo) VendorAverage(ctx context.Context, vendorID int64) (float64, error) {
	if s.vendorAverage != nil {
		return s.vendorAverage(ctx, vendorID)
	}
	return 0, errors.New("not implemented")
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
	return nil, errors.New("not implemented")
}

func (s *stubProductsRepo) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if s.create != nil {
		return s.create(ctx, p)
	}
	return nil, errors.New("not implemented")
}

func (s *stubProductsRepo) Update(ctx context.Context, vendorID, productID int64, upd repository.ProductUpdate) (*entity.Product, error) {
	if s.update != nil {
		return s.update(ctx, vendorID, productID, upd)
	}
	return nil, errors.New("not implemented")
}

func (s *stubProductsRepo) Delete(ctx context.Context, vendorID, productID int64) error {
	if s.delete != nil {
		return s.delete(ctx, vendorID, productID)
	}
	return errors.New("not implemented")
}

func (s *stubProductsRepo) Exists(ctx context.Context, productID int64) (bool, error) {
	if s.exists != nil {
		return s.exists(ctx, productID)
	}
	return false, errors.New("not implemented")
}

func TestRatingService_RateVendor_RefreshesAverage(t *testing.T) {
	var storedAvg float64
	vendors := &stubVendorsRepo{
		getType: func(ctx context.Context, vendorID int64) (string, error) {
			return entity.VendorTypeSeller, nil
		},
		updateRating: func(ctx context.Context, vendorID int64, rating float64) error {
			storedAvg = rating
			return nil
		},
	}
	ratings := &stubRatingsRepo{
		rateVendor: func(ctx context.Context, customerID, vendorID int64, score int, comment *string) (*entity.Rating, error) {
			return &entity.Rating{RatingID: 1, CustomerID: customerID, Score: score}, nil
		},
		vendorAverage: func(ctx context.Context, vendorID int64) (float64, error) {
			return 4.5, nil
		},
	}
	svc := NewRatingService(ratings, vendors, &stubProductsRepo{})

	rating, err := svc.RateVendor(context.Background(), 9, 3, 5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rating.RatingID != 1 {
		t.Fatalf("expected stored rating back, got %+v", rating)
	}
	if storedAvg != 4.5 {
		t.Fatalf("expected refreshed average 4.5, got %v", storedAvg)
	}
}

func TestRatingService_RateVendor_UnknownVendor(t *testing.T) {
	vendors := &stubVendorsRepo{
		getType: func(ctx context.Context, vendorID int64) (string, error) {
			return "", repository.ErrVendorNotFound
		},
	}
	svc := NewRatingService(&stubRatingsRepo{}, vendors, &stubProductsRepo{})

	_, err := svc.RateVendor(context.Background(), 9, 404, 5, nil)
	if !errors.Is(err, ErrRatingTargetNotFound) {
		t.Fatalf("expected ErrRatingTargetNotFound, got %v", err)
	}
}

func TestRatingService_RateVendor_AverageFailureIsNonFatal(t *testing.T) {
	vendors := &stubVendorsRepo{
		getType: func(ctx context.Context, vendorID int64) (string, error) {
			return entity.VendorTypeSeller, nil
		},
	}
	ratings := &stubRatingsRepo{
		rateVendor: func(ctx context.Context, customerID, vendorID int64, score int, comment *string) (*entity.Rating, error) {
			return &entity.Rating{RatingID: 2}, nil
		},
		vendorAverage: func(ctx context.Context, vendorID int64) (float64, error) {
			return 0, errors.New("aggregate blew up")
		},
	}
	svc := NewRatingService(ratings, vendors, &stubProductsRepo{})

	if _, err := svc.RateVendor(context.Background(), 9, 3, 4, nil); err != nil {
		t.Fatalf("average failure must not fail the rating: %v", err)
	}
}

func TestRatingService_RateProduct(t *testing.T) {
	products := &stubProductsRepo{
		exists: func(ctx context.Context, productID int64) (bool, error) {
			return productID == 11, nil
		},
	}
	ratings := &stubRatingsRepo{
		rateProduct: func(ctx context.Context, customerID, productID int64, score int, comment *string) (*entity.Rating, error) {
			return &entity.Rating{RatingID: 3, Score: score}, nil
		},
	}
	svc := NewRatingService(ratings, &stubVendorsRepo{}, products)

	if _, err := svc.RateProduct(context.Background(), 9, 99, 4, nil); !errors.Is(err, ErrRatingTargetNotFound) {
		t.Fatalf("expected ErrRatingTargetNotFound for unknown product, got %v", err)
	}

	rating, err := svc.RateProduct(context.Background(), 9, 11, 4, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rating.Score != 4 {
		t.Fatalf("expected score 4, got %d", rating.Score)
	}
}
