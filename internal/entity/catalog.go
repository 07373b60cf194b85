package entity

import "time"

// Product is a physical item listed by a vendor.
type Product struct {
	ProductID    int64     `json:"product_id"`
	VendorID     int64     `json:"vendor_id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	PriceBDT     float64   `json:"price_bdt"`
	CategorySlug *string   `json:"category_slug"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Service is a work offering listed by a vendor.
type Service struct {
	ServiceID    int64     `json:"service_id"`
	VendorID     int64     `json:"vendor_id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	RateBDT      float64   `json:"rate_bdt"`
	CategorySlug *string   `json:"service_category_slug"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
