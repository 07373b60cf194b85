package dto

// CreateProductRequest carries the POST /api/products payload.
type CreateProductRequest struct {
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	PriceBDT     *float64 `json:"price_bdt"`
	CategorySlug *string  `json:"category_slug"`
	ImageURL     *string  `json:"image_url"`
}

// UpdateProductRequest carries the PATCH /api/products/:id payload. Absent
// fields stay untouched.
type UpdateProductRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	PriceBDT     *float64 `json:"price_bdt"`
	CategorySlug *string  `json:"category_slug"`
	ImageURL     *string  `json:"image_url"`
}

// CreateServiceRequest carries the POST /api/services payload.
type CreateServiceRequest struct {
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	RateBDT      *float64 `json:"rate_bdt"`
	CategorySlug *string  `json:"service_category_slug"`
	ImageURL     *string  `json:"image_url"`
}

// UpdateServiceRequest carries the PATCH /api/services/:id payload.
type UpdateServiceRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	RateBDT      *float64 `json:"rate_bdt"`
	CategorySlug *string  `json:"service_category_slug"`
	ImageURL     *string  `json:"image_url"`
}
