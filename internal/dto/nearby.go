package dto

// NearbyQuery is the parsed query-string input shared by the nearby and
// recommendation endpoints.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Category  string
	Limit     int
}

// NearbyVendor is a vendor row ranked by distance.
type NearbyVendor struct {
	VendorID    int64    `json:"vendor_id"`
	CompanyName string   `json:"company_name"`
	Email       string   `json:"email"`
	Phone       *string  `json:"phone"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	LogoURL     *string  `json:"logo_url"`
	JobType     *string  `json:"job_type"`
	VendorType  string   `json:"vendor_type"`
	Rating      *float64 `json:"rating"`
	Description *string  `json:"vendor_description"`
	DistanceKm  float64  `json:"distance_km"`
}

// NearbyProduct is a product row joined to its owning vendor.
type NearbyProduct struct {
	ProductID      int64    `json:"product_id"`
	Title          string   `json:"title"`
	Description    *string  `json:"description"`
	PriceBDT       float64  `json:"price_bdt"`
	CategorySlug   *string  `json:"category_slug"`
	ImageURL       *string  `json:"image_url"`
	VendorID       int64    `json:"vendor_id"`
	VendorName     string   `json:"vendor_name"`
	VendorLocation *string  `json:"vendor_location"`
	VendorPhone    *string  `json:"vendor_phone"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Rating         *float64 `json:"rating"`
	DistanceKm     float64  `json:"distance_km"`
}

// NearbyService is a service row joined to its owning vendor.
type NearbyService struct {
	ServiceID      int64    `json:"service_id"`
	Title          string   `json:"title"`
	Description    *string  `json:"description"`
	RateBDT        float64  `json:"rate_bdt"`
	CategorySlug   *string  `json:"service_category_slug"`
	ImageURL       *string  `json:"image_url"`
	VendorID       int64    `json:"vendor_id"`
	VendorName     string   `json:"vendor_name"`
	VendorLocation *string  `json:"vendor_location"`
	VendorPhone    *string  `json:"vendor_phone"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Rating         *float64 `json:"rating"`
	JobType        *string  `json:"job_type"`
	DistanceKm     float64  `json:"distance_km"`
}

// RecommendedVendor augments a nearby vendor with the blended score.
type RecommendedVendor struct {
	NearbyVendor
	Score float64 `json:"score"`
}

// RecommendedProduct augments a nearby product with the blended score.
type RecommendedProduct struct {
	NearbyProduct
	Score float64 `json:"score"`
}
