package entity

import "time"

// Rating is a customer's score against a vendor or a product. Exactly one of
// VendorID and ProductID is set.
type Rating struct {
	RatingID   int64     `json:"rating_id"`
	CustomerID int64     `json:"customer_id"`
	VendorID   *int64    `json:"vendor_id,omitempty"`
	ProductID  *int64    `json:"product_id,omitempty"`
	Score      int       `json:"score"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
