package dto

// RateRequest carries a customer's score for a vendor or product.
type RateRequest struct {
	Score   *int    `json:"score"`
	Comment *string `json:"comment"`
}
