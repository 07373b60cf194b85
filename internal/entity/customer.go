package entity

import "time"

// Customer is a buyer account. Credentials live here; everything else about
// customers is owned by other systems.
type Customer struct {
	CustomerID   int64     `json:"customer_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        *string   `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
}
