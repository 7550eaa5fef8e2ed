package entities

import "time"

// Vehicle is a customer's registered vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Vehicle struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year,omitempty"`
	Registration string    `json:"registration,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
