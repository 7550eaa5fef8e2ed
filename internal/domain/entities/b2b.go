package entities

import "time"

// B2BStatus is the review state of a partnership application.
type B2BStatus string

const (
	B2BStatusPending  B2BStatus = "pending"
	B2BStatusApproved B2BStatus = "approved"
	B2BStatusRejected B2BStatus = "rejected"
)

// B2BApplication is a partnership intake request submitted by a company.
//
// Storage model (DynamoDB):
//   - PK: id
type B2BApplication struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Message     string    `json:"message,omitempty"`
	Status      B2BStatus `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
