package entities

import "time"

// Role controls route-level authorization. A mechanic is a regular user who
// also owns a Mechanic profile; the role is informative, ownership checks go
// through the profile.
type Role string

const (
	RoleUser     Role = "user"
	RoleMechanic Role = "mechanic"
	RoleAdmin    Role = "admin"
)

// User is an authenticated account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email (lowercased, unique by conditional put)
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
