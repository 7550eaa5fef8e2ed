package entities

import "time"

// Address is the workshop street address. Street and Suburb feed the booking
// location snapshot.
type Address struct {
	Street   string `json:"street,omitempty"`
	Suburb   string `json:"suburb,omitempty"`
	State    string `json:"state,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

// Rating is the mechanic's aggregate over all of their reviews. Average is
// rounded to one decimal place and recomputed in full on every new review.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Mechanic is a workshop profile owned by exactly one user account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id (one profile per user)
type Mechanic struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	BusinessName    string    `json:"business_name"`
	Phone           string    `json:"phone"`
	Description     string    `json:"description,omitempty"`
	Address         Address   `json:"address,omitempty"`
	ServicesOffered []string  `json:"services_offered,omitempty"`
	Rating          Rating    `json:"rating"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HasAddress reports whether the profile carries enough of an address to build
// a booking location.
func (m Mechanic) HasAddress() bool {
	return m.Address.Street != "" && m.Address.Suburb != ""
}
