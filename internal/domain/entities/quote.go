package entities

import "time"

// QuoteStatus represents the lifecycle of a service quote.
//
// Domain notes:
//   - Pending -> Quoted (mechanic responds) -> Accepted (user accepts, spawns a booking)
//   - Pending/Quoted -> Rejected (either party)
//   - Accepted and Rejected are terminal; no transition leaves them.
//   - Expired is reserved for quotes past ValidUntil. ValidUntil is advisory;
//     no sweep sets Expired today.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "Pending"
	QuoteStatusQuoted   QuoteStatus = "Quoted"
	QuoteStatusAccepted QuoteStatus = "Accepted"
	QuoteStatusRejected QuoteStatus = "Rejected"
	QuoteStatusExpired  QuoteStatus = "Expired"
)

// IsTerminal reports whether no further transition is permitted.
func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusAccepted || s == QuoteStatusRejected || s == QuoteStatusExpired
}

// QuotedPrice is the mechanic's priced offer. Amount is only meaningful once
// the quote has reached Quoted.
type QuotedPrice struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

const DefaultQuoteCurrency = "AUD"

// Quote is a user's request for a priced offer from one mechanic, persisted in
// DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//   - GSI2 (mechanic_id-index): mechanic_id
//
// A batch request fans out into independent Quote items; there is no batch
// entity, so accepting one quote leaves its siblings untouched.
type Quote struct {
	ID                string      `json:"id"`
	UserID            string      `json:"user_id"`
	MechanicID        string      `json:"mechanic_id"`
	VehicleID         string      `json:"vehicle_id,omitempty"`
	ServiceType       string      `json:"service_type"`
	Description       string      `json:"description,omitempty"`
	Status            QuoteStatus `json:"status"`
	QuotedPrice       QuotedPrice `json:"quoted_price,omitempty"`
	EstimatedDuration string      `json:"estimated_duration,omitempty"`
	ValidUntil        time.Time   `json:"valid_until,omitempty"`
	MechanicNotes     string      `json:"mechanic_notes,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
