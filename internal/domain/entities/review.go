package entities

import "time"

// Review is a user's rating of a completed booking, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: booking_id (at most one review per booking; the conditional put on
//     the key is the uniqueness guard)
//   - GSI1 (mechanic_id-index): mechanic_id
//   - GSI2 (user_id-index): user_id
//
// Verified is always true: a review can only be attached to a Completed
// booking, so the service is known to have occurred.
type Review struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	MechanicID       string    `json:"mechanic_id"`
	BookingID        string    `json:"booking_id"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment,omitempty"`
	MechanicResponse string    `json:"mechanic_response,omitempty"`
	HelpfulVotes     int       `json:"helpful_votes"`
	Verified         bool      `json:"verified"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
