package entities

import "time"

// NotificationType tags the event that produced the notification.
type NotificationType string

const (
	NotificationQuoteRequested NotificationType = "quote_requested"
	NotificationQuoteResponded NotificationType = "quote_responded"
	NotificationQuoteAccepted  NotificationType = "quote_accepted"
	NotificationBookingUpdated NotificationType = "booking_updated"
	NotificationReviewReceived NotificationType = "review_received"
)

// Notification is an in-app message for one user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	EntityID  string           `json:"entity_id,omitempty"`
	IsRead    bool             `json:"is_read"`
	ReadAt    time.Time        `json:"read_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
