package entities

import "time"

// BookingStatus represents the lifecycle of a scheduled service engagement.
//
// Status moves forward through Pending/Confirmed -> In Progress -> Completed,
// or short-circuits to Cancelled from any non-terminal state.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "Pending"
	BookingStatusConfirmed  BookingStatus = "Confirmed"
	BookingStatusInProgress BookingStatus = "In Progress"
	BookingStatusCompleted  BookingStatus = "Completed"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransitionTo reports whether the booking status may move to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == BookingStatusCancelled {
		return true
	}
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusInProgress
	case BookingStatusConfirmed:
		return next == BookingStatusInProgress
	case BookingStatusInProgress:
		return next == BookingStatusCompleted
	}
	return false
}

// PaymentStatus represents the payment state of a booking.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// Booking is a confirmed, scheduled service engagement persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//   - GSI2 (mechanic_id-index): mechanic_id
//
// VehicleMake/VehicleModel/Location/Price are snapshots taken at creation
// time. A booking derived from a quote keeps the quoted amount even if the
// quote is mutated later.
type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	MechanicID    string        `json:"mechanic_id,omitempty"`
	VehicleID     string        `json:"vehicle_id,omitempty"`
	QuoteID       string        `json:"quote_id,omitempty"`
	ServiceType   string        `json:"service_type"`
	VehicleMake   string        `json:"vehicle_make"`
	VehicleModel  string        `json:"vehicle_model"`
	Location      string        `json:"location"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Price         string        `json:"price"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
