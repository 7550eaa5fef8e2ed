package response

import (
	"time"

	"mechfinder/internal/domain/entities"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	MechanicID    string    `json:"mechanic_id,omitempty"`
	VehicleID     string    `json:"vehicle_id,omitempty"`
	QuoteID       string    `json:"quote_id,omitempty"`
	ServiceType   string    `json:"service_type"`
	VehicleMake   string    `json:"vehicle_make"`
	VehicleModel  string    `json:"vehicle_model"`
	Location      string    `json:"location"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Price         string    `json:"price"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		MechanicID:    b.MechanicID,
		VehicleID:     b.VehicleID,
		QuoteID:       b.QuoteID,
		ServiceType:   b.ServiceType,
		VehicleMake:   b.VehicleMake,
		VehicleModel:  b.VehicleModel,
		Location:      b.Location,
		Date:          b.Date,
		Time:          b.Time,
		Price:         b.Price,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func FromBookings(bs []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBooking(b))
	}
	return out
}
