package usecase

import (
	"strconv"
	"time"

	"mechfinder/internal/domain/entities"

	"github.com/google/uuid"
)

const (
	fallbackVehicleMake  = "Unknown"
	fallbackVehicleModel = "Unknown"
	fallbackLocation     = "Mechanic Workshop"
	defaultBookingTime   = "09:00"
)

// BuildBookingFromQuote derives a booking from an accepted quote. The result
// is a snapshot: vehicle make/model, workshop location and price are copied at
// derivation time and never follow later quote or profile edits.
//
// Pure function; the quote itself is never mutated here, the caller owns the
// Quoted -> Accepted transition.
func BuildBookingFromQuote(q entities.Quote, mech entities.Mechanic, vehicle entities.Vehicle, date, timeOfDay string, now time.Time) entities.Booking {
	vehicleMake, vehicleModel := fallbackVehicleMake, fallbackVehicleModel
	if vehicle.ID != "" {
		vehicleMake, vehicleModel = vehicle.Make, vehicle.Model
	}

	location := fallbackLocation
	if mech.HasAddress() {
		location = mech.Address.Street + ", " + mech.Address.Suburb
	}

	if date == "" {
		date = now.Format("2006-01-02")
	}
	if timeOfDay == "" {
		timeOfDay = defaultBookingTime
	}

	notes := "Booking created from quote."
	if q.Description != "" {
		notes += " " + q.Description
	}

	return entities.Booking{
		ID:           uuid.NewString(),
		UserID:       q.UserID,
		MechanicID:   q.MechanicID,
		VehicleID:    q.VehicleID,
		QuoteID:      q.ID,
		ServiceType:  q.ServiceType,
		VehicleMake:  vehicleMake,
		VehicleModel: vehicleModel,
		Location:     location,
		Date:         date,
		Time:         timeOfDay,
		Price:        strconv.FormatFloat(q.QuotedPrice.Amount, 'f', -1, 64),
		// Acceptance implies confirmation; Pending is skipped.
		Status:        entities.BookingStatusConfirmed,
		PaymentStatus: entities.PaymentStatusPending,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
