package request

import (
	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase"
)

type BookingRequest struct {
	MechanicID   string `json:"mechanic_id"`
	VehicleID    string `json:"vehicle_id"`
	ServiceType  string `json:"service_type" binding:"required"`
	VehicleMake  string `json:"vehicle_make" binding:"required"`
	VehicleModel string `json:"vehicle_model" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Price        string `json:"price" binding:"required"`
	Notes        string `json:"notes"`
}

func (r BookingRequest) ToInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		MechanicID:   r.MechanicID,
		VehicleID:    r.VehicleID,
		ServiceType:  r.ServiceType,
		VehicleMake:  r.VehicleMake,
		VehicleModel: r.VehicleModel,
		Location:     r.Location,
		Date:         r.Date,
		Time:         r.Time,
		Price:        r.Price,
		Notes:        r.Notes,
	}
}

type UpdateBookingRequest struct {
	Status string  `json:"status"`
	Date   string  `json:"date"`
	Time   string  `json:"time"`
	Notes  *string `json:"notes"`
}

func (r UpdateBookingRequest) ToInput() usecase.UpdateBookingInput {
	return usecase.UpdateBookingInput{
		Status: entities.BookingStatus(r.Status),
		Date:   r.Date,
		Time:   r.Time,
		Notes:  r.Notes,
	}
}

type BookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
