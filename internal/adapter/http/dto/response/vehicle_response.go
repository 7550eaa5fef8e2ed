package response

import (
	"time"

	"mechfinder/internal/domain/entities"
)

type VehicleResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year,omitempty"`
	Registration string    `json:"registration,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		UserID:       v.UserID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		Registration: v.Registration,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromVehicles(vs []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVehicle(v))
	}
	return out
}
