package response

import (
	"time"

	"mechfinder/internal/domain/entities"
)

type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	BasePrice   float64   `json:"base_price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		BasePrice:   s.BasePrice,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromServices(ss []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromService(s))
	}
	return out
}
