package response

import (
	"time"

	"mechfinder/internal/domain/entities"
)

type AddressResponse struct {
	Street   string `json:"street,omitempty"`
	Suburb   string `json:"suburb,omitempty"`
	State    string `json:"state,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

type RatingResponse struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type MechanicResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	BusinessName    string          `json:"business_name"`
	Phone           string          `json:"phone"`
	Description     string          `json:"description,omitempty"`
	Address         AddressResponse `json:"address"`
	ServicesOffered []string        `json:"services_offered,omitempty"`
	Rating          RatingResponse  `json:"rating"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func FromMechanic(m entities.Mechanic) MechanicResponse {
	return MechanicResponse{
		ID:           m.ID,
		UserID:       m.UserID,
		BusinessName: m.BusinessName,
		Phone:        m.Phone,
		Description:  m.Description,
		Address: AddressResponse{
			Street:   m.Address.Street,
			Suburb:   m.Address.Suburb,
			State:    m.Address.State,
			Postcode: m.Address.Postcode,
		},
		ServicesOffered: m.ServicesOffered,
		Rating:          RatingResponse{Average: m.Rating.Average, Count: m.Rating.Count},
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func FromMechanics(ms []entities.Mechanic) []MechanicResponse {
	out := make([]MechanicResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMechanic(m))
	}
	return out
}
