package response

import (
	"time"

	"mechfinder/internal/domain/entities"
)

type B2BApplicationResponse struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromB2BApplication(a entities.B2BApplication) B2BApplicationResponse {
	return B2BApplicationResponse{
		ID:          a.ID,
		CompanyName: a.CompanyName,
		ContactName: a.ContactName,
		Email:       a.Email,
		Phone:       a.Phone,
		Message:     a.Message,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func FromB2BApplications(as []entities.B2BApplication) []B2BApplicationResponse {
	out := make([]B2BApplicationResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromB2BApplication(a))
	}
	return out
}
