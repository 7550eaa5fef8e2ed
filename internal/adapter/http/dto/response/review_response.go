package response

import (
	"time"

	"mechfinder/internal/domain/entities"
)

type ReviewResponse struct {
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

func FromReview(rv entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:               rv.ID,
		UserID:           rv.UserID,
		MechanicID:       rv.MechanicID,
		BookingID:        rv.BookingID,
		Rating:           rv.Rating,
		Comment:          rv.Comment,
		MechanicResponse: rv.MechanicResponse,
		HelpfulVotes:     rv.HelpfulVotes,
		Verified:         rv.Verified,
		CreatedAt:        rv.CreatedAt,
		UpdatedAt:        rv.UpdatedAt,
	}
}

func FromReviews(rvs []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(rvs))
	for _, rv := range rvs {
		out = append(out, FromReview(rv))
	}
	return out
}
