package request

import "mechfinder/internal/usecase"

type ReviewRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

func (r ReviewRequest) ToInput() usecase.CreateReviewInput {
	return usecase.CreateReviewInput{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

type ReviewResponseRequest struct {
	Response string `json:"response" binding:"required"`
}
