package interfaces

import (
	"context"
	"mechfinder/internal/domain/entities"
)

// IReviewRepository abstracts DynamoDB persistence for Review.
//
// Create is keyed on booking_id with a conditional put; a second review for
// the same booking fails with ErrConditionFailed (first-writer-wins).
type IReviewRepository interface {
	Create(ctx context.Context, rv entities.Review) (entities.Review, error)
	GetByID(ctx context.Context, id string) (entities.Review, error)
	GetByBookingID(ctx context.Context, bookingID string) (entities.Review, error)
	ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.Review, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Review, error)
	SetMechanicResponse(ctx context.Context, id, response string) (entities.Review, error)
	IncrementHelpfulVotes(ctx context.Context, id string) (entities.Review, error)
}
