package interfaces

import (
	"context"
	"time"

	"mechfinder/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// State transitions are guarded: the *If methods perform a conditional write
// matching the expected prior status and return ErrConditionFailed when the
// stored status differs, so two racing transitions cannot both succeed.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error)
	ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.Quote, error)

	// UpdateStatusIf flips status expected -> next.
	UpdateStatusIf(ctx context.Context, id string, expected, next entities.QuoteStatus) (entities.Quote, error)

	// SetResponseIf stores the mechanic's offer and flips status expected -> Quoted.
	SetResponseIf(ctx context.Context, id string, expected entities.QuoteStatus, price entities.QuotedPrice, estimatedDuration string, validUntil time.Time, notes string) (entities.Quote, error)

	// AcceptWithBooking flips status Quoted -> Accepted and writes the booking
	// atomically. Both writes land or neither does.
	AcceptWithBooking(ctx context.Context, quoteID string, b entities.Booking) error
}
