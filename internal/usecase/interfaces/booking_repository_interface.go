package interfaces

import (
	"context"
	"mechfinder/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Status and payment-status flips are conditional writes; ErrConditionFailed
// means the stored value no longer matches what the caller read.
type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
	ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.Booking, error)
	Update(ctx context.Context, b entities.Booking) (entities.Booking, error)
	UpdateStatusIf(ctx context.Context, id string, expected, next entities.BookingStatus) (entities.Booking, error)
	UpdatePaymentStatusIf(ctx context.Context, id string, expected, next entities.PaymentStatus) (entities.Booking, error)
	Delete(ctx context.Context, id string) error
}
