package interfaces

import (
	"context"
	"mechfinder/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.Payment, error)
}
