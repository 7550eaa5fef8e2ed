package interfaces

import (
	"context"
	"time"

	"mechfinder/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string, readAt time.Time) (entities.Notification, error)
	// MarkAllRead returns how many notifications were flipped to read.
	MarkAllRead(ctx context.Context, userID string, readAt time.Time) (int, error)
	Delete(ctx context.Context, id string) error
}
