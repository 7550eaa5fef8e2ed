package interfaces

import (
	"context"
	"mechfinder/internal/domain/entities"
)

// INotifier delivers an in-app notification to one user. Emitters treat
// delivery as best-effort; a failed notification must never fail the
// operation that triggered it.
type INotifier interface {
	Notify(ctx context.Context, userID string, t entities.NotificationType, title, message, entityID string) error
}
