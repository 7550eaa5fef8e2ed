package interfaces

import (
	"context"
	"mechfinder/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// GetByEmail resolves the lowercased unique email; reads return a zero-value
// User with nil error when the item is absent.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
