package interfaces

import (
	"context"
	"mechfinder/internal/domain/entities"
)

// MechanicFilter narrows directory listings. Zero values mean "no filter".
type MechanicFilter struct {
	ServiceType string
	Suburb      string
	Limit       int
}

// IMechanicRepository abstracts DynamoDB persistence for Mechanic.
//
// The directory must be able to:
//   - register one profile per user account
//   - resolve a profile by id or by owning user
//   - overwrite the rating aggregate (written only by the review flow)
type IMechanicRepository interface {
	Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
	GetByUserID(ctx context.Context, userID string) (entities.Mechanic, error)
	List(ctx context.Context, filter MechanicFilter) ([]entities.Mechanic, error)
	Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	SetRating(ctx context.Context, id string, rating entities.Rating) (entities.Mechanic, error)
}
