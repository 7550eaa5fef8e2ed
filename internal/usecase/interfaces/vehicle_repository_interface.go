package interfaces

import (
	"context"
	"mechfinder/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Vehicle, error)
	GetByUserAndRegistration(ctx context.Context, userID, registration string) (entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}
