package interfaces

import (
	"context"
	"mechfinder/internal/domain/entities"
)

// IB2BRepository abstracts DynamoDB persistence for partnership applications.
type IB2BRepository interface {
	Create(ctx context.Context, a entities.B2BApplication) (entities.B2BApplication, error)
	GetByID(ctx context.Context, id string) (entities.B2BApplication, error)
	List(ctx context.Context, status entities.B2BStatus) ([]entities.B2BApplication, error)
	UpdateStatus(ctx context.Context, id string, status entities.B2BStatus) (entities.B2BApplication, error)
}
