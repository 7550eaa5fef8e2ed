package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidServiceInput = errors.New("invalid service input")
)

type CreateServiceInput struct {
	Name        string
	Description string
	Category    string
	BasePrice   float64
}

type UpdateServiceInput struct {
	Name        *string
	Description *string
	Category    *string
	BasePrice   *float64
	Active      *bool
}

// IServiceUseCase maintains the service catalog. Mutations are admin-only,
// enforced at the routing layer.
type IServiceUseCase interface {
	Create(ctx context.Context, input CreateServiceInput) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, activeOnly bool) ([]entities.Service, error)
	Update(ctx context.Context, id string, input UpdateServiceInput) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}

type ServiceUseCase struct {
	services interfaces.IServiceRepository
	log      *zap.SugaredLogger
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(services interfaces.IServiceRepository, log *zap.SugaredLogger) *ServiceUseCase {
	return &ServiceUseCase{services: services, log: log}
}

func (u *ServiceUseCase) Create(ctx context.Context, input CreateServiceInput) (entities.Service, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.BasePrice < 0 {
		return entities.Service{}, ErrInvalidServiceInput
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		BasePrice:   input.BasePrice,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.services.Create(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	u.log.Infow("service created", "service_id", created.ID, "name", created.Name)
	return created, nil
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceInput
	}
	s, err := u.services.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context, activeOnly bool) ([]entities.Service, error) {
	all, err := u.services.List(ctx)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return all, nil
	}
	active := make([]entities.Service, 0, len(all))
	for _, s := range all {
		if s.Active {
			active = append(active, s)
		}
	}
	return active, nil
}

func (u *ServiceUseCase) Update(ctx context.Context, id string, input UpdateServiceInput) (entities.Service, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return entities.Service{}, ErrInvalidServiceInput
		}
		s.Name = name
	}
	if input.Description != nil {
		s.Description = strings.TrimSpace(*input.Description)
	}
	if input.Category != nil {
		s.Category = strings.TrimSpace(*input.Category)
	}
	if input.BasePrice != nil {
		if *input.BasePrice < 0 {
			return entities.Service{}, ErrInvalidServiceInput
		}
		s.BasePrice = *input.BasePrice
	}
	if input.Active != nil {
		s.Active = *input.Active
	}
	s.UpdatedAt = time.Now().UTC()

	return u.services.Update(ctx, s)
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.services.Delete(ctx, id)
}
