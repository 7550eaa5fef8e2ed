package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMechanicNotFound        = errors.New("mechanic not found")
	ErrMechanicProfileNotFound = errors.New("mechanic profile not found")
	ErrMechanicProfileExists   = errors.New("mechanic profile already exists for this user")
	ErrMechanicForbidden       = errors.New("not authorized for this mechanic profile")
	ErrInvalidMechanicInput    = errors.New("invalid mechanic input")
)

// IMechanicUseCase manages workshop profiles. The rating aggregate is owned by
// the review flow and is not writable here.
type IMechanicUseCase interface {
	Register(ctx context.Context, userID string, in MechanicProfileInput) (entities.Mechanic, error)
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
	List(ctx context.Context, filter interfaces.MechanicFilter) ([]entities.Mechanic, error)
	Update(ctx context.Context, actorUserID, mechanicID string, in MechanicProfileInput) (entities.Mechanic, error)
}

type MechanicProfileInput struct {
	BusinessName    string
	Phone           string
	Description     string
	Address         entities.Address
	ServicesOffered []string
}

type MechanicUseCase struct {
	mechanics interfaces.IMechanicRepository
}

var _ IMechanicUseCase = (*MechanicUseCase)(nil)

func NewMechanicUseCase(mechanics interfaces.IMechanicRepository) *MechanicUseCase {
	return &MechanicUseCase{mechanics: mechanics}
}

func (u *MechanicUseCase) Register(ctx context.Context, userID string, in MechanicProfileInput) (entities.Mechanic, error) {
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.BusinessName == "" || in.Phone == "" {
		return entities.Mechanic{}, ErrInvalidMechanicInput
	}

	existing, err := u.mechanics.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if existing.ID != "" {
		return entities.Mechanic{}, ErrMechanicProfileExists
	}

	now := time.Now().UTC()
	m := entities.Mechanic{
		ID:              uuid.NewString(),
		UserID:          userID,
		BusinessName:    in.BusinessName,
		Phone:           in.Phone,
		Description:     strings.TrimSpace(in.Description),
		Address:         in.Address,
		ServicesOffered: in.ServicesOffered,
		Rating:          entities.Rating{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.mechanics.Create(ctx, m)
}

func (u *MechanicUseCase) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mechanic{}, ErrInvalidMechanicInput
	}
	m, err := u.mechanics.GetByID(ctx, id)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if m.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}
	return m, nil
}

func (u *MechanicUseCase) List(ctx context.Context, filter interfaces.MechanicFilter) ([]entities.Mechanic, error) {
	return u.mechanics.List(ctx, filter)
}

func (u *MechanicUseCase) Update(ctx context.Context, actorUserID, mechanicID string, in MechanicProfileInput) (entities.Mechanic, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return entities.Mechanic{}, ErrInvalidMechanicInput
	}

	m, err := u.mechanics.GetByID(ctx, mechanicID)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if m.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}
	if m.UserID != actorUserID {
		return entities.Mechanic{}, ErrMechanicForbidden
	}

	if v := strings.TrimSpace(in.BusinessName); v != "" {
		m.BusinessName = v
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		m.Phone = v
	}
	if v := strings.TrimSpace(in.Description); v != "" {
		m.Description = v
	}
	if in.Address != (entities.Address{}) {
		m.Address = in.Address
	}
	if len(in.ServicesOffered) > 0 {
		m.ServicesOffered = in.ServicesOffered
	}
	m.UpdatedAt = time.Now().UTC()

	return u.mechanics.Update(ctx, m)
}
