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
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrVehicleForbidden    = errors.New("not authorized for this vehicle")
	ErrVehicleExists       = errors.New("vehicle with this registration already exists for your account")
	ErrInvalidVehicleInput = errors.New("invalid vehicle input")
)

// IVehicleUseCase manages a customer's vehicles. Every operation is scoped to
// the owning user.
type IVehicleUseCase interface {
	Add(ctx context.Context, userID string, in VehicleInput) (entities.Vehicle, error)
	GetByID(ctx context.Context, actorUserID, vehicleID string) (entities.Vehicle, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, actorUserID, vehicleID string, in VehicleInput) (entities.Vehicle, error)
	Delete(ctx context.Context, actorUserID, vehicleID string) error
}

type VehicleInput struct {
	Make         string
	Model        string
	Year         int
	Registration string
}

type VehicleUseCase struct {
	vehicles interfaces.IVehicleRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(vehicles interfaces.IVehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{vehicles: vehicles}
}

func (u *VehicleUseCase) Add(ctx context.Context, userID string, in VehicleInput) (entities.Vehicle, error) {
	in.Make = strings.TrimSpace(in.Make)
	in.Model = strings.TrimSpace(in.Model)
	in.Registration = strings.TrimSpace(in.Registration)
	if in.Make == "" || in.Model == "" {
		return entities.Vehicle{}, ErrInvalidVehicleInput
	}

	if in.Registration != "" {
		existing, err := u.vehicles.GetByUserAndRegistration(ctx, userID, in.Registration)
		if err != nil {
			return entities.Vehicle{}, err
		}
		if existing.ID != "" {
			return entities.Vehicle{}, ErrVehicleExists
		}
	}

	now := time.Now().UTC()
	v := entities.Vehicle{
		ID:           uuid.NewString(),
		UserID:       userID,
		Make:         in.Make,
		Model:        in.Model,
		Year:         in.Year,
		Registration: in.Registration,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.vehicles.Create(ctx, v)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, actorUserID, vehicleID string) (entities.Vehicle, error) {
	return u.ownedVehicle(ctx, actorUserID, vehicleID)
}

func (u *VehicleUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Vehicle, error) {
	return u.vehicles.ListByUserID(ctx, userID)
}

func (u *VehicleUseCase) Update(ctx context.Context, actorUserID, vehicleID string, in VehicleInput) (entities.Vehicle, error) {
	v, err := u.ownedVehicle(ctx, actorUserID, vehicleID)
	if err != nil {
		return entities.Vehicle{}, err
	}

	if m := strings.TrimSpace(in.Make); m != "" {
		v.Make = m
	}
	if m := strings.TrimSpace(in.Model); m != "" {
		v.Model = m
	}
	if in.Year != 0 {
		v.Year = in.Year
	}
	if r := strings.TrimSpace(in.Registration); r != "" {
		v.Registration = r
	}
	v.UpdatedAt = time.Now().UTC()

	return u.vehicles.Update(ctx, v)
}

func (u *VehicleUseCase) Delete(ctx context.Context, actorUserID, vehicleID string) error {
	if _, err := u.ownedVehicle(ctx, actorUserID, vehicleID); err != nil {
		return err
	}
	return u.vehicles.Delete(ctx, vehicleID)
}

func (u *VehicleUseCase) ownedVehicle(ctx context.Context, actorUserID, vehicleID string) (entities.Vehicle, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.Vehicle{}, ErrInvalidVehicleInput
	}
	v, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	if v.UserID != actorUserID {
		return entities.Vehicle{}, ErrVehicleForbidden
	}
	return v, nil
}
