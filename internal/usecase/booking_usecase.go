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
	ErrBookingNotFound          = errors.New("booking not found")
	ErrBookingForbidden         = errors.New("not authorized for this booking")
	ErrInvalidBookingInput      = errors.New("invalid booking input")
	ErrBookingInvalidTransition = errors.New("booking status transition not allowed")
)

// IBookingUseCase exposes booking operations for both sides of the
// marketplace. Customers own their bookings; the assigned mechanic may only
// progress the status.
type IBookingUseCase interface {
	Create(ctx context.Context, userID string, in CreateBookingInput) (entities.Booking, error)
	GetByID(ctx context.Context, actorUserID, bookingID string) (entities.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Booking, error)
	ListByMechanicUser(ctx context.Context, actorUserID string) ([]entities.Booking, error)
	Update(ctx context.Context, actorUserID, bookingID string, in UpdateBookingInput) (entities.Booking, error)
	UpdateStatusByMechanic(ctx context.Context, actorUserID, bookingID string, next entities.BookingStatus) (entities.Booking, error)
	Delete(ctx context.Context, actorUserID, bookingID string) error
}

type CreateBookingInput struct {
	MechanicID   string
	VehicleID    string
	ServiceType  string
	VehicleMake  string
	VehicleModel string
	Location     string
	Date         string
	Time         string
	Price        string
	Notes        string
}

// UpdateBookingInput carries optional fields; empty values leave the stored
// value untouched.
type UpdateBookingInput struct {
	Status entities.BookingStatus
	Date   string
	Time   string
	Notes  *string
}

type BookingUseCase struct {
	bookings  interfaces.IBookingRepository
	mechanics interfaces.IMechanicRepository
	notifier  interfaces.INotifier
	log       *zap.SugaredLogger
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	bookings interfaces.IBookingRepository,
	mechanics interfaces.IMechanicRepository,
	notifier interfaces.INotifier,
	log *zap.SugaredLogger,
) *BookingUseCase {
	return &BookingUseCase{bookings: bookings, mechanics: mechanics, notifier: notifier, log: log}
}

func (u *BookingUseCase) Create(ctx context.Context, userID string, in CreateBookingInput) (entities.Booking, error) {
	in.ServiceType = strings.TrimSpace(in.ServiceType)
	in.VehicleMake = strings.TrimSpace(in.VehicleMake)
	in.VehicleModel = strings.TrimSpace(in.VehicleModel)
	in.Location = strings.TrimSpace(in.Location)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Price = strings.TrimSpace(in.Price)
	if in.ServiceType == "" || in.VehicleMake == "" || in.VehicleModel == "" ||
		in.Location == "" || in.Date == "" || in.Time == "" || in.Price == "" {
		return entities.Booking{}, ErrInvalidBookingInput
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:            uuid.NewString(),
		UserID:        userID,
		MechanicID:    strings.TrimSpace(in.MechanicID),
		VehicleID:     strings.TrimSpace(in.VehicleID),
		ServiceType:   in.ServiceType,
		VehicleMake:   in.VehicleMake,
		VehicleModel:  in.VehicleModel,
		Location:      in.Location,
		Date:          in.Date,
		Time:          in.Time,
		Price:         in.Price,
		Status:        entities.BookingStatusPending,
		PaymentStatus: entities.PaymentStatusPending,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.bookings.Create(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}
	u.log.Infow("booking created", "booking_id", created.ID, "user_id", userID)
	return created, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, actorUserID, bookingID string) (entities.Booking, error) {
	b, err := u.ownedBooking(ctx, actorUserID, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (u *BookingUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Booking, error) {
	return u.bookings.ListByUserID(ctx, userID)
}

func (u *BookingUseCase) ListByMechanicUser(ctx context.Context, actorUserID string) ([]entities.Booking, error) {
	mech, err := u.mechanics.GetByUserID(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if mech.ID == "" {
		return nil, ErrMechanicProfileNotFound
	}
	return u.bookings.ListByMechanicID(ctx, mech.ID)
}

func (u *BookingUseCase) Update(ctx context.Context, actorUserID, bookingID string, in UpdateBookingInput) (entities.Booking, error) {
	b, err := u.ownedBooking(ctx, actorUserID, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}

	if in.Status != "" && in.Status != b.Status {
		if !b.Status.CanTransitionTo(in.Status) {
			return entities.Booking{}, ErrBookingInvalidTransition
		}
		b, err = u.bookings.UpdateStatusIf(ctx, bookingID, b.Status, in.Status)
		if err != nil {
			if errors.Is(err, interfaces.ErrConditionFailed) {
				return entities.Booking{}, ErrBookingInvalidTransition
			}
			return entities.Booking{}, err
		}
	}

	changed := false
	if d := strings.TrimSpace(in.Date); d != "" && d != b.Date {
		b.Date = d
		changed = true
	}
	if t := strings.TrimSpace(in.Time); t != "" && t != b.Time {
		b.Time = t
		changed = true
	}
	if in.Notes != nil {
		b.Notes = *in.Notes
		changed = true
	}
	if changed {
		b.UpdatedAt = time.Now().UTC()
		b, err = u.bookings.Update(ctx, b)
		if err != nil {
			return entities.Booking{}, err
		}
	}
	return b, nil
}

// UpdateStatusByMechanic lets the assigned mechanic progress the booking
// (Confirmed -> In Progress -> Completed, or cancel a non-terminal one).
func (u *BookingUseCase) UpdateStatusByMechanic(ctx context.Context, actorUserID, bookingID string, next entities.BookingStatus) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" || next == "" {
		return entities.Booking{}, ErrInvalidBookingInput
	}

	b, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}

	mech, err := u.mechanics.GetByUserID(ctx, actorUserID)
	if err != nil {
		return entities.Booking{}, err
	}
	if mech.ID == "" || mech.ID != b.MechanicID {
		return entities.Booking{}, ErrBookingForbidden
	}

	if !b.Status.CanTransitionTo(next) {
		return entities.Booking{}, ErrBookingInvalidTransition
	}

	updated, err := u.bookings.UpdateStatusIf(ctx, bookingID, b.Status, next)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Booking{}, ErrBookingInvalidTransition
		}
		return entities.Booking{}, err
	}

	u.notify(ctx, b.UserID, entities.NotificationBookingUpdated,
		"Booking "+strings.ToLower(string(next)), "Your "+b.ServiceType+" booking is now "+string(next), b.ID)
	return updated, nil
}

func (u *BookingUseCase) Delete(ctx context.Context, actorUserID, bookingID string) error {
	if _, err := u.ownedBooking(ctx, actorUserID, bookingID); err != nil {
		return err
	}
	return u.bookings.Delete(ctx, bookingID)
}

func (u *BookingUseCase) ownedBooking(ctx context.Context, actorUserID, bookingID string) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidBookingInput
	}
	b, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if b.UserID != actorUserID {
		return entities.Booking{}, ErrBookingForbidden
	}
	return b, nil
}

func (u *BookingUseCase) notify(ctx context.Context, userID string, t entities.NotificationType, title, message, entityID string) {
	if u.notifier == nil || userID == "" {
		return
	}
	if err := u.notifier.Notify(ctx, userID, t, title, message, entityID); err != nil {
		u.log.Warnw("notification delivery failed", "user_id", userID, "type", t, "err", err)
	}
}
