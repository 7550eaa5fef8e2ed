package usecase

import (
	"context"
	"errors"
	"testing"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"
	mock_interfaces "mechfinder/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newBookingUseCaseForTest(ctrl *gomock.Controller) (*BookingUseCase, *mock_interfaces.MockIBookingRepository, *mock_interfaces.MockIMechanicRepository) {
	bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
	mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
	uc := NewBookingUseCase(bookings, mechanics, nil, zap.NewNop().Sugar())
	return uc, bookings, mechanics
}

func TestBookingUseCase_Create(t *testing.T) {
	valid := CreateBookingInput{
		ServiceType:  "Brake service",
		VehicleMake:  "Toyota",
		VehicleModel: "Corolla",
		Location:     "12 Main St, Newtown",
		Date:         "2026-09-15",
		Time:         "10:30",
		Price:        "200",
	}

	t.Run("missing snapshot field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newBookingUseCaseForTest(ctrl)

		in := valid
		in.Price = "  "
		_, err := uc.Create(context.Background(), "user-1", in)
		if !errors.Is(err, ErrInvalidBookingInput) {
			t.Fatalf("expected ErrInvalidBookingInput, got %v", err)
		}
	})

	t.Run("create starts pending and unpaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookings, _ := newBookingUseCaseForTest(ctrl)

		bookings.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Booking{})).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.Status != entities.BookingStatusPending || b.PaymentStatus != entities.PaymentStatusPending {
					t.Fatalf("unexpected initial statuses: %+v", b)
				}
				if b.ID == "" || b.UserID != "user-1" {
					t.Fatalf("unexpected booking: %+v", b)
				}
				return b, nil
			},
		)

		b, err := uc.Create(context.Background(), "user-1", valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Price != "200" {
			t.Fatalf("unexpected price: %q", b.Price)
		}
	})
}

func TestBookingUseCase_Update(t *testing.T) {
	confirmed := entities.Booking{
		ID:     "b-1",
		UserID: "user-1",
		Status: entities.BookingStatusConfirmed,
		Date:   "2026-09-15",
		Time:   "10:30",
	}

	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookings, _ := newBookingUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(confirmed, nil)

		_, err := uc.Update(context.Background(), "other-user", "b-1", UpdateBookingInput{})
		if !errors.Is(err, ErrBookingForbidden) {
			t.Fatalf("expected ErrBookingForbidden, got %v", err)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookings, _ := newBookingUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(confirmed, nil)

		_, err := uc.Update(context.Background(), "user-1", "b-1", UpdateBookingInput{Status: entities.BookingStatusCompleted})
		if !errors.Is(err, ErrBookingInvalidTransition) {
			t.Fatalf("expected ErrBookingInvalidTransition, got %v", err)
		}
	})

	t.Run("owner may cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookings, _ := newBookingUseCaseForTest(ctrl)

		cancelled := confirmed
		cancelled.Status = entities.BookingStatusCancelled
		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(confirmed, nil)
		bookings.EXPECT().UpdateStatusIf(gomock.Any(), "b-1", entities.BookingStatusConfirmed, entities.BookingStatusCancelled).Return(cancelled, nil)

		b, err := uc.Update(context.Background(), "user-1", "b-1", UpdateBookingInput{Status: entities.BookingStatusCancelled})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.BookingStatusCancelled {
			t.Fatalf("expected cancelled, got %s", b.Status)
		}
	})

	t.Run("reschedule writes only when something changed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookings, _ := newBookingUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(confirmed, nil)
		bookings.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Booking{})).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.Date != "2026-09-20" || b.Time != "10:30" {
					t.Fatalf("unexpected schedule: %s %s", b.Date, b.Time)
				}
				return b, nil
			},
		)

		b, err := uc.Update(context.Background(), "user-1", "b-1", UpdateBookingInput{Date: "2026-09-20"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Date != "2026-09-20" {
			t.Fatalf("unexpected date: %q", b.Date)
		}
	})

	t.Run("no-op update skips the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookings, _ := newBookingUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(confirmed, nil)

		b, err := uc.Update(context.Background(), "user-1", "b-1", UpdateBookingInput{Date: "2026-09-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Date != "2026-09-15" {
			t.Fatalf("unexpected date: %q", b.Date)
		}
	})
}

func TestBookingUseCase_UpdateStatusByMechanic(t *testing.T) {
	confirmed := entities.Booking{
		ID:          "b-1",
		UserID:      "user-1",
		MechanicID:  "mech-1",
		ServiceType: "Brake service",
		Status:      entities.BookingStatusConfirmed,
	}

	t.Run("only the assigned mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookings, mechanics := newBookingUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(confirmed, nil)
		mechanics.EXPECT().GetByUserID(gomock.Any(), "other-user").Return(entities.Mechanic{ID: "mech-2"}, nil)

		_, err := uc.UpdateStatusByMechanic(context.Background(), "other-user", "b-1", entities.BookingStatusInProgress)
		if !errors.Is(err, ErrBookingForbidden) {
			t.Fatalf("expected ErrBookingForbidden, got %v", err)
		}
	})

	t.Run("terminal booking cannot move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookings, mechanics := newBookingUseCaseForTest(ctrl)

		done := confirmed
		done.Status = entities.BookingStatusCompleted
		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(done, nil)
		mechanics.EXPECT().GetByUserID(gomock.Any(), "mech-user").Return(entities.Mechanic{ID: "mech-1"}, nil)

		_, err := uc.UpdateStatusByMechanic(context.Background(), "mech-user", "b-1", entities.BookingStatusInProgress)
		if !errors.Is(err, ErrBookingInvalidTransition) {
			t.Fatalf("expected ErrBookingInvalidTransition, got %v", err)
		}
	})

	t.Run("lost conditional write maps to invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookings, mechanics := newBookingUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(confirmed, nil)
		mechanics.EXPECT().GetByUserID(gomock.Any(), "mech-user").Return(entities.Mechanic{ID: "mech-1"}, nil)
		bookings.EXPECT().UpdateStatusIf(gomock.Any(), "b-1", entities.BookingStatusConfirmed, entities.BookingStatusInProgress).
			Return(entities.Booking{}, interfaces.ErrConditionFailed)

		_, err := uc.UpdateStatusByMechanic(context.Background(), "mech-user", "b-1", entities.BookingStatusInProgress)
		if !errors.Is(err, ErrBookingInvalidTransition) {
			t.Fatalf("expected ErrBookingInvalidTransition, got %v", err)
		}
	})

	t.Run("progression success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookings, mechanics := newBookingUseCaseForTest(ctrl)

		inProgress := confirmed
		inProgress.Status = entities.BookingStatusInProgress
		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(confirmed, nil)
		mechanics.EXPECT().GetByUserID(gomock.Any(), "mech-user").Return(entities.Mechanic{ID: "mech-1"}, nil)
		bookings.EXPECT().UpdateStatusIf(gomock.Any(), "b-1", entities.BookingStatusConfirmed, entities.BookingStatusInProgress).Return(inProgress, nil)

		b, err := uc.UpdateStatusByMechanic(context.Background(), "mech-user", "b-1", entities.BookingStatusInProgress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.BookingStatusInProgress {
			t.Fatalf("expected in progress, got %s", b.Status)
		}
	})
}

func TestBookingUseCase_Delete(t *testing.T) {
	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookings, _ := newBookingUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{}, nil)

		err := uc.Delete(context.Background(), "user-1", "b-1")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookings, _ := newBookingUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{ID: "b-1", UserID: "user-1"}, nil)
		bookings.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

		if err := uc.Delete(context.Background(), "user-1", "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
