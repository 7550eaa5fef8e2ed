package usecase

import (
	"context"
	"errors"
	"testing"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"
	mock_interfaces "mechfinder/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMechanicUseCase_Register(t *testing.T) {
	t.Run("missing phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewMechanicUseCase(mechanics)

		_, err := uc.Register(context.Background(), "u-1", MechanicProfileInput{BusinessName: "Joe's Garage"})
		if !errors.Is(err, ErrInvalidMechanicInput) {
			t.Fatalf("expected ErrInvalidMechanicInput, got %v", err)
		}
	})

	t.Run("one profile per user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewMechanicUseCase(mechanics)

		mechanics.EXPECT().GetByUserID(gomock.Any(), "u-1").Return(entities.Mechanic{ID: "mech-1"}, nil)

		_, err := uc.Register(context.Background(), "u-1", MechanicProfileInput{BusinessName: "Joe's Garage", Phone: "0400000000"})
		if !errors.Is(err, ErrMechanicProfileExists) {
			t.Fatalf("expected ErrMechanicProfileExists, got %v", err)
		}
	})

	t.Run("register starts with an empty rating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewMechanicUseCase(mechanics)

		mechanics.EXPECT().GetByUserID(gomock.Any(), "u-1").Return(entities.Mechanic{}, nil)
		mechanics.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Mechanic{})).DoAndReturn(
			func(_ context.Context, m entities.Mechanic) (entities.Mechanic, error) {
				if m.ID == "" || m.UserID != "u-1" {
					t.Fatalf("unexpected mechanic: %+v", m)
				}
				if m.Rating != (entities.Rating{}) {
					t.Fatalf("expected zero rating, got %+v", m.Rating)
				}
				return m, nil
			},
		)

		m, err := uc.Register(context.Background(), "u-1", MechanicProfileInput{BusinessName: " Joe's Garage ", Phone: "0400000000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.BusinessName != "Joe's Garage" {
			t.Fatalf("expected trimmed name, got %q", m.BusinessName)
		}
	})
}

func TestMechanicUseCase_Update(t *testing.T) {
	stored := entities.Mechanic{
		ID:           "mech-1",
		UserID:       "u-1",
		BusinessName: "Joe's Garage",
		Phone:        "0400000000",
		Rating:       entities.Rating{Average: 4.5, Count: 10},
	}

	t.Run("only the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewMechanicUseCase(mechanics)

		mechanics.EXPECT().GetByID(gomock.Any(), "mech-1").Return(stored, nil)

		_, err := uc.Update(context.Background(), "u-2", "mech-1", MechanicProfileInput{Phone: "0411111111"})
		if !errors.Is(err, ErrMechanicForbidden) {
			t.Fatalf("expected ErrMechanicForbidden, got %v", err)
		}
	})

	t.Run("rating survives a profile update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewMechanicUseCase(mechanics)

		mechanics.EXPECT().GetByID(gomock.Any(), "mech-1").Return(stored, nil)
		mechanics.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Mechanic{})).DoAndReturn(
			func(_ context.Context, m entities.Mechanic) (entities.Mechanic, error) {
				if m.Phone != "0411111111" || m.BusinessName != "Joe's Garage" {
					t.Fatalf("unexpected patched mechanic: %+v", m)
				}
				if m.Rating.Average != 4.5 || m.Rating.Count != 10 {
					t.Fatalf("rating should be untouched: %+v", m.Rating)
				}
				return m, nil
			},
		)

		if _, err := uc.Update(context.Background(), "u-1", "mech-1", MechanicProfileInput{Phone: "0411111111"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMechanicUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
	uc := NewMechanicUseCase(mechanics)

	filter := interfaces.MechanicFilter{ServiceType: "brakes", Suburb: "Newtown", Limit: 10}
	mechanics.EXPECT().List(gomock.Any(), filter).Return([]entities.Mechanic{{ID: "mech-1"}}, nil)

	got, err := uc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "mech-1" {
		t.Fatalf("unexpected mechanics: %+v", got)
	}
}
