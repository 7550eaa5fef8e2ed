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

func newReviewUseCaseForTest(ctrl *gomock.Controller) (*ReviewUseCase, *mock_interfaces.MockIReviewRepository, *mock_interfaces.MockIBookingRepository, *mock_interfaces.MockIMechanicRepository) {
	reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
	bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
	mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
	uc := NewReviewUseCase(reviews, bookings, mechanics, nil, zap.NewNop().Sugar())
	return uc, reviews, bookings, mechanics
}

func TestReviewUseCase_Create(t *testing.T) {
	completed := entities.Booking{
		ID:         "b-1",
		UserID:     "user-1",
		MechanicID: "mech-1",
		Status:     entities.BookingStatusCompleted,
	}

	t.Run("rating out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newReviewUseCaseForTest(ctrl)

		_, err := uc.Create(context.Background(), "user-1", CreateReviewInput{BookingID: "b-1", Rating: 6})
		if !errors.Is(err, ErrInvalidReviewInput) {
			t.Fatalf("expected ErrInvalidReviewInput, got %v", err)
		}
	})

	t.Run("only the booking owner may review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, bookings, _ := newReviewUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(completed, nil)

		_, err := uc.Create(context.Background(), "other-user", CreateReviewInput{BookingID: "b-1", Rating: 5})
		if !errors.Is(err, ErrReviewForbidden) {
			t.Fatalf("expected ErrReviewForbidden, got %v", err)
		}
	})

	t.Run("booking must be completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, bookings, _ := newReviewUseCaseForTest(ctrl)

		confirmed := completed
		confirmed.Status = entities.BookingStatusConfirmed
		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(confirmed, nil)

		_, err := uc.Create(context.Background(), "user-1", CreateReviewInput{BookingID: "b-1", Rating: 5})
		if !errors.Is(err, ErrReviewBookingNotCompleted) {
			t.Fatalf("expected ErrReviewBookingNotCompleted, got %v", err)
		}
	})

	t.Run("duplicate caught by pre-read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, reviews, bookings, _ := newReviewUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(completed, nil)
		reviews.EXPECT().GetByBookingID(gomock.Any(), "b-1").Return(entities.Review{ID: "rv-existing"}, nil)

		_, err := uc.Create(context.Background(), "user-1", CreateReviewInput{BookingID: "b-1", Rating: 5})
		if !errors.Is(err, ErrReviewExists) {
			t.Fatalf("expected ErrReviewExists, got %v", err)
		}
	})

	t.Run("duplicate caught by conditional put", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, reviews, bookings, _ := newReviewUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(completed, nil)
		reviews.EXPECT().GetByBookingID(gomock.Any(), "b-1").Return(entities.Review{}, nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Review{}, interfaces.ErrConditionFailed)

		_, err := uc.Create(context.Background(), "user-1", CreateReviewInput{BookingID: "b-1", Rating: 5})
		if !errors.Is(err, ErrReviewExists) {
			t.Fatalf("expected ErrReviewExists, got %v", err)
		}
	})

	t.Run("create recomputes the mechanic rating to one decimal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, reviews, bookings, mechanics := newReviewUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(completed, nil)
		reviews.EXPECT().GetByBookingID(gomock.Any(), "b-1").Return(entities.Review{}, nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Review{})).DoAndReturn(
			func(_ context.Context, rv entities.Review) (entities.Review, error) {
				if rv.MechanicID != "mech-1" || !rv.Verified {
					t.Fatalf("unexpected review: %+v", rv)
				}
				return rv, nil
			},
		)
		// 5 + 4 + 4 over three reviews averages 4.333..., stored as 4.3.
		reviews.EXPECT().ListByMechanicID(gomock.Any(), "mech-1").Return([]entities.Review{
			{Rating: 5}, {Rating: 4}, {Rating: 4},
		}, nil)
		mechanics.EXPECT().SetRating(gomock.Any(), "mech-1", entities.Rating{Average: 4.3, Count: 3}).
			Return(entities.Mechanic{ID: "mech-1"}, nil)
		mechanics.EXPECT().GetByID(gomock.Any(), "mech-1").Return(entities.Mechanic{ID: "mech-1"}, nil)

		rv, err := uc.Create(context.Background(), "user-1", CreateReviewInput{BookingID: "b-1", Rating: 5, Comment: " great "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rv.Comment != "great" {
			t.Fatalf("expected trimmed comment, got %q", rv.Comment)
		}
	})
}

func TestReviewUseCase_MechanicRespond(t *testing.T) {
	t.Run("only the reviewed mechanic may respond", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, reviews, _, mechanics := newReviewUseCaseForTest(ctrl)

		reviews.EXPECT().GetByID(gomock.Any(), "rv-1").Return(entities.Review{ID: "rv-1", MechanicID: "mech-1"}, nil)
		mechanics.EXPECT().GetByUserID(gomock.Any(), "other-user").Return(entities.Mechanic{ID: "mech-2"}, nil)

		_, err := uc.MechanicRespond(context.Background(), "other-user", "rv-1", "thanks")
		if !errors.Is(err, ErrReviewForbidden) {
			t.Fatalf("expected ErrReviewForbidden, got %v", err)
		}
	})

	t.Run("respond success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, reviews, _, mechanics := newReviewUseCaseForTest(ctrl)

		reviews.EXPECT().GetByID(gomock.Any(), "rv-1").Return(entities.Review{ID: "rv-1", MechanicID: "mech-1"}, nil)
		mechanics.EXPECT().GetByUserID(gomock.Any(), "mech-user").Return(entities.Mechanic{ID: "mech-1"}, nil)
		reviews.EXPECT().SetMechanicResponse(gomock.Any(), "rv-1", "thanks").
			Return(entities.Review{ID: "rv-1", MechanicResponse: "thanks"}, nil)

		rv, err := uc.MechanicRespond(context.Background(), "mech-user", "rv-1", " thanks ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rv.MechanicResponse != "thanks" {
			t.Fatalf("unexpected response: %q", rv.MechanicResponse)
		}
	})
}

func TestReviewUseCase_VoteHelpful(t *testing.T) {
	t.Run("missing review maps condition failure to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, reviews, _, _ := newReviewUseCaseForTest(ctrl)

		reviews.EXPECT().IncrementHelpfulVotes(gomock.Any(), "rv-1").Return(entities.Review{}, interfaces.ErrConditionFailed)

		_, err := uc.VoteHelpful(context.Background(), "rv-1")
		if !errors.Is(err, ErrReviewNotFound) {
			t.Fatalf("expected ErrReviewNotFound, got %v", err)
		}
	})

	t.Run("vote success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, reviews, _, _ := newReviewUseCaseForTest(ctrl)

		reviews.EXPECT().IncrementHelpfulVotes(gomock.Any(), "rv-1").Return(entities.Review{ID: "rv-1", HelpfulVotes: 3}, nil)

		rv, err := uc.VoteHelpful(context.Background(), "rv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rv.HelpfulVotes != 3 {
			t.Fatalf("expected 3 votes, got %d", rv.HelpfulVotes)
		}
	})
}
