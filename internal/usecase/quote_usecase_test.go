package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"
	mock_interfaces "mechfinder/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newQuoteUseCaseForTest(ctrl *gomock.Controller) (*QuoteUseCase, *mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockIMechanicRepository, *mock_interfaces.MockIVehicleRepository) {
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
	vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
	uc := NewQuoteUseCase(quotes, mechanics, vehicles, nil, zap.NewNop().Sugar())
	return uc, quotes, mechanics, vehicles
}

func TestQuoteUseCase_RequestQuote(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newQuoteUseCaseForTest(ctrl)

		_, err := uc.RequestQuote(context.Background(), "user-1", RequestQuoteInput{MechanicID: "  ", ServiceType: "service"})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("mechanic not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, mechanics, _ := newQuoteUseCaseForTest(ctrl)

		mechanics.EXPECT().GetByID(gomock.Any(), "mech-1").Return(entities.Mechanic{}, nil)

		_, err := uc.RequestQuote(context.Background(), "user-1", RequestQuoteInput{MechanicID: "mech-1", ServiceType: "service"})
		if !errors.Is(err, ErrMechanicNotFound) {
			t.Fatalf("expected ErrMechanicNotFound, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, mechanics, _ := newQuoteUseCaseForTest(ctrl)

		mechanics.EXPECT().GetByID(gomock.Any(), "mech-1").Return(entities.Mechanic{ID: "mech-1", UserID: "mech-user"}, nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.UserID != "user-1" || q.MechanicID != "mech-1" {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.Status != entities.QuoteStatusPending {
					t.Fatalf("expected pending status, got %s", q.Status)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)

		q, err := uc.RequestQuote(context.Background(), "user-1", RequestQuoteInput{
			MechanicID:  " mech-1 ",
			ServiceType: " Brake service ",
			Description: "squealing",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ServiceType != "Brake service" {
			t.Fatalf("expected trimmed service type, got %q", q.ServiceType)
		}
	})
}

func TestQuoteUseCase_RequestQuotesBatch(t *testing.T) {
	t.Run("empty mechanic list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newQuoteUseCaseForTest(ctrl)

		_, err := uc.RequestQuotesBatch(context.Background(), "user-1", RequestQuotesBatchInput{ServiceType: "service"})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("unknown mechanic aborts the whole batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, mechanics, _ := newQuoteUseCaseForTest(ctrl)

		mechanics.EXPECT().GetByID(gomock.Any(), "mech-1").Return(entities.Mechanic{ID: "mech-1"}, nil)
		mechanics.EXPECT().GetByID(gomock.Any(), "mech-2").Return(entities.Mechanic{}, nil)

		_, err := uc.RequestQuotesBatch(context.Background(), "user-1", RequestQuotesBatchInput{
			MechanicIDs: []string{"mech-1", "mech-2"},
			ServiceType: "service",
		})
		if !errors.Is(err, ErrMechanicNotFound) {
			t.Fatalf("expected ErrMechanicNotFound, got %v", err)
		}
	})

	t.Run("fan-out creates one pending quote per mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, mechanics, _ := newQuoteUseCaseForTest(ctrl)

		mechanics.EXPECT().GetByID(gomock.Any(), "mech-1").Return(entities.Mechanic{ID: "mech-1"}, nil)
		mechanics.EXPECT().GetByID(gomock.Any(), "mech-2").Return(entities.Mechanic{ID: "mech-2"}, nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		).Times(2)

		out, err := uc.RequestQuotesBatch(context.Background(), "user-1", RequestQuotesBatchInput{
			MechanicIDs: []string{"mech-1", "mech-2"},
			ServiceType: "service",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(out))
		}
		if out[0].MechanicID != "mech-1" || out[1].MechanicID != "mech-2" {
			t.Fatalf("unexpected mechanics: %+v", out)
		}
	})
}

func TestQuoteUseCase_RespondToQuote(t *testing.T) {
	t.Run("amount must be positive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newQuoteUseCaseForTest(ctrl)

		_, err := uc.RespondToQuote(context.Background(), "mech-user", "q-1", QuoteResponseInput{Amount: 0})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("only the addressed mechanic may respond", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, mechanics, _ := newQuoteUseCaseForTest(ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", MechanicID: "mech-1", Status: entities.QuoteStatusPending}, nil)
		mechanics.EXPECT().GetByUserID(gomock.Any(), "other-user").Return(entities.Mechanic{ID: "mech-2"}, nil)

		_, err := uc.RespondToQuote(context.Background(), "other-user", "q-1", QuoteResponseInput{Amount: 100})
		if !errors.Is(err, ErrQuoteForbidden) {
			t.Fatalf("expected ErrQuoteForbidden, got %v", err)
		}
	})

	t.Run("already responded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, mechanics, _ := newQuoteUseCaseForTest(ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", MechanicID: "mech-1", Status: entities.QuoteStatusQuoted}, nil)
		mechanics.EXPECT().GetByUserID(gomock.Any(), "mech-user").Return(entities.Mechanic{ID: "mech-1"}, nil)

		_, err := uc.RespondToQuote(context.Background(), "mech-user", "q-1", QuoteResponseInput{Amount: 100})
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("lost conditional write maps to not-pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, mechanics, _ := newQuoteUseCaseForTest(ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", MechanicID: "mech-1", Status: entities.QuoteStatusPending}, nil)
		mechanics.EXPECT().GetByUserID(gomock.Any(), "mech-user").Return(entities.Mechanic{ID: "mech-1"}, nil)
		quotes.EXPECT().SetResponseIf(gomock.Any(), "q-1", entities.QuoteStatusPending, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Quote{}, interfaces.ErrConditionFailed)

		_, err := uc.RespondToQuote(context.Background(), "mech-user", "q-1", QuoteResponseInput{Amount: 100})
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("defaults currency when blank", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, mechanics, _ := newQuoteUseCaseForTest(ctrl)

		validUntil := time.Now().Add(48 * time.Hour)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", UserID: "user-1", MechanicID: "mech-1", Status: entities.QuoteStatusPending}, nil)
		mechanics.EXPECT().GetByUserID(gomock.Any(), "mech-user").Return(entities.Mechanic{ID: "mech-1"}, nil)
		quotes.EXPECT().SetResponseIf(gomock.Any(), "q-1", entities.QuoteStatusPending,
			entities.QuotedPrice{Amount: 150, Currency: entities.DefaultQuoteCurrency}, "2 hours", validUntil, "notes").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusQuoted}, nil)

		q, err := uc.RespondToQuote(context.Background(), "mech-user", "q-1", QuoteResponseInput{
			Amount:            150,
			EstimatedDuration: " 2 hours ",
			ValidUntil:        validUntil,
			Notes:             " notes ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusQuoted {
			t.Fatalf("expected quoted, got %s", q.Status)
		}
	})
}

func TestQuoteUseCase_AcceptQuote(t *testing.T) {
	quoted := entities.Quote{
		ID:          "q-1",
		UserID:      "user-1",
		MechanicID:  "mech-1",
		VehicleID:   "veh-1",
		ServiceType: "service",
		Status:      entities.QuoteStatusQuoted,
		QuotedPrice: entities.QuotedPrice{Amount: 200, Currency: entities.DefaultQuoteCurrency},
	}

	t.Run("only the requesting user may accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, _, _ := newQuoteUseCaseForTest(ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoted, nil)

		_, _, err := uc.AcceptQuote(context.Background(), "someone-else", "q-1", AcceptQuoteInput{})
		if !errors.Is(err, ErrQuoteForbidden) {
			t.Fatalf("expected ErrQuoteForbidden, got %v", err)
		}
	})

	t.Run("pending quote is not acceptable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, _, _ := newQuoteUseCaseForTest(ctrl)

		pending := quoted
		pending.Status = entities.QuoteStatusPending
		pending.QuotedPrice = entities.QuotedPrice{}
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pending, nil)

		_, _, err := uc.AcceptQuote(context.Background(), "user-1", "q-1", AcceptQuoteInput{})
		if !errors.Is(err, ErrQuoteNotAcceptable) {
			t.Fatalf("expected ErrQuoteNotAcceptable, got %v", err)
		}
	})

	t.Run("losing the transaction maps to not-acceptable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, mechanics, vehicles := newQuoteUseCaseForTest(ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoted, nil)
		mechanics.EXPECT().GetByID(gomock.Any(), "mech-1").Return(entities.Mechanic{ID: "mech-1"}, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		quotes.EXPECT().AcceptWithBooking(gomock.Any(), "q-1", gomock.Any()).
			Return(interfaces.ErrConditionFailed)

		_, _, err := uc.AcceptQuote(context.Background(), "user-1", "q-1", AcceptQuoteInput{})
		if !errors.Is(err, ErrQuoteNotAcceptable) {
			t.Fatalf("expected ErrQuoteNotAcceptable, got %v", err)
		}
	})

	t.Run("transaction failure leaves the quote untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, mechanics, vehicles := newQuoteUseCaseForTest(ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoted, nil)
		mechanics.EXPECT().GetByID(gomock.Any(), "mech-1").Return(entities.Mechanic{ID: "mech-1"}, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1", Make: "Toyota", Model: "Corolla"}, nil)
		quotes.EXPECT().AcceptWithBooking(gomock.Any(), "q-1", gomock.Any()).Return(errors.New("db"))

		_, _, err := uc.AcceptQuote(context.Background(), "user-1", "q-1", AcceptQuoteInput{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("accept writes quote flip and booking together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, mechanics, vehicles := newQuoteUseCaseForTest(ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoted, nil)
		mechanics.EXPECT().GetByID(gomock.Any(), "mech-1").Return(entities.Mechanic{ID: "mech-1", UserID: "mech-user"}, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1", Make: "Toyota", Model: "Corolla"}, nil)
		quotes.EXPECT().AcceptWithBooking(gomock.Any(), "q-1", gomock.AssignableToTypeOf(entities.Booking{})).DoAndReturn(
			func(_ context.Context, _ string, b entities.Booking) error {
				if b.QuoteID != "q-1" || b.Status != entities.BookingStatusConfirmed {
					t.Fatalf("unexpected booking: %+v", b)
				}
				if b.Price != "200" {
					t.Fatalf("expected price snapshot 200, got %q", b.Price)
				}
				if b.VehicleMake != "Toyota" || b.VehicleModel != "Corolla" {
					t.Fatalf("expected vehicle snapshot, got %+v", b)
				}
				return nil
			},
		)

		booking, q, err := uc.AcceptQuote(context.Background(), "user-1", "q-1", AcceptQuoteInput{Date: "2026-09-15", Time: "10:30"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusAccepted {
			t.Fatalf("expected accepted quote, got %s", q.Status)
		}
		if booking.Date != "2026-09-15" || booking.Time != "10:30" {
			t.Fatalf("expected requested schedule, got %s %s", booking.Date, booking.Time)
		}
	})
}

func TestQuoteUseCase_RejectQuote(t *testing.T) {
	t.Run("terminal quote cannot be rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, _, _ := newQuoteUseCaseForTest(ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", UserID: "user-1", Status: entities.QuoteStatusAccepted}, nil)

		_, err := uc.RejectQuote(context.Background(), "user-1", "q-1")
		if !errors.Is(err, ErrQuoteTerminal) {
			t.Fatalf("expected ErrQuoteTerminal, got %v", err)
		}
	})

	t.Run("owning mechanic may reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, mechanics, _ := newQuoteUseCaseForTest(ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", UserID: "user-1", MechanicID: "mech-1", Status: entities.QuoteStatusPending}, nil)
		mechanics.EXPECT().GetByUserID(gomock.Any(), "mech-user").Return(entities.Mechanic{ID: "mech-1"}, nil)
		quotes.EXPECT().UpdateStatusIf(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusRejected).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusRejected}, nil)

		q, err := uc.RejectQuote(context.Background(), "mech-user", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusRejected {
			t.Fatalf("expected rejected, got %s", q.Status)
		}
	})
}

func TestQuoteUseCase_CompareQuotes(t *testing.T) {
	t.Run("foreign quotes are filtered, not rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, mechanics, _ := newQuoteUseCaseForTest(ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID: "q-1", UserID: "user-1", MechanicID: "mech-1",
			Status: entities.QuoteStatusQuoted, QuotedPrice: entities.QuotedPrice{Amount: 180},
		}, nil)
		quotes.EXPECT().GetByID(gomock.Any(), "q-2").Return(entities.Quote{
			ID: "q-2", UserID: "someone-else", MechanicID: "mech-2",
			Status: entities.QuoteStatusQuoted, QuotedPrice: entities.QuotedPrice{Amount: 90},
		}, nil)
		quotes.EXPECT().GetByID(gomock.Any(), "q-3").Return(entities.Quote{
			ID: "q-3", UserID: "user-1", MechanicID: "mech-3",
			Status: entities.QuoteStatusQuoted, QuotedPrice: entities.QuotedPrice{Amount: 150},
		}, nil)
		mechanics.EXPECT().GetByID(gomock.Any(), "mech-1").Return(entities.Mechanic{ID: "mech-1", Rating: entities.Rating{Average: 4.2}}, nil)
		mechanics.EXPECT().GetByID(gomock.Any(), "mech-3").Return(entities.Mechanic{ID: "mech-3", Rating: entities.Rating{Average: 4.8}}, nil)

		cmp, err := uc.CompareQuotes(context.Background(), "user-1", []string{"q-1", "q-2", "q-3"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmp.Total != 2 {
			t.Fatalf("expected 2 visible quotes, got %d", cmp.Total)
		}
		if cmp.LowestQuotedPrice != 150 {
			t.Fatalf("expected lowest visible price 150, got %v", cmp.LowestQuotedPrice)
		}
		if cmp.HighestMechanicRating != 4.8 {
			t.Fatalf("expected highest rating 4.8, got %v", cmp.HighestMechanicRating)
		}
		if cmp.CountByStatus[entities.QuoteStatusQuoted] != 2 {
			t.Fatalf("unexpected status counts: %+v", cmp.CountByStatus)
		}
	})

	t.Run("nothing visible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, quotes, _, _ := newQuoteUseCaseForTest(ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.CompareQuotes(context.Background(), "user-1", []string{"q-1"})
		if !errors.Is(err, ErrNoQuotesFound) {
			t.Fatalf("expected ErrNoQuotesFound, got %v", err)
		}
	})
}
