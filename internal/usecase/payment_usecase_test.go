package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"
	mock_interfaces "mechfinder/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newPaymentUseCaseForTest(ctrl *gomock.Controller) (*PaymentUseCase, *mock_interfaces.MockIPaymentRepository, *mock_interfaces.MockIBookingRepository, *mock_interfaces.MockIPaymentGateway) {
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(payments, bookings, gateway, zap.NewNop().Sugar())
	return uc, payments, bookings, gateway
}

func payableBooking() entities.Booking {
	return entities.Booking{
		ID:            "b-1",
		UserID:        "user-1",
		ServiceType:   "Brake service",
		Price:         "200",
		Status:        entities.BookingStatusConfirmed,
		PaymentStatus: entities.PaymentStatusPending,
	}
}

func validCardPayload() json.RawMessage {
	return json.RawMessage(`{"payment_method_id":"visa","token":"tok-1","payer":{"email":"jo@example.com"}}`)
}

func TestPaymentUseCase_PayBooking(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")

	t.Run("not the booking owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, bookings, _ := newPaymentUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(payableBooking(), nil)

		_, err := uc.PayBooking(context.Background(), "other-user", "b-1", validCardPayload())
		if !errors.Is(err, ErrBookingForbidden) {
			t.Fatalf("expected ErrBookingForbidden, got %v", err)
		}
	})

	t.Run("cancelled booking cannot be paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, bookings, _ := newPaymentUseCaseForTest(ctrl)

		b := payableBooking()
		b.Status = entities.BookingStatusCancelled
		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		_, err := uc.PayBooking(context.Background(), "user-1", "b-1", validCardPayload())
		if !errors.Is(err, ErrBookingNotPayable) {
			t.Fatalf("expected ErrBookingNotPayable, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, bookings, _ := newPaymentUseCaseForTest(ctrl)

		b := payableBooking()
		b.PaymentStatus = entities.PaymentStatusPaid
		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		_, err := uc.PayBooking(context.Background(), "user-1", "b-1", validCardPayload())
		if !errors.Is(err, ErrBookingAlreadyPaid) {
			t.Fatalf("expected ErrBookingAlreadyPaid, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, bookings, _ := newPaymentUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(payableBooking(), nil)

		_, err := uc.PayBooking(context.Background(), "user-1", "b-1", json.RawMessage(`{"payer":{"email":"jo@example.com"}}`))
		if !errors.Is(err, ErrInvalidPaymentInput) {
			t.Fatalf("expected ErrInvalidPaymentInput, got %v", err)
		}
	})

	t.Run("success pins amount to the booking price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, payments, bookings, gateway := newPaymentUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(payableBooking(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("gateway payload not valid JSON: %v", err)
				}
				if req["transaction_amount"] != float64(200) {
					t.Fatalf("unexpected transaction_amount: %v", req["transaction_amount"])
				}
				if req["external_reference"] != "b-1" {
					t.Fatalf("unexpected external_reference: %v", req["external_reference"])
				}
				return "mp-100", "approved", json.RawMessage(`{"id":"mp-100","status":"approved"}`), nil
			},
		)
		payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "mp-100" || p.BookingID != "b-1" {
					t.Fatalf("unexpected payment record: %+v", p)
				}
				if p.Status != entities.BookingPaymentStatusApproved {
					t.Fatalf("unexpected payment status: %s", p.Status)
				}
				return p, nil
			},
		)
		bookings.EXPECT().UpdatePaymentStatusIf(gomock.Any(), "b-1", entities.PaymentStatusPending, entities.PaymentStatusPaid).
			Return(entities.Booking{ID: "b-1", PaymentStatus: entities.PaymentStatusPaid}, nil)

		p, err := uc.PayBooking(context.Background(), "user-1", "b-1", validCardPayload())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "mp-100" {
			t.Fatalf("unexpected payment id: %q", p.ID)
		}
	})

	t.Run("concurrent double pay loses the conditional write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, payments, bookings, gateway := newPaymentUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(payableBooking(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-101", "approved", json.RawMessage(`{"id":"mp-101"}`), nil)
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		bookings.EXPECT().UpdatePaymentStatusIf(gomock.Any(), "b-1", entities.PaymentStatusPending, entities.PaymentStatusPaid).
			Return(entities.Booking{}, interfaces.ErrConditionFailed)

		_, err := uc.PayBooking(context.Background(), "user-1", "b-1", validCardPayload())
		if !errors.Is(err, ErrBookingAlreadyPaid) {
			t.Fatalf("expected ErrBookingAlreadyPaid, got %v", err)
		}
	})

	t.Run("mock mode skips the provider", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, payments, bookings, _ := newPaymentUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(payableBooking(), nil)
		payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID == "" {
					t.Fatal("expected fabricated provider payment id")
				}
				if p.ProviderPayload["status"] != "approved" {
					t.Fatalf("unexpected provider payload: %+v", p.ProviderPayload)
				}
				return p, nil
			},
		)
		bookings.EXPECT().UpdatePaymentStatusIf(gomock.Any(), "b-1", entities.PaymentStatusPending, entities.PaymentStatusPaid).
			Return(entities.Booking{ID: "b-1", PaymentStatus: entities.PaymentStatusPaid}, nil)

		if _, err := uc.PayBooking(context.Background(), "user-1", "b-1", json.RawMessage("not json")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_RefundBooking(t *testing.T) {
	t.Run("unpaid booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, bookings, _ := newPaymentUseCaseForTest(ctrl)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(payableBooking(), nil)

		_, err := uc.RefundBooking(context.Background(), "user-1", "b-1")
		if !errors.Is(err, ErrBookingNotPaid) {
			t.Fatalf("expected ErrBookingNotPaid, got %v", err)
		}
	})

	t.Run("paid booking is refunded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, bookings, _ := newPaymentUseCaseForTest(ctrl)

		b := payableBooking()
		b.PaymentStatus = entities.PaymentStatusPaid
		refunded := b
		refunded.PaymentStatus = entities.PaymentStatusRefunded
		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		bookings.EXPECT().UpdatePaymentStatusIf(gomock.Any(), "b-1", entities.PaymentStatusPaid, entities.PaymentStatusRefunded).
			Return(refunded, nil)

		got, err := uc.RefundBooking(context.Background(), "user-1", "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusRefunded {
			t.Fatalf("expected refunded, got %s", got.PaymentStatus)
		}
	})

	t.Run("refund race maps to not paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, bookings, _ := newPaymentUseCaseForTest(ctrl)

		b := payableBooking()
		b.PaymentStatus = entities.PaymentStatusPaid
		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		bookings.EXPECT().UpdatePaymentStatusIf(gomock.Any(), "b-1", entities.PaymentStatusPaid, entities.PaymentStatusRefunded).
			Return(entities.Booking{}, interfaces.ErrConditionFailed)

		_, err := uc.RefundBooking(context.Background(), "user-1", "b-1")
		if !errors.Is(err, ErrBookingNotPaid) {
			t.Fatalf("expected ErrBookingNotPaid, got %v", err)
		}
	})
}

func TestPaymentUseCase_ListByBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, payments, bookings, _ := newPaymentUseCaseForTest(ctrl)

	bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(payableBooking(), nil)
	payments.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return([]entities.Payment{{ID: "mp-100"}}, nil)

	got, err := uc.ListByBooking(context.Background(), "user-1", "b-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "mp-100" {
		t.Fatalf("unexpected payments: %+v", got)
	}
}
