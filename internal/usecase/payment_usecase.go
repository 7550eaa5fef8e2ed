package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentInput            = errors.New("invalid payment input")
	ErrBookingAlreadyPaid             = errors.New("booking is already paid")
	ErrBookingNotPaid                 = errors.New("booking has not been paid")
	ErrBookingNotPayable              = errors.New("booking cannot be paid in its current status")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPaymentUseCase processes booking payments through the external gateway and
// keeps the booking payment status in step with the persisted payment record.
type IPaymentUseCase interface {
	PayBooking(ctx context.Context, actorUserID, bookingID string, payload json.RawMessage) (entities.Payment, error)
	RefundBooking(ctx context.Context, actorUserID, bookingID string) (entities.Booking, error)
	ListByBooking(ctx context.Context, actorUserID, bookingID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	payments interfaces.IPaymentRepository
	bookings interfaces.IBookingRepository
	gateway  interfaces.IPaymentGateway
	log      *zap.SugaredLogger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	payments interfaces.IPaymentRepository,
	bookings interfaces.IBookingRepository,
	gateway interfaces.IPaymentGateway,
	log *zap.SugaredLogger,
) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, bookings: bookings, gateway: gateway, log: log}
}

// PayBooking charges the booking price through the provider and flips the
// booking's payment status Pending -> Paid. The flip is a conditional write,
// so a concurrent double-pay loses and surfaces as already-paid.
func (u *PaymentUseCase) PayBooking(ctx context.Context, actorUserID, bookingID string, payload json.RawMessage) (entities.Payment, error) {
	u.log.Infow("booking payment start", "booking_id", bookingID, "payload_len", len(payload))
	mockMode := isPaymentGatewayMockEnabled()

	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			return entities.Payment{}, ErrInvalidPaymentInput
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	booking, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Payment{}, err
	}
	if booking.ID == "" {
		return entities.Payment{}, ErrBookingNotFound
	}
	if booking.UserID != actorUserID {
		return entities.Payment{}, ErrBookingForbidden
	}
	if booking.Status == entities.BookingStatusCancelled {
		return entities.Payment{}, ErrBookingNotPayable
	}
	if booking.PaymentStatus != entities.PaymentStatusPending {
		return entities.Payment{}, ErrBookingAlreadyPaid
	}

	amount, err := strconv.ParseFloat(booking.Price, 64)
	if err != nil || amount <= 0 {
		return entities.Payment{}, ErrBookingNotPayable
	}

	// Link the provider payment back to the booking; the stored booking price
	// is the source of truth for the amount.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.Payment{}, ErrInvalidPaymentInput
		}
		if !mockMode {
			ensurePayerDefaults(reqMap)
			if !hasPayer(reqMap) {
				return entities.Payment{}, ErrInvalidPaymentInput
			}
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = bookingID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Booking %s (%s)", bookingID, booking.ServiceType)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		u.log.Infow("payment gateway mock mode, skipping provider call", "booking_id", bookingID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		_ = json.Unmarshal(payload, &mockResp)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_approved"] = now
		if _, ok := mockResp["external_reference"]; !ok {
			mockResp["external_reference"] = bookingID
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.Payment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, _, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			u.log.Errorw("payment gateway failed", "booking_id", bookingID, "err", err)
			return entities.Payment{}, classifyGatewayError(err)
		}
	}
	u.log.Infow("payment gateway success", "booking_id", bookingID, "provider_payment_id", providerPaymentID)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warnw("provider response unmarshal failed", "booking_id", bookingID, "err", err)
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		BookingID:          bookingID,
		Date:               time.Now().UTC(),
		Status:             entities.BookingPaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.payments.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}

	if _, err := u.bookings.UpdatePaymentStatusIf(ctx, bookingID, entities.PaymentStatusPending, entities.PaymentStatusPaid); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			u.log.Warnw("booking payment status raced, payment record kept", "booking_id", bookingID, "payment_id", created.ID)
			return entities.Payment{}, ErrBookingAlreadyPaid
		}
		return entities.Payment{}, err
	}

	u.log.Infow("booking paid", "booking_id", bookingID, "payment_id", created.ID)
	return created, nil
}

func (u *PaymentUseCase) RefundBooking(ctx context.Context, actorUserID, bookingID string) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidPaymentInput
	}

	booking, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if booking.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if booking.UserID != actorUserID {
		return entities.Booking{}, ErrBookingForbidden
	}
	if booking.PaymentStatus != entities.PaymentStatusPaid {
		return entities.Booking{}, ErrBookingNotPaid
	}

	updated, err := u.bookings.UpdatePaymentStatusIf(ctx, bookingID, entities.PaymentStatusPaid, entities.PaymentStatusRefunded)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Booking{}, ErrBookingNotPaid
		}
		return entities.Booking{}, err
	}

	u.log.Infow("booking refunded", "booking_id", bookingID)
	return updated, nil
}

func (u *PaymentUseCase) ListByBooking(ctx context.Context, actorUserID, bookingID string) ([]entities.Payment, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidPaymentInput
	}

	booking, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ID == "" {
		return nil, ErrBookingNotFound
	}
	if booking.UserID != actorUserID {
		return nil, ErrBookingForbidden
	}

	return u.payments.ListByBookingID(ctx, bookingID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			// Sandbox-safe fallback from the Mercado Pago examples.
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
