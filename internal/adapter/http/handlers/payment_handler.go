package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	response "mechfinder/internal/adapter/http/dto/response"
	"mechfinder/internal/adapter/http/middleware"
	"mechfinder/internal/infrastructure/payments"
	"mechfinder/internal/usecase"
	"mechfinder/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles booking payments and refunds through the
// configured payment provider.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Pay godoc
// @Summary Pay for a booking
// @Description Charges the booking price through the payment provider. The body
// @Description is forwarded to the provider, either raw or wrapped in a
// @Description "payment_payload" envelope.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Success 200 {object} response.PaymentResponse
// @Router /v1/bookings/{id}/pay [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	bookingID := c.Param("id")
	payload, err := readPaymentPayload(c)
	if err != nil {
		if payments.MockEnabled(os.Getenv) {
			payload = json.RawMessage("{}")
		} else {
			appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	payment, err := h.usecase.PayBooking(c.Request.Context(), middleware.UserID(c), bookingID, payload)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Payment processed", response.FromPayment(payment)))
}

// Refund godoc
// @Summary Refund a paid booking
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Success 200 {object} response.BookingResponse
// @Router /v1/bookings/{id}/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	booking, err := h.usecase.RefundBooking(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Payment refunded", response.FromBooking(booking)))
}

// ListByBooking godoc
// @Summary List payments recorded for a booking
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Success 200 {array} response.PaymentResponse
// @Router /v1/bookings/{id}/payments [get]
func (h *PaymentHandler) ListByBooking(c *gin.Context) {
	paymentsList, err := h.usecase.ListByBooking(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Payments retrieved", response.FromPayments(paymentsList)))
}

// readPaymentPayload accepts either a raw provider payload or one wrapped in a
// "payment_payload" envelope. An empty body maps to an empty object so mock
// mode works with bare POSTs.
func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["payment_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("payment_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInput), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this payment provider test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this booking", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBookingNotPayable):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_PAYABLE", "Booking cannot be paid in its current state", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingAlreadyPaid):
		return pkg.NewDomainErrorSimple("BOOKING_ALREADY_PAID", "Booking has already been paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotPaid):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_PAID", "Booking has no payment to refund", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
