package handlers

import (
	"errors"
	"net/http"

	"mechfinder/internal/domain/entities"

	request "mechfinder/internal/adapter/http/dto/request"
	response "mechfinder/internal/adapter/http/dto/response"
	"mechfinder/internal/adapter/http/middleware"
	"mechfinder/internal/usecase"
	"mechfinder/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler covers the booking lifecycle for owners and mechanics.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// Create godoc
// @Summary Create a booking directly, without a quote
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body request.BookingRequest true "Booking"
// @Success 201 {object} response.BookingResponse
// @Router /v1/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.Create(c.Request.Context(), middleware.UserID(c), payload.ToInput())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.NewSuccess("Booking created", response.FromBooking(booking)))
}

// ListMine godoc
// @Summary List the authenticated user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.BookingResponse
// @Router /v1/bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	bookings, err := h.usecase.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Bookings retrieved", response.FromBookings(bookings)))
}

// ListForMechanic godoc
// @Summary List bookings assigned to the authenticated mechanic
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.BookingResponse
// @Router /v1/bookings/assigned [get]
func (h *BookingHandler) ListForMechanic(c *gin.Context) {
	bookings, err := h.usecase.ListByMechanicUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Bookings retrieved", response.FromBookings(bookings)))
}

// GetByID godoc
// @Summary Fetch a booking visible to the caller
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Success 200 {object} response.BookingResponse
// @Router /v1/bookings/{id} [get]
func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, err := h.usecase.GetByID(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Booking retrieved", response.FromBooking(booking)))
}

// Update godoc
// @Summary Update a booking's schedule, notes or status (owner)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Param payload body request.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} response.BookingResponse
// @Router /v1/bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	var payload request.UpdateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Booking updated", response.FromBooking(booking)))
}

// UpdateStatus godoc
// @Summary Move a booking through its lifecycle (mechanic)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Param payload body request.BookingStatusRequest true "Next status"
// @Success 200 {object} response.BookingResponse
// @Router /v1/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var payload request.BookingStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.UpdateStatusByMechanic(c.Request.Context(), middleware.UserID(c), c.Param("id"), entities.BookingStatus(payload.Status))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Booking status updated", response.FromBooking(booking)))
}

// Delete godoc
// @Summary Cancel and remove a booking (owner)
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Success 204
// @Router /v1/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingInput):
		return pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this booking", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBookingInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Booking cannot move to the requested status", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
