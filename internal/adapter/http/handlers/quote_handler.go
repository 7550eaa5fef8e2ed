package handlers

import (
	"errors"
	"net/http"

	request "mechfinder/internal/adapter/http/dto/request"
	response "mechfinder/internal/adapter/http/dto/response"
	"mechfinder/internal/adapter/http/middleware"
	"mechfinder/internal/usecase"
	"mechfinder/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler exposes the quote request and negotiation flow. Owners request
// and decide on quotes, mechanics respond to them.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Request godoc
// @Summary Request a quote from a mechanic
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body request.QuoteRequest true "Quote request"
// @Success 201 {object} response.QuoteResponse
// @Router /v1/quotes [post]
func (h *QuoteHandler) Request(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.RequestQuote(c.Request.Context(), middleware.UserID(c), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.NewSuccess("Quote requested", response.FromQuote(quote)))
}

// RequestBatch godoc
// @Summary Request the same quote from several mechanics at once
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body request.QuoteBatchRequest true "Batch quote request"
// @Success 201 {array} response.QuoteResponse
// @Router /v1/quotes/batch [post]
func (h *QuoteHandler) RequestBatch(c *gin.Context) {
	var payload request.QuoteBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quotes, err := h.usecase.RequestQuotesBatch(c.Request.Context(), middleware.UserID(c), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.NewSuccess("Quotes requested", response.FromQuotes(quotes)))
}

// Respond godoc
// @Summary Respond to a quote with a price (mechanic)
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote id"
// @Param payload body request.QuoteResponseRequest true "Quote response"
// @Success 200 {object} response.QuoteResponse
// @Router /v1/quotes/{id}/respond [patch]
func (h *QuoteHandler) Respond(c *gin.Context) {
	var payload request.QuoteResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.RespondToQuote(c.Request.Context(), middleware.UserID(c), c.Param("id"), input)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Quote responded", response.FromQuote(quote)))
}

// Accept godoc
// @Summary Accept a quoted price, creating a booking
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote id"
// @Param payload body request.AcceptQuoteRequest false "Preferred schedule"
// @Success 201 {object} response.AcceptQuoteResponse
// @Router /v1/quotes/{id}/accept [post]
func (h *QuoteHandler) Accept(c *gin.Context) {
	var payload request.AcceptQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	booking, quote, err := h.usecase.AcceptQuote(c.Request.Context(), middleware.UserID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.NewSuccess("Quote accepted", response.FromAcceptedQuote(quote, booking)))
}

// Reject godoc
// @Summary Reject a quote
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote id"
// @Success 200 {object} response.QuoteResponse
// @Router /v1/quotes/{id}/reject [post]
func (h *QuoteHandler) Reject(c *gin.Context) {
	quote, err := h.usecase.RejectQuote(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Quote rejected", response.FromQuote(quote)))
}

// Compare godoc
// @Summary Compare a set of the user's quotes side by side
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body request.CompareQuotesRequest true "Quote ids"
// @Success 200 {object} response.QuoteComparisonResponse
// @Router /v1/quotes/compare [post]
func (h *QuoteHandler) Compare(c *gin.Context) {
	var payload request.CompareQuotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	comparison, err := h.usecase.CompareQuotes(c.Request.Context(), middleware.UserID(c), payload.QuoteIDs)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Quotes compared", response.FromQuoteComparison(comparison)))
}

// ListMine godoc
// @Summary List the authenticated user's quotes
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.QuoteResponse
// @Router /v1/quotes [get]
func (h *QuoteHandler) ListMine(c *gin.Context) {
	quotes, err := h.usecase.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Quotes retrieved", response.FromQuotes(quotes)))
}

// ListForMechanic godoc
// @Summary List quotes addressed to the authenticated mechanic
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.QuoteResponse
// @Router /v1/quotes/received [get]
func (h *QuoteHandler) ListForMechanic(c *gin.Context) {
	quotes, err := h.usecase.ListByMechanicUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Quotes retrieved", response.FromQuotes(quotes)))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteInput):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoQuotesFound):
		return pkg.NewDomainErrorSimple("QUOTES_NOT_FOUND", "No quotes found for the given ids", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this quote", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteNotPending):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PENDING", "Quote has already been responded to", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotAcceptable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTABLE", "Quote has no response to accept", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteTerminal):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_DECIDED", "Quote has already been accepted, rejected or expired", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("MECHANIC_NOT_FOUND", "Mechanic not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this vehicle", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
