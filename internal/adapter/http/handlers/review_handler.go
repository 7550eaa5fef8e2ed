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

var errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)

// ReviewHandler handles reviews left on completed bookings and the
// mechanic-facing responses to them.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// Create godoc
// @Summary Review a completed booking
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body request.ReviewRequest true "Review"
// @Success 201 {object} response.ReviewResponse
// @Router /v1/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	review, err := h.usecase.Create(c.Request.Context(), middleware.UserID(c), payload.ToInput())
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.NewSuccess("Review created", response.FromReview(review)))
}

// ListByMechanic godoc
// @Summary List reviews for a mechanic
// @Tags reviews
// @Produce json
// @Param id path string true "Mechanic id"
// @Success 200 {array} response.ReviewResponse
// @Router /v1/mechanics/{id}/reviews [get]
func (h *ReviewHandler) ListByMechanic(c *gin.Context) {
	reviews, err := h.usecase.ListByMechanic(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Reviews retrieved", response.FromReviews(reviews)))
}

// ListMine godoc
// @Summary List reviews written by the authenticated user
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.ReviewResponse
// @Router /v1/reviews [get]
func (h *ReviewHandler) ListMine(c *gin.Context) {
	reviews, err := h.usecase.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Reviews retrieved", response.FromReviews(reviews)))
}

// Respond godoc
// @Summary Respond to a review (mechanic)
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review id"
// @Param payload body request.ReviewResponseRequest true "Response text"
// @Success 200 {object} response.ReviewResponse
// @Router /v1/reviews/{id}/respond [patch]
func (h *ReviewHandler) Respond(c *gin.Context) {
	var payload request.ReviewResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	review, err := h.usecase.MechanicRespond(c.Request.Context(), middleware.UserID(c), c.Param("id"), payload.Response)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Response added", response.FromReview(review)))
}

// VoteHelpful godoc
// @Summary Mark a review as helpful
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review id"
// @Success 200 {object} response.ReviewResponse
// @Router /v1/reviews/{id}/helpful [post]
func (h *ReviewHandler) VoteHelpful(c *gin.Context) {
	review, err := h.usecase.VoteHelpful(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Helpful vote recorded", response.FromReview(review)))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReviewInput):
		return pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReviewNotFound):
		return pkg.NewDomainErrorSimple("REVIEW_NOT_FOUND", "Review not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReviewForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this review", http.StatusForbidden)
	case errors.Is(err, usecase.ErrReviewBookingNotCompleted):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_COMPLETED", "Only completed bookings can be reviewed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReviewExists):
		return pkg.NewDomainErrorSimple("REVIEW_EXISTS", "Review already exists for this booking", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
