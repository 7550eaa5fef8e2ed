package handlers

import (
	"errors"
	"net/http"

	request "mechfinder/internal/adapter/http/dto/request"
	response "mechfinder/internal/adapter/http/dto/response"
	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase"
	"mechfinder/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidB2BPayload = pkg.NewDomainErrorSimple("INVALID_B2B_INPUT", "Invalid application payload", http.StatusBadRequest)

// B2BHandler handles fleet partnership applications. Applying is public,
// reviewing and deciding is admin only.

type B2BHandler struct {
	usecase usecase.IB2BUseCase
}

func NewB2BHandler(uc usecase.IB2BUseCase) *B2BHandler {
	return &B2BHandler{usecase: uc}
}

// Apply godoc
// @Summary Apply for a fleet partnership
// @Tags b2b
// @Accept json
// @Produce json
// @Param payload body request.B2BApplyRequest true "Application"
// @Success 201 {object} response.B2BApplicationResponse
// @Router /v1/b2b/applications [post]
func (h *B2BHandler) Apply(c *gin.Context) {
	var payload request.B2BApplyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidB2BPayload.HTTPStatus, errInvalidB2BPayload.ToHTTPError())
		return
	}

	application, err := h.usecase.Apply(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapB2BError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.NewSuccess("Application submitted", response.FromB2BApplication(application)))
}

// List godoc
// @Summary List partnership applications (admin)
// @Tags b2b
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Success 200 {array} response.B2BApplicationResponse
// @Router /v1/b2b/applications [get]
func (h *B2BHandler) List(c *gin.Context) {
	applications, err := h.usecase.List(c.Request.Context(), entities.B2BStatus(c.Query("status")))
	if err != nil {
		appErr := mapB2BError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Applications retrieved", response.FromB2BApplications(applications)))
}

// GetByID godoc
// @Summary Fetch a partnership application (admin)
// @Tags b2b
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application id"
// @Success 200 {object} response.B2BApplicationResponse
// @Router /v1/b2b/applications/{id} [get]
func (h *B2BHandler) GetByID(c *gin.Context) {
	application, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapB2BError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Application retrieved", response.FromB2BApplication(application)))
}

// Decide godoc
// @Summary Approve or reject a partnership application (admin)
// @Tags b2b
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application id"
// @Param payload body request.B2BDecisionRequest true "Decision"
// @Success 200 {object} response.B2BApplicationResponse
// @Router /v1/b2b/applications/{id}/decision [patch]
func (h *B2BHandler) Decide(c *gin.Context) {
	var payload request.B2BDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Approved == nil {
		c.JSON(errInvalidB2BPayload.HTTPStatus, errInvalidB2BPayload.ToHTTPError())
		return
	}

	application, err := h.usecase.Decide(c.Request.Context(), c.Param("id"), *payload.Approved)
	if err != nil {
		appErr := mapB2BError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Application decided", response.FromB2BApplication(application)))
}

func mapB2BError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidB2BInput):
		return pkg.NewDomainErrorSimple("INVALID_B2B_INPUT", "Invalid application payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrB2BApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrB2BAlreadyDecided):
		return pkg.NewDomainErrorSimple("APPLICATION_ALREADY_DECIDED", "Application has already been decided", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
