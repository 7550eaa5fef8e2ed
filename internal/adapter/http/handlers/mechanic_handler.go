package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "mechfinder/internal/adapter/http/dto/request"
	response "mechfinder/internal/adapter/http/dto/response"
	"mechfinder/internal/adapter/http/middleware"
	"mechfinder/internal/usecase"
	"mechfinder/internal/usecase/interfaces"
	"mechfinder/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMechanicPayload = pkg.NewDomainErrorSimple("INVALID_MECHANIC_INPUT", "Invalid mechanic payload", http.StatusBadRequest)

// MechanicHandler handles the mechanic directory endpoints.

type MechanicHandler struct {
	usecase usecase.IMechanicUseCase
}

func NewMechanicHandler(uc usecase.IMechanicUseCase) *MechanicHandler {
	return &MechanicHandler{usecase: uc}
}

// Register godoc
// @Summary Register a mechanic profile for the authenticated user
// @Tags mechanics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body request.MechanicProfileRequest true "Profile"
// @Success 201 {object} response.MechanicResponse
// @Router /v1/mechanics [post]
func (h *MechanicHandler) Register(c *gin.Context) {
	var payload request.MechanicProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMechanicPayload.HTTPStatus, errInvalidMechanicPayload.ToHTTPError())
		return
	}

	mech, err := h.usecase.Register(c.Request.Context(), middleware.UserID(c), payload.ToInput())
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.NewSuccess("Mechanic registered", response.FromMechanic(mech)))
}

// List godoc
// @Summary Browse the mechanic directory
// @Tags mechanics
// @Produce json
// @Param service_type query string false "Filter by offered service"
// @Param suburb query string false "Filter by suburb"
// @Param limit query int false "Maximum results"
// @Success 200 {array} response.MechanicResponse
// @Router /v1/mechanics [get]
func (h *MechanicHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	filter := interfaces.MechanicFilter{
		ServiceType: c.Query("service_type"),
		Suburb:      c.Query("suburb"),
		Limit:       limit,
	}

	mechanics, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Mechanics retrieved", response.FromMechanics(mechanics)))
}

// GetByID godoc
// @Summary Fetch one mechanic profile
// @Tags mechanics
// @Produce json
// @Param id path string true "Mechanic id"
// @Success 200 {object} response.MechanicResponse
// @Router /v1/mechanics/{id} [get]
func (h *MechanicHandler) GetByID(c *gin.Context) {
	mech, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Mechanic retrieved", response.FromMechanic(mech)))
}

// Update godoc
// @Summary Update the authenticated user's mechanic profile
// @Tags mechanics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mechanic id"
// @Param payload body request.UpdateMechanicRequest true "Fields to update"
// @Success 200 {object} response.MechanicResponse
// @Router /v1/mechanics/{id} [patch]
func (h *MechanicHandler) Update(c *gin.Context) {
	var payload request.UpdateMechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMechanicPayload.HTTPStatus, errInvalidMechanicPayload.ToHTTPError())
		return
	}

	mech, err := h.usecase.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Mechanic updated", response.FromMechanic(mech)))
}

func mapMechanicError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMechanicInput):
		return pkg.NewDomainErrorSimple("INVALID_MECHANIC_INPUT", "Invalid mechanic payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMechanicProfileExists):
		return pkg.NewDomainErrorSimple("MECHANIC_PROFILE_EXISTS", "A mechanic profile already exists for this user", http.StatusConflict)
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("MECHANIC_NOT_FOUND", "Mechanic not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMechanicForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this mechanic profile", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
