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

var errInvalidVehiclePayload = pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)

// VehicleHandler handles the authenticated user's vehicle garage.

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

// Add godoc
// @Summary Add a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body request.VehicleRequest true "Vehicle"
// @Success 201 {object} response.VehicleResponse
// @Router /v1/vehicles [post]
func (h *VehicleHandler) Add(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	vehicle, err := h.usecase.Add(c.Request.Context(), middleware.UserID(c), payload.ToInput())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.NewSuccess("Vehicle added", response.FromVehicle(vehicle)))
}

// List godoc
// @Summary List the authenticated user's vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.VehicleResponse
// @Router /v1/vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.usecase.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Vehicles retrieved", response.FromVehicles(vehicles)))
}

// GetByID godoc
// @Summary Fetch one of the user's vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle id"
// @Success 200 {object} response.VehicleResponse
// @Router /v1/vehicles/{id} [get]
func (h *VehicleHandler) GetByID(c *gin.Context) {
	vehicle, err := h.usecase.GetByID(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Vehicle retrieved", response.FromVehicle(vehicle)))
}

// Update godoc
// @Summary Update one of the user's vehicles
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle id"
// @Param payload body request.VehicleRequest true "Vehicle"
// @Success 200 {object} response.VehicleResponse
// @Router /v1/vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	vehicle, err := h.usecase.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Vehicle updated", response.FromVehicle(vehicle)))
}

// Delete godoc
// @Summary Remove one of the user's vehicles
// @Tags vehicles
// @Security BearerAuth
// @Param id path string true "Vehicle id"
// @Success 204
// @Router /v1/vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleInput):
		return pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleExists):
		return pkg.NewDomainErrorSimple("VEHICLE_EXISTS", "A vehicle with this registration already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this vehicle", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
