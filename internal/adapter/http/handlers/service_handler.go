package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "mechfinder/internal/adapter/http/dto/request"
	response "mechfinder/internal/adapter/http/dto/response"
	"mechfinder/internal/usecase"
	"mechfinder/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// ServiceHandler serves the service catalog. Reads are public, writes are
// admin only.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// List godoc
// @Summary List catalog services
// @Tags services
// @Produce json
// @Param active_only query bool false "Only active services"
// @Success 200 {array} response.ServiceResponse
// @Router /v1/services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))

	services, err := h.usecase.List(c.Request.Context(), activeOnly)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Services retrieved", response.FromServices(services)))
}

// GetByID godoc
// @Summary Fetch a catalog service
// @Tags services
// @Produce json
// @Param id path string true "Service id"
// @Success 200 {object} response.ServiceResponse
// @Router /v1/services/{id} [get]
func (h *ServiceHandler) GetByID(c *gin.Context) {
	service, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Service retrieved", response.FromService(service)))
}

// Create godoc
// @Summary Add a service to the catalog (admin)
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body request.ServiceRequest true "Service"
// @Success 201 {object} response.ServiceResponse
// @Router /v1/services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	service, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, pkg.NewSuccess("Service created", response.FromService(service)))
}

// Update godoc
// @Summary Update a catalog service (admin)
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service id"
// @Param payload body request.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} response.ServiceResponse
// @Router /v1/services/{id} [patch]
func (h *ServiceHandler) Update(c *gin.Context) {
	var payload request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	service, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Service updated", response.FromService(service)))
}

// Delete godoc
// @Summary Remove a catalog service (admin)
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service id"
// @Success 204
// @Router /v1/services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceInput):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
