package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "mechfinder/internal/adapter/http/dto/response"
	"mechfinder/internal/adapter/http/middleware"
	"mechfinder/internal/usecase"
	"mechfinder/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the authenticated user's notification feed.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// List godoc
// @Summary List the authenticated user's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, max 100"
// @Param unread_only query bool false "Only unread notifications"
// @Success 200 {object} response.NotificationPageResponse
// @Router /v1/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	unreadOnly, _ := strconv.ParseBool(c.DefaultQuery("unread_only", "false"))

	result, err := h.usecase.List(c.Request.Context(), middleware.UserID(c), page, limit, unreadOnly)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Notifications retrieved", response.FromNotificationPage(result)))
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification id"
// @Success 200 {object} response.NotificationResponse
// @Router /v1/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notification, err := h.usecase.MarkRead(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Notification marked read", response.FromNotification(notification)))
}

// MarkAllRead godoc
// @Summary Mark every unread notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Router /v1/notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	count, err := h.usecase.MarkAllRead(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, pkg.NewSuccess("Notifications marked read", gin.H{"marked_read": count}))
}

// Delete godoc
// @Summary Delete a notification
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification id"
// @Success 204
// @Router /v1/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationInput):
		return pkg.NewDomainErrorSimple("INVALID_NOTIFICATION_INPUT", "Invalid notification payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotificationForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this notification", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
