package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotificationNotFound     = errors.New("notification not found")
	ErrNotificationForbidden    = errors.New("notification does not belong to the user")
	ErrInvalidNotificationInput = errors.New("invalid notification input")
)

// NotificationPage is a page of a user's notifications together with the
// unread total, which the client shows as a badge regardless of paging.
type NotificationPage struct {
	Notifications []entities.Notification
	UnreadCount   int
	Page          int
	Limit         int
	Total         int
	TotalPages    int
}

// INotificationUseCase manages the in-app notification feed. It also serves as
// the notifier the other use cases publish through.
type INotificationUseCase interface {
	interfaces.INotifier
	List(ctx context.Context, userID string, page, limit int, unreadOnly bool) (NotificationPage, error)
	MarkRead(ctx context.Context, actorUserID, notificationID string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, actorUserID, notificationID string) error
}

type NotificationUseCase struct {
	notifications interfaces.INotificationRepository
	log           *zap.SugaredLogger
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(notifications interfaces.INotificationRepository, log *zap.SugaredLogger) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications, log: log}
}

// Notify stores an in-app notification. Callers treat failures as
// best-effort, so errors are logged but still returned for tests.
func (u *NotificationUseCase) Notify(ctx context.Context, userID string, notificationType entities.NotificationType, title, message, relatedEntityID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(title) == "" {
		return ErrInvalidNotificationInput
	}

	n := entities.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      notificationType,
		Title:     title,
		Message:   message,
		EntityID:  relatedEntityID,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := u.notifications.Create(ctx, n); err != nil {
		u.log.Errorw("notification create failed", "user_id", userID, "type", notificationType, "err", err)
		return err
	}
	return nil
}

func (u *NotificationUseCase) List(ctx context.Context, userID string, page, limit int, unreadOnly bool) (NotificationPage, error) {
	if strings.TrimSpace(userID) == "" {
		return NotificationPage{}, ErrInvalidNotificationInput
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	all, err := u.notifications.ListByUserID(ctx, userID)
	if err != nil {
		return NotificationPage{}, err
	}

	unread := 0
	for _, n := range all {
		if !n.IsRead {
			unread++
		}
	}

	filtered := all
	if unreadOnly {
		filtered = make([]entities.Notification, 0, unread)
		for _, n := range all {
			if !n.IsRead {
				filtered = append(filtered, n)
			}
		}
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return NotificationPage{
		Notifications: filtered[start:end],
		UnreadCount:   unread,
		Page:          page,
		Limit:         limit,
		Total:         total,
		TotalPages:    totalPages,
	}, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, actorUserID, notificationID string) (entities.Notification, error) {
	n, err := u.ownedNotification(ctx, actorUserID, notificationID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.IsRead {
		return n, nil
	}
	return u.notifications.MarkRead(ctx, notificationID, time.Now().UTC())
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, ErrInvalidNotificationInput
	}
	return u.notifications.MarkAllRead(ctx, userID, time.Now().UTC())
}

func (u *NotificationUseCase) Delete(ctx context.Context, actorUserID, notificationID string) error {
	if _, err := u.ownedNotification(ctx, actorUserID, notificationID); err != nil {
		return err
	}
	return u.notifications.Delete(ctx, notificationID)
}

func (u *NotificationUseCase) ownedNotification(ctx context.Context, actorUserID, notificationID string) (entities.Notification, error) {
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return entities.Notification{}, ErrInvalidNotificationInput
	}
	n, err := u.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	if n.UserID != actorUserID {
		return entities.Notification{}, ErrNotificationForbidden
	}
	return n, nil
}
