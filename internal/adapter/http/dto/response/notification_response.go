package response

import (
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase"
)

type NotificationResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message,omitempty"`
	EntityID  string     `json:"entity_id,omitempty"`
	IsRead    bool       `json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		EntityID:  n.EntityID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if !n.ReadAt.IsZero() {
		t := n.ReadAt
		resp.ReadAt = &t
	}
	return resp
}

type NotificationPageResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	Total         int                    `json:"total"`
	TotalPages    int                    `json:"total_pages"`
}

func FromNotificationPage(p usecase.NotificationPage) NotificationPageResponse {
	out := make([]NotificationResponse, 0, len(p.Notifications))
	for _, n := range p.Notifications {
		out = append(out, FromNotification(n))
	}
	return NotificationPageResponse{
		Notifications: out,
		UnreadCount:   p.UnreadCount,
		Page:          p.Page,
		Limit:         p.Limit,
		Total:         p.Total,
		TotalPages:    p.TotalPages,
	}
}
