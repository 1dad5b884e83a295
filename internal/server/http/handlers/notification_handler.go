package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/server/http/dto"
)

// NotificationHandler serves the actor's notification inbox.
type NotificationHandler struct {
	facade NotificationFacade
}

func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.facade.Notifications(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		response = append(response, toNotificationResponse(&notifications[i]))
	}
	c.JSON(http.StatusOK, response)
}

// UnreadCount handles GET /api/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.facade.UnreadNotifications(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

// MarkRead handles PATCH /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id", "Notification not found")
	if !ok {
		return
	}
	n, err := h.facade.MarkNotificationRead(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNotificationResponse(n))
}

// MarkAllRead handles PATCH /api/notifications/mark-all-read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if _, err := h.facade.MarkAllNotificationsRead(c.Request.Context(), CurrentActor(c)); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "All notifications marked as read")
}

func toNotificationResponse(n *model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
