package handlers

import (
	"net/http"
	"stackit/internal/db"
	"stackit/internal/services"

	"github.com/gin-gonic/gin"
)

const recentNotificationLimit = 5

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// List - full inbox /notifications. Viewing it marks everything seen.
func (h *NotificationHandler) List(c *gin.Context) {
	user := currentUser(c)

	notifications, err := services.ListNotifications(db.DB, user.ID)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// Recent - polling endpoint /api/notifications. Read-only, seen state is
// untouched so the badge survives until the inbox is actually opened.
func (h *NotificationHandler) Recent(c *gin.Context) {
	user := currentUser(c)

	notifications, err := services.RecentNotifications(db.DB, user.ID, recentNotificationLimit)
	if err != nil {
		jsonError(c, err)
		return
	}
	unread, err := services.UnreadCount(db.DB, user.ID)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}
