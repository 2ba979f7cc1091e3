package handlers

import (
	"errors"
	"net/http"
	"stackit/internal/middleware"
	"stackit/internal/models"
	"stackit/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// currentUser returns the session user set by middleware.LoadUser, or nil.
func currentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// statusForError maps the service error taxonomy to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// jsonError writes a service error as JSON. Persistence failures are logged
// and surfaced generically, the store detail stays server-side.
func jsonError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		}).Error("Request failed")
		c.JSON(status, gin.H{"error": "Something went wrong, please retry"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
