package handlers

import (
	"net/http"
	"stackit/internal/db"
	"stackit/internal/models"
	"stackit/internal/services"
	"stackit/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Users - all accounts for the review dashboard /admin/users
func (h *AdminHandler) Users(c *gin.Context) {
	var users []models.User
	if err := db.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Questions - all questions newest-first /admin/questions
func (h *AdminHandler) Questions(c *gin.Context) {
	var questions []models.Question
	if err := db.DB.Preload("User").Order("created_at DESC").Find(&questions).Error; err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// Answers - all answers newest-first /admin/answers
func (h *AdminHandler) Answers(c *gin.Context) {
	var answers []models.Answer
	if err := db.DB.Preload("User").Order("created_at DESC").Find(&answers).Error; err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answers": answers})
}

// Ban - /admin/users/:id/ban
func (h *AdminHandler) Ban(c *gin.Context) {
	h.setBan(c, true)
}

// Unban - /admin/users/:id/unban
func (h *AdminHandler) Unban(c *gin.Context) {
	h.setBan(c, false)
}

func (h *AdminHandler) setBan(c *gin.Context, banned bool) {
	admin := currentUser(c)
	userID := utils.StringToUint(c.Param("id"))

	if userID == admin.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot ban yourself"})
		return
	}
	if err := services.SetUserBan(db.DB, userID, banned); err != nil {
		jsonError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"admin_id": admin.ID,
		"user_id":  userID,
		"banned":   banned,
	}).Info("Ban flag updated")

	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

// DeleteUser - remove an account and everything it owns /admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	admin := currentUser(c)
	userID := utils.StringToUint(c.Param("id"))

	if userID == admin.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete yourself"})
		return
	}
	if err := services.DeleteUser(db.DB, userID); err != nil {
		jsonError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"admin_id": admin.ID,
		"user_id":  userID,
	}).Info("User deleted")

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
