package handlers

import (
	"net/http"
	"stackit/internal/db"
	"stackit/internal/services"
	"stackit/internal/utils"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct{}

func NewQuestionHandler() *QuestionHandler {
	return &QuestionHandler{}
}

// List - all questions newest-first /questions
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := services.ListQuestions(db.DB)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// Hot - most viewed questions /questions/hot
func (h *QuestionHandler) Hot(c *gin.Context) {
	limit := utils.StringToInt(c.DefaultQuery("limit", "5"))
	if limit <= 0 || limit > 50 {
		limit = 5
	}
	questions, err := services.HotQuestions(db.DB, limit)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// Detail - question page /question/:id, bumps the view counter
func (h *QuestionHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	question, answers, err := services.GetQuestion(db.DB, id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"question": question,
		"tags":     question.TagList(),
		"answers":  answers,
	})
}

type askRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Tags        string `form:"tags" json:"tags"`
}

// Create - post a new question /ask
func (h *QuestionHandler) Create(c *gin.Context) {
	user := currentUser(c)

	var req askRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	question, err := services.CreateQuestion(db.DB, user.ID, req.Title, req.Description, req.Tags)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Question posted", "question": question})
}

type answerRequest struct {
	Content string `form:"content" json:"content"`
}

// CreateAnswer - answer a question /question/:id/answer
func (h *QuestionHandler) CreateAnswer(c *gin.Context) {
	user := currentUser(c)
	questionID := utils.StringToUint(c.Param("id"))

	var req answerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	answer, err := services.CreateAnswer(db.DB, questionID, user.ID, req.Content)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Answer submitted", "answer": answer})
}
