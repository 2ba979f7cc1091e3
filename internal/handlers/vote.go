package handlers

import (
	"net/http"
	"stackit/internal/db"
	"stackit/internal/services"
	"stackit/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

type voteRequest struct {
	// String-encoded integers, as submitted by the vote buttons
	AnswerID string `form:"answer_id" json:"answer_id"`
	VoteType string `form:"vote_type" json:"vote_type"`
}

// Vote - cast or change a vote on an answer /vote
func (h *VoteHandler) Vote(c *gin.Context) {
	user := currentUser(c)

	var req voteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	answerID := utils.StringToUint(req.AnswerID)
	voteType := utils.StringToInt(req.VoteType)

	votes, err := services.CastVote(db.DB, answerID, user.ID, voteType)
	if err != nil {
		jsonError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"answer_id": answerID,
		"user_id":   user.ID,
		"vote_type": voteType,
	}).Info("Vote cast")

	c.JSON(http.StatusOK, gin.H{"votes": votes})
}

type acceptRequest struct {
	AnswerID string `form:"answer_id" json:"answer_id"`
}

// Accept - mark an answer as accepted /accept_answer
func (h *VoteHandler) Accept(c *gin.Context) {
	user := currentUser(c)

	var req acceptRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	answerID := utils.StringToUint(req.AnswerID)
	if err := services.AcceptAnswer(db.DB, answerID, user.ID); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Answer accepted"})
}
