package services

import (
	"errors"
	"fmt"
	"stackit/internal/models"
	"stackit/internal/utils"
	"strings"
	"time"

	"gorm.io/gorm"
)

const hotQuestionsTTL = 5 * time.Minute

// CreateQuestion stores a new question after sanitizing the rich-text
// description, then notifies any users mentioned in it.
func CreateQuestion(db *gorm.DB, userID uint, title, description, tags string) (*models.Question, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrValidation)
	}

	var author models.User
	if err := db.First(&author, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, serviceError(err)
	}

	question := models.Question{
		UserID:      userID,
		Title:       title,
		Description: utils.SanitizeHTML(description),
		Tags:        tags,
	}
	if err := db.Create(&question).Error; err != nil {
		return nil, serviceError(err)
	}

	NotifyMentions(db, question.Description, userID,
		fmt.Sprintf("%s mentioned you in question: %s", author.Username, question.Title))

	return &question, nil
}

// GetQuestion loads a question with its author, bumps the view counter and
// returns the answers ordered by score, newest first within equal scores.
func GetQuestion(db *gorm.DB, id uint) (*models.Question, []models.Answer, error) {
	var question models.Question
	if err := db.Preload("User").First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: question %d", ErrNotFound, id)
		}
		return nil, nil, serviceError(err)
	}

	if err := db.Model(&models.Question{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		return nil, nil, serviceError(err)
	}
	question.Views++

	var answers []models.Answer
	if err := db.Preload("User").
		Where("question_id = ?", id).
		Order("votes DESC, created_at DESC").
		Find(&answers).Error; err != nil {
		return nil, nil, serviceError(err)
	}
	return &question, answers, nil
}

// ListQuestions returns all questions newest-first with answer counts filled.
func ListQuestions(db *gorm.DB) ([]models.Question, error) {
	var questions []models.Question
	if err := db.Preload("User").
		Order("created_at DESC").
		Find(&questions).Error; err != nil {
		return nil, serviceError(err)
	}
	fillAnswerCounts(db, questions)
	return questions, nil
}

// HotQuestions returns the most viewed questions. Results sit behind a short
// TTL cache since the listing tolerates slightly stale view counts.
func HotQuestions(db *gorm.DB, limit int) ([]models.Question, error) {
	cacheKey := fmt.Sprintf("questions:hot:%d", limit)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if questions, ok := cached.([]models.Question); ok {
			return questions, nil
		}
	}

	var questions []models.Question
	if err := db.Preload("User").
		Order("views DESC").
		Limit(limit).
		Find(&questions).Error; err != nil {
		return nil, serviceError(err)
	}
	fillAnswerCounts(db, questions)

	utils.GetCache().Set(cacheKey, questions, hotQuestionsTTL)
	return questions, nil
}

// CreateAnswer stores a new answer, notifies the question owner (unless they
// answered their own question) and any mentioned users.
func CreateAnswer(db *gorm.DB, questionID, userID uint, content string) (*models.Answer, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: answer content required", ErrValidation)
	}

	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %d", ErrNotFound, questionID)
		}
		return nil, serviceError(err)
	}
	var author models.User
	if err := db.First(&author, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, serviceError(err)
	}

	answer := models.Answer{
		QuestionID: questionID,
		UserID:     userID,
		Content:    utils.SanitizeHTML(content),
	}
	if err := db.Create(&answer).Error; err != nil {
		return nil, serviceError(err)
	}

	if question.UserID != userID {
		if err := CreateNotification(db, question.UserID,
			fmt.Sprintf("%s answered your question: %s", author.Username, question.Title)); err != nil {
			return nil, serviceError(err)
		}
	}
	NotifyMentions(db, answer.Content, userID,
		fmt.Sprintf("%s mentioned you in an answer", author.Username))

	return &answer, nil
}

func fillAnswerCounts(db *gorm.DB, questions []models.Question) {
	for i := range questions {
		var count int64
		db.Model(&models.Answer{}).Where("question_id = ?", questions[i].ID).Count(&count)
		questions[i].AnswerCount = int(count)
	}
}
