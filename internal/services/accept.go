package services

import (
	"errors"
	"fmt"
	"stackit/internal/models"

	"gorm.io/gorm"
)

// AcceptAnswer marks an answer as the accepted one for its question. Only the
// question's author may accept. Any previously accepted answer is cleared in
// the same transaction, so at most one answer per question ever carries the
// flag. The answer's author is notified unless they accepted their own answer.
// Re-accepting the already-accepted answer is a no-op and fires no
// duplicate notification.
func AcceptAnswer(db *gorm.DB, answerID, requesterID uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var answer models.Answer
		if err := tx.First(&answer, answerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: answer %d", ErrNotFound, answerID)
			}
			return err
		}

		var question models.Question
		if err := tx.First(&question, answer.QuestionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: question %d", ErrNotFound, answer.QuestionID)
			}
			return err
		}

		if question.UserID != requesterID {
			return fmt.Errorf("%w: only the question author can accept an answer", ErrForbidden)
		}

		if answer.IsAccepted {
			// Nothing changes, so nobody gets re-notified
			return nil
		}

		if err := tx.Model(&models.Answer{}).
			Where("question_id = ? AND is_accepted = ?", question.ID, true).
			Update("is_accepted", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Answer{}).Where("id = ?", answer.ID).
			Update("is_accepted", true).Error; err != nil {
			return err
		}

		if answer.UserID != requesterID {
			message := fmt.Sprintf("Your answer was accepted for question: %s", question.Title)
			if err := CreateNotification(tx, answer.UserID, message); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return serviceError(err)
	}
	return nil
}
