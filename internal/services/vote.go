package services

import (
	"errors"
	"fmt"
	"stackit/internal/models"

	"gorm.io/gorm"
)

// CastVote records voterID's +1/-1 on an answer and returns the updated
// score. Resubmitting the same vote type is a no-op; submitting the opposite
// type flips the stored vote and swings the score by 2. The vote upsert and
// the score column update commit as one transaction so the score always
// equals the sum of the answer's vote rows.
func CastVote(db *gorm.DB, answerID, voterID uint, voteType int) (int, error) {
	if voteType != 1 && voteType != -1 {
		return 0, fmt.Errorf("%w: vote type must be +1 or -1", ErrValidation)
	}

	var score int
	err := db.Transaction(func(tx *gorm.DB) error {
		var answer models.Answer
		if err := tx.First(&answer, answerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: answer %d", ErrNotFound, answerID)
			}
			return err
		}
		score = answer.Votes

		var existing models.Vote
		err := tx.Where("answer_id = ? AND user_id = ?", answerID, voterID).First(&existing).Error
		switch {
		case err == nil:
			if existing.VoteType == voteType {
				// Same vote resubmitted, idempotent
				return nil
			}
			delta := voteType - existing.VoteType
			if err := tx.Model(&existing).Update("vote_type", voteType).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Answer{}).Where("id = ?", answerID).
				UpdateColumn("votes", gorm.Expr("votes + ?", delta)).Error; err != nil {
				return err
			}
			score += delta
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := models.Vote{AnswerID: answerID, UserID: voterID, VoteType: voteType}
			if err := tx.Create(&vote).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// Lost a concurrent first-vote race, the unique index wins
					return fmt.Errorf("%w: vote already recorded", ErrConflict)
				}
				return err
			}
			if err := tx.Model(&models.Answer{}).Where("id = ?", answerID).
				UpdateColumn("votes", gorm.Expr("votes + ?", voteType)).Error; err != nil {
				return err
			}
			score += voteType
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return 0, serviceError(err)
	}
	return score, nil
}

// serviceError passes taxonomy errors through and wraps everything else as a
// generic persistence failure so no store detail leaks to callers.
func serviceError(err error) error {
	for _, known := range []error{ErrValidation, ErrNotFound, ErrForbidden, ErrConflict, ErrPersistence} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
