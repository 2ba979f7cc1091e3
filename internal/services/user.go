package services

import (
	"errors"
	"fmt"
	"stackit/internal/models"
	"stackit/internal/utils"

	"gorm.io/gorm"
)

// RegisterUser creates a new account with a bcrypt-hashed password. The
// username and email unique indexes surface duplicates as ErrConflict.
func RegisterUser(db *gorm.DB, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", ErrValidation)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, serviceError(err)
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username or email already registered", ErrConflict)
		}
		return nil, serviceError(err)
	}
	return &user, nil
}

// AuthenticateUser checks credentials. Wrong username and wrong password
// produce the same generic error so login probing learns nothing. Banned
// accounts authenticate but are refused.
func AuthenticateUser(db *gorm.DB, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrValidation)
		}
		return nil, serviceError(err)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrValidation)
	}
	if user.IsBanned {
		return nil, fmt.Errorf("%w: account has been banned", ErrForbidden)
	}
	return &user, nil
}

// SetUserBan flips the banned flag for moderation.
func SetUserBan(db *gorm.DB, userID uint, banned bool) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update("is_banned", banned)
	if result.Error != nil {
		return serviceError(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	return nil
}

// DeleteUser removes an account and everything it owns inside one
// transaction, walking the ownership graph in dependency order:
// votes, then answers, then questions, then notifications, then the user.
// Votes the user cast on surviving answers are removed too, with those
// answers re-scored so each score still equals the sum of its vote rows.
func DeleteUser(db *gorm.DB, userID uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrNotFound, userID)
			}
			return err
		}

		var questionIDs []uint
		if err := tx.Model(&models.Question{}).Where("user_id = ?", userID).
			Pluck("id", &questionIDs).Error; err != nil {
			return err
		}

		// Answers going away: the user's own plus all answers under the
		// user's questions.
		answerQuery := tx.Model(&models.Answer{}).Where("user_id = ?", userID)
		if len(questionIDs) > 0 {
			answerQuery = answerQuery.Or("question_id IN ?", questionIDs)
		}
		var answerIDs []uint
		if err := answerQuery.Pluck("id", &answerIDs).Error; err != nil {
			return err
		}

		// Re-score surviving answers the user voted on before the vote rows go.
		voteQuery := tx.Where("user_id = ?", userID)
		if len(answerIDs) > 0 {
			voteQuery = voteQuery.Where("answer_id NOT IN ?", answerIDs)
		}
		var votes []models.Vote
		if err := voteQuery.Find(&votes).Error; err != nil {
			return err
		}
		for _, vote := range votes {
			if err := tx.Model(&models.Answer{}).Where("id = ?", vote.AnswerID).
				UpdateColumn("votes", gorm.Expr("votes - ?", vote.VoteType)).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if len(answerIDs) > 0 {
			if err := tx.Where("answer_id IN ?", answerIDs).Delete(&models.Vote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", answerIDs).Delete(&models.Answer{}).Error; err != nil {
				return err
			}
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("id IN ?", questionIDs).Delete(&models.Question{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return serviceError(err)
	}
	return nil
}
