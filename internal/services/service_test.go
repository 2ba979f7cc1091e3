package services

import (
	"stackit/internal/models"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns an isolated in-memory database with the full schema,
// configured like production (TranslateError on) so uniqueness violations
// surface as gorm.ErrDuplicatedKey here too.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	// A second connection would see a different empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Vote{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user, err := RegisterUser(db, username, username+"@example.com", "password123")
	if err != nil {
		t.Fatalf("RegisterUser(%s) failed: %v", username, err)
	}
	return user
}

func createQuestion(t *testing.T, db *gorm.DB, userID uint, title string) *models.Question {
	t.Helper()
	question, err := CreateQuestion(db, userID, title, "some description", "go, testing")
	if err != nil {
		t.Fatalf("CreateQuestion(%s) failed: %v", title, err)
	}
	return question
}

func createAnswer(t *testing.T, db *gorm.DB, questionID, userID uint, content string) *models.Answer {
	t.Helper()
	answer, err := CreateAnswer(db, questionID, userID, content)
	if err != nil {
		t.Fatalf("CreateAnswer failed: %v", err)
	}
	return answer
}

func answerScore(t *testing.T, db *gorm.DB, answerID uint) int {
	t.Helper()
	var answer models.Answer
	if err := db.First(&answer, answerID).Error; err != nil {
		t.Fatalf("failed to reload answer %d: %v", answerID, err)
	}
	return answer.Votes
}
