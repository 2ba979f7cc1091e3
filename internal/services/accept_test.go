package services

import (
	"errors"
	"stackit/internal/models"
	"testing"

	"gorm.io/gorm"
)

func acceptedCount(t *testing.T, db *gorm.DB, questionID uint) int64 {
	t.Helper()
	var count int64
	db.Model(&models.Answer{}).
		Where("question_id = ? AND is_accepted = ?", questionID, true).
		Count(&count)
	return count
}

func acceptanceNotifications(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var count int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND message LIKE ?", userID, "%accepted%").
		Count(&count)
	return count
}

func TestAcceptAnswerMissingAnswer(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")

	if err := AcceptAnswer(db, 9999, alice.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("AcceptAnswer on missing answer = %v, want ErrNotFound", err)
	}
}

func TestAcceptAnswerOnlyQuestionAuthor(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	question := createQuestion(t, db, alice.ID, "Authorization")
	answer := createAnswer(t, db, question.ID, bob.ID, "answer")

	if err := AcceptAnswer(db, answer.ID, bob.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("AcceptAnswer by non-author = %v, want ErrForbidden", err)
	}
	if acceptedCount(t, db, question.ID) != 0 {
		t.Error("acceptance state changed on forbidden request")
	}
}

func TestAcceptAnswerSwapsPrevious(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	question := createQuestion(t, db, alice.ID, "Swap")
	first := createAnswer(t, db, question.ID, bob.ID, "first answer")
	second := createAnswer(t, db, question.ID, carol.ID, "second answer")

	if err := AcceptAnswer(db, first.ID, alice.ID); err != nil {
		t.Fatalf("accepting first answer failed: %v", err)
	}
	if err := AcceptAnswer(db, second.ID, alice.ID); err != nil {
		t.Fatalf("accepting second answer failed: %v", err)
	}

	var reloadedFirst, reloadedSecond models.Answer
	db.First(&reloadedFirst, first.ID)
	db.First(&reloadedSecond, second.ID)
	if reloadedFirst.IsAccepted {
		t.Error("previous answer still accepted after swap")
	}
	if !reloadedSecond.IsAccepted {
		t.Error("new answer not accepted after swap")
	}
	if got := acceptedCount(t, db, question.ID); got != 1 {
		t.Errorf("accepted answers = %d, want 1", got)
	}
}

func TestAcceptAnswerNotifiesAuthor(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	question := createQuestion(t, db, alice.ID, "Notify")
	answer := createAnswer(t, db, question.ID, bob.ID, "answer")

	if err := AcceptAnswer(db, answer.ID, alice.ID); err != nil {
		t.Fatalf("AcceptAnswer failed: %v", err)
	}
	if got := acceptanceNotifications(t, db, bob.ID); got != 1 {
		t.Errorf("acceptance notifications for author = %d, want 1", got)
	}
}

func TestReacceptIsNoOpWithoutDuplicateNotification(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	question := createQuestion(t, db, alice.ID, "Reaccept")
	answer := createAnswer(t, db, question.ID, bob.ID, "answer")

	for i := 0; i < 3; i++ {
		if err := AcceptAnswer(db, answer.ID, alice.ID); err != nil {
			t.Fatalf("AcceptAnswer call %d failed: %v", i, err)
		}
	}
	if got := acceptanceNotifications(t, db, bob.ID); got != 1 {
		t.Errorf("acceptance notifications after re-accepts = %d, want 1", got)
	}
	if got := acceptedCount(t, db, question.ID); got != 1 {
		t.Errorf("accepted answers = %d, want 1", got)
	}
}

func TestAcceptOwnAnswerSkipsNotification(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")
	question := createQuestion(t, db, alice.ID, "Self accept")
	answer := createAnswer(t, db, question.ID, alice.ID, "my own answer")

	if err := AcceptAnswer(db, answer.ID, alice.ID); err != nil {
		t.Fatalf("AcceptAnswer failed: %v", err)
	}
	if got := acceptanceNotifications(t, db, alice.ID); got != 0 {
		t.Errorf("self-acceptance notifications = %d, want 0", got)
	}
}
