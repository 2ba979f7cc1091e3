package services

import (
	"stackit/internal/models"
	"testing"
	"time"

	"gorm.io/gorm"
)

func seedNotifications(t *testing.T, db *gorm.DB, userID uint, messages ...string) {
	t.Helper()
	base := time.Now().Add(-time.Duration(len(messages)) * time.Minute)
	for i, message := range messages {
		n := models.Notification{
			UserID:    userID,
			Message:   message,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&n).Error; err != nil {
			t.Fatalf("failed to seed notification: %v", err)
		}
	}
}

func TestListNotificationsMarksSeen(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")
	seedNotifications(t, db, alice.ID, "oldest", "middle", "newest")

	notifications, err := ListNotifications(db, alice.ID)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(notifications) != 3 {
		t.Fatalf("inbox size = %d, want 3", len(notifications))
	}
	if notifications[0].Message != "newest" || notifications[2].Message != "oldest" {
		t.Errorf("inbox not newest-first: %s ... %s", notifications[0].Message, notifications[2].Message)
	}
	for _, n := range notifications {
		if !n.Seen {
			t.Errorf("notification %q returned unseen", n.Message)
		}
	}

	unread, err := UnreadCount(db, alice.ID)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread after viewing inbox = %d, want 0", unread)
	}
}

func TestRecentNotificationsDoesNotMutate(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")
	seedNotifications(t, db, alice.ID, "a", "b", "c")

	recent, err := RecentNotifications(db, alice.ID, 2)
	if err != nil {
		t.Fatalf("RecentNotifications failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent size = %d, want 2", len(recent))
	}
	if recent[0].Message != "c" {
		t.Errorf("recent[0] = %q, want %q", recent[0].Message, "c")
	}

	unread, err := UnreadCount(db, alice.ID)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if unread != 3 {
		t.Errorf("unread after polling = %d, want 3", unread)
	}
}

func TestUnreadCountPerUser(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	seedNotifications(t, db, alice.ID, "one", "two")
	seedNotifications(t, db, bob.ID, "other")

	unread, err := UnreadCount(db, alice.ID)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if unread != 2 {
		t.Errorf("alice unread = %d, want 2", unread)
	}

	// alice opening her inbox must not touch bob's state
	if _, err := ListNotifications(db, alice.ID); err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	bobUnread, err := UnreadCount(db, bob.ID)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if bobUnread != 1 {
		t.Errorf("bob unread = %d, want 1", bobUnread)
	}
}
