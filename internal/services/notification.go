package services

import (
	"fmt"
	"stackit/internal/models"

	"gorm.io/gorm"
)

// CreateNotification enqueues a message for a user. Pass the surrounding
// transaction when the notification must commit with other mutations.
func CreateNotification(tx *gorm.DB, userID uint, message string) error {
	notification := models.Notification{UserID: userID, Message: message}
	return tx.Create(&notification).Error
}

// ListNotifications returns the user's full inbox newest-first and marks
// everything in it as seen. Viewing the inbox is the acknowledgment, there
// is no separate mark-read step.
func ListNotifications(db *gorm.DB, userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&notifications).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Notification{}).
			Where("user_id = ? AND seen = ?", userID, false).
			Update("seen", true).Error; err != nil {
			return err
		}
		for i := range notifications {
			notifications[i].Seen = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return notifications, nil
}

// RecentNotifications returns the limit most recent notifications without
// touching seen state. Used by polling and badge UIs.
func RecentNotifications(db *gorm.DB, userID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return notifications, nil
}

// UnreadCount returns the number of unseen notifications for a user.
func UnreadCount(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	if err := db.Model(&models.Notification{}).
		Where("user_id = ? AND seen = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return count, nil
}
