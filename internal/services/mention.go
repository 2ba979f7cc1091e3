package services

import (
	"errors"
	"regexp"
	"stackit/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var mentionPattern = regexp.MustCompile(`@(\w+)`)

// ExtractMentions returns the usernames referenced as @name tokens in text,
// in order of appearance, duplicates included.
func ExtractMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// NotifyMentions creates a notification for every existing user mentioned in
// content, except the author mentioning themselves. Unknown usernames are
// skipped silently and duplicate mentions collapse to one notification per
// user. Failures are logged but never propagated, a bad mention must not
// fail the surrounding request.
func NotifyMentions(db *gorm.DB, content string, authorID uint, contextMessage string) {
	seen := make(map[string]bool)
	for _, username := range ExtractMentions(content) {
		if seen[username] {
			continue
		}
		seen[username] = true

		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logrus.WithFields(logrus.Fields{
					"username": username,
					"error":    err.Error(),
				}).Warn("Mention lookup failed")
			}
			continue
		}
		if user.ID == authorID {
			continue
		}

		if err := CreateNotification(db, user.ID, "You were mentioned: "+contextMessage); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Warn("Mention notification failed")
		}
	}
}
