package models

import (
	"strings"
	"time"
)

type Question struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"` // sanitized rich-text HTML
	Tags        string    `gorm:"size:500" json:"tags"`                  // comma-separated
	Views       int       `gorm:"default:0" json:"views"`
	CreatedAt   time.Time `json:"created_at"`

	// Filled at query time, not a column
	AnswerCount int `gorm:"-" json:"answer_count"`
}

// TagList splits the stored tag string on commas, trimming whitespace
// and dropping empty entries.
func (q *Question) TagList() []string {
	if q.Tags == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(q.Tags, ",") {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
