package models

import (
	"time"
)

type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	Question   Question  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"question"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Content    string    `gorm:"type:text;not null" json:"content"` // sanitized rich-text HTML
	Votes      int       `gorm:"default:0" json:"votes"`            // running sum of vote types, may be negative
	IsAccepted bool      `gorm:"default:false;index" json:"is_accepted"`
	CreatedAt  time.Time `json:"created_at"`
}
