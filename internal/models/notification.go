package models

import (
	"time"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"` // Recipient
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Seen      bool      `gorm:"default:false;index" json:"seen"`
	CreatedAt time.Time `json:"created_at"`
}
