package models

import (
	"time"
)

// Vote records a single user's +1/-1 on an answer. The composite unique
// index idx_answer_voter is what guards the duplicate first-vote race, the
// application never relies on check-then-insert alone.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AnswerID  uint      `gorm:"not null;uniqueIndex:idx_answer_voter" json:"answer_id"`
	Answer    Answer    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"answer"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_answer_voter" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	VoteType  int       `gorm:"not null" json:"vote_type"` // 1 or -1
	CreatedAt time.Time `json:"created_at"`
}
