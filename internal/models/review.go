package models

import "time"

type Review struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Text        string    `gorm:"type:text;not null" json:"text" example:"A heist movie that folds in on itself."`
	AIGenerated bool      `gorm:"index" json:"ai_generated" example:"false"`
	MovieID     uint      `gorm:"not null;index" json:"movie_id" example:"1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewUpdate carries a partial update. Nil fields are left untouched.
type ReviewUpdate struct {
	Text *string `json:"text,omitempty"`
}

// Recommendation is one entry of an AI-generated recommendation list.
type Recommendation struct {
	Title  string `json:"title" example:"Interstellar"`
	Reason string `json:"reason" example:"Nolan's other mind-bending epic."`
}
