package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name      string    `gorm:"not null;size:100;index" json:"name" example:"Lina"`
	Movies    []Movie   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"movies,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
