package models

import "time"

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'STUDENT'" json:"role"`
	Status       string `gorm:"size:20;default:'ACTIVE'" json:"status"`
	IsAssociate  bool   `json:"is_associate"`
	Image        string `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
