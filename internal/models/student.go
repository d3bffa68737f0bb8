package models

import "time"

type Student struct {
	ID  string `gorm:"primaryKey;size:36" json:"id"`
	SID string `gorm:"size:12;uniqueIndex" json:"sid"`

	UserID string `gorm:"size:36;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Phone     string `gorm:"size:20" json:"phone"`
	Address   string `gorm:"size:255" json:"address"`
	Zip       string `gorm:"size:10" json:"zip"`
	Status    string `gorm:"size:20;default:'ACTIVE'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
