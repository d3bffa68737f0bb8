package models

import "time"

type Review struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	StudentID string  `gorm:"size:36;index" json:"student_id"`
	Student   Student `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"student"`

	TutorID      string       `gorm:"size:36;index" json:"tutor_id"`
	TutorProfile TutorProfile `gorm:"foreignKey:TutorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
