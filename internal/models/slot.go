package models

import "time"

type Slot struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	TutorID      string       `gorm:"size:36;index" json:"tutor_id"`
	TutorProfile TutorProfile `gorm:"foreignKey:TutorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"tutor_profile"`

	SubjectID string  `gorm:"size:36;index" json:"subject_id"`
	Subject   Subject `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"subject"`

	Date      time.Time `gorm:"index" json:"date"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	SlotPrice float64 `gorm:"not null;default:0" json:"slot_price"`

	// IsBooked is flipped only by the booking lifecycle, never by slot edits.
	IsBooked   bool `gorm:"not null;default:false" json:"is_booked"`
	IsFeatured bool `gorm:"not null;default:false" json:"is_featured"`
	IsFree     bool `gorm:"not null;default:false" json:"is_free"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
