package models

import "time"

type TutorProfile struct {
	ID  string `gorm:"primaryKey;size:36" json:"id"`
	TID string `gorm:"size:12;uniqueIndex" json:"tid"`

	UserID string `gorm:"size:36;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	CategoryID string   `gorm:"size:36;index" json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	FirstName       string `gorm:"size:100" json:"first_name"`
	LastName        string `gorm:"size:100" json:"last_name"`
	Bio             string `gorm:"type:text" json:"bio"`
	Phone           string `gorm:"size:20" json:"phone"`
	Address         string `gorm:"size:255" json:"address"`
	Zip             string `gorm:"size:10" json:"zip"`
	ExperienceYears int    `json:"experience_years"`
	ExpertiseAreas  string `gorm:"type:text" json:"expertise_areas"`
	CV              string `gorm:"size:255" json:"cv"`
	ProfilePicture  string `gorm:"size:255" json:"profile_picture"`

	// Running ledgers. TotalEarned moves only inside booking transition
	// transactions; AvgRating/TotalReviews only inside review transactions.
	TotalEarned  float64 `gorm:"not null;default:0" json:"total_earned"`
	AvgRating    float64 `gorm:"not null;default:0" json:"avg_rating"`
	TotalReviews int     `gorm:"not null;default:0" json:"total_reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
