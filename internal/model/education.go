package model

import "time"

// Education is a single education history entry. Listings are ordered by
// start date descending.
type Education struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Institution  string     `json:"institution" gorm:"size:255;not null"`
	Degree       string     `json:"degree" gorm:"size:255;not null"`
	Field        string     `json:"field" gorm:"size:255;not null"`
	StartDate    time.Time  `json:"startDate" gorm:"not null;index"`
	EndDate      *time.Time `json:"endDate"`
	Grade        string     `json:"grade" gorm:"size:255"`
	Achievements []string   `json:"achievements" gorm:"serializer:json"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// TableName keeps the table name as "education" rather than "educations".
func (Education) TableName() string { return "education" }
