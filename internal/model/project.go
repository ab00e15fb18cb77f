package model

import "time"

// Project represents a portfolio project entry.
type Project struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	ImageURL     string    `json:"imageUrl" gorm:"size:512;not null"`
	LiveURL      *string   `json:"liveUrl" gorm:"size:512"`
	GithubURL    *string   `json:"githubUrl" gorm:"size:512"`
	Technologies []string  `json:"technologies" gorm:"serializer:json"`
	Featured     bool      `json:"featured" gorm:"default:false;index"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
