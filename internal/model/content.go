package model

import "time"

// SingletonID is the fixed primary key used for tables intended to hold
// exactly one row. Upserting against a well-known id removes the
// find-first-then-create race of looking the row up before deciding.
const SingletonID uint = 1

// HeroSection is the singleton hero banner content.
type HeroSection struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Roles     []string  `json:"roles" gorm:"serializer:json"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AboutSection is the singleton about-me content.
type AboutSection struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Settings is the singleton site-wide settings record.
type Settings struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	AboutText    string    `json:"aboutText" gorm:"type:text"`
	ResumeURL    string    `json:"resumeUrl" gorm:"size:512"`
	GithubURL    string    `json:"githubUrl" gorm:"size:512"`
	LinkedinURL  string    `json:"linkedinUrl" gorm:"size:512"`
	TwitterURL   string    `json:"twitterUrl" gorm:"size:512"`
	EmailAddress string    `json:"emailAddress" gorm:"size:255"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName keeps the table name singular; GORM would pluralize it.
func (Settings) TableName() string { return "settings" }
