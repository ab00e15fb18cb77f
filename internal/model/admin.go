package model

import "time"

// Admin is the single operator record. The passcode is a shared plaintext
// secret compared exactly at login; there is no per-user identity.
type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Passcode  string    `json:"-" gorm:"size:255;not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
