package model

import "time"

// Contact represents a message submitted through the public contact form.
// A contact starts unread and flips to read either explicitly or as a side
// effect of a reply being added.
type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Read      bool      `json:"read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"createdAt"`

	// Replies are append-only, ordered by creation time, and live and die
	// with the parent contact.
	Replies []Reply `json:"replies,omitempty" gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
}

// Reply is an admin response attached to a contact.
type Reply struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ContactID uint      `json:"contactId" gorm:"not null;index"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
