package model

import "time"

// Skill categories accepted by the API.
const (
	SkillCategoryLanguages = "languages"
	SkillCategoryFrontend  = "frontend"
	SkillCategoryBackend   = "backend"
	SkillCategoryTools     = "tools"
	SkillCategoryOther     = "other"
)

// Skill represents a single technology shown on the skills section.
// Devicon is the devicon.dev class name used for the icon.
type Skill struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Category  string    `json:"category" gorm:"size:50;not null;index"`
	Devicon   string    `json:"devicon" gorm:"size:255"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
