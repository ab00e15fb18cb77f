package client

import "time"

// Admin is the admin profile returned by the API.
type Admin struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResult is the successful login response.
type LoginResult struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

// Project mirrors the API project representation.
type Project struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	LiveURL      *string   `json:"liveUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Technologies []string  `json:"technologies"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProjectInput is the full project payload for create and update.
type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	LiveURL      *string  `json:"liveUrl,omitempty"`
	GithubURL    *string  `json:"githubUrl,omitempty"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
}

// Skill mirrors the API skill representation.
type Skill struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Devicon   string    `json:"devicon"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SkillInput is the skill payload for create and update.
type SkillInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Devicon  string `json:"devicon"`
}

// Contact mirrors the API contact representation.
type Contact struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	Replies   []Reply   `json:"replies,omitempty"`
}

// Reply is an admin reply on a contact.
type Reply struct {
	ID        uint      `json:"id"`
	ContactID uint      `json:"contactId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Hero mirrors the hero section.
type Hero struct {
	ID    uint     `json:"id"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// HeroInput is the hero section payload.
type HeroInput struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// About mirrors the about section.
type About struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

// EducationEntry mirrors an education history entry.
type EducationEntry struct {
	ID           uint       `json:"id"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	Field        string     `json:"field"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Grade        string     `json:"grade"`
	Achievements []string   `json:"achievements"`
}

// EducationInput is the education entry payload.
type EducationInput struct {
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	Field        string     `json:"field"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Grade        string     `json:"grade"`
	Achievements []string   `json:"achievements"`
}

// Settings mirrors the site settings.
type Settings struct {
	ID           uint   `json:"id"`
	AboutText    string `json:"aboutText"`
	ResumeURL    string `json:"resumeUrl"`
	GithubURL    string `json:"githubUrl"`
	LinkedinURL  string `json:"linkedinUrl"`
	TwitterURL   string `json:"twitterUrl"`
	EmailAddress string `json:"emailAddress"`
}

// SettingsInput is the full settings payload.
type SettingsInput struct {
	AboutText    string `json:"aboutText"`
	ResumeURL    string `json:"resumeUrl"`
	GithubURL    string `json:"githubUrl"`
	LinkedinURL  string `json:"linkedinUrl"`
	TwitterURL   string `json:"twitterUrl"`
	EmailAddress string `json:"emailAddress"`
}
