// Package client is a typed Go client for the portfolio API. Once a token is
// set with SetToken it is attached as a bearer credential to every request,
// mirroring how the admin UI talks to the backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx response decoded from the server's {message} body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client talks to a portfolio API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a client for the given base URL (e.g. "http://localhost:5000").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken stores the bearer credential attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the stored bearer credential, if any.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Message != "" {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Health checks server liveness.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// Login exchanges the passcode for a bearer token and stores it on the client.
func (c *Client) Login(ctx context.Context, passcode string) (*LoginResult, error) {
	var res LoginResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{"passcode": passcode}, &res)
	if err != nil {
		return nil, err
	}
	c.token = res.Token
	return &res, nil
}

// Me returns the authenticated admin profile.
func (c *Client) Me(ctx context.Context) (*Admin, error) {
	var admin Admin
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// ChangePasscode replaces the stored admin passcode.
func (c *Client) ChangePasscode(ctx context.Context, newPasscode string) error {
	return c.do(ctx, http.MethodPut, "/api/auth/change-passcode", map[string]string{"newPasscode": newPasscode}, nil)
}

// Projects lists all projects, newest first.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FeaturedProjects lists featured projects only.
func (c *Client) FeaturedProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/api/projects/featured", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Project fetches a single project.
func (c *Client) Project(ctx context.Context, id uint) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d", id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject replaces a project; the input is the full representation.
func (c *Client) UpdateProject(ctx context.Context, id uint, in ProjectInput) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%d", id), in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%d", id), nil, nil)
}

// Skills lists skills via the public read path.
func (c *Client) Skills(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	if err := c.do(ctx, http.MethodGet, "/api/skills", nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// CreateSkill creates a skill.
func (c *Client) CreateSkill(ctx context.Context, in SkillInput) (*Skill, error) {
	var skill Skill
	if err := c.do(ctx, http.MethodPost, "/api/cms/skills", in, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// UpdateSkill replaces a skill.
func (c *Client) UpdateSkill(ctx context.Context, id uint, in SkillInput) (*Skill, error) {
	var skill Skill
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cms/skills/%d", id), in, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// DeleteSkill removes a skill.
func (c *Client) DeleteSkill(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cms/skills/%d", id), nil, nil)
}

// Hero fetches the hero section; an unwritten section decodes as zero values.
func (c *Client) Hero(ctx context.Context) (*Hero, error) {
	var hero Hero
	if err := c.do(ctx, http.MethodGet, "/api/cms/hero", nil, &hero); err != nil {
		return nil, err
	}
	return &hero, nil
}

// UpdateHero creates or replaces the hero section.
func (c *Client) UpdateHero(ctx context.Context, in HeroInput) (*Hero, error) {
	var hero Hero
	if err := c.do(ctx, http.MethodPut, "/api/cms/hero", in, &hero); err != nil {
		return nil, err
	}
	return &hero, nil
}

// About fetches the about section.
func (c *Client) About(ctx context.Context) (*About, error) {
	var about About
	if err := c.do(ctx, http.MethodGet, "/api/cms/about", nil, &about); err != nil {
		return nil, err
	}
	return &about, nil
}

// UpdateAbout creates or replaces the about section.
func (c *Client) UpdateAbout(ctx context.Context, content string) (*About, error) {
	var about About
	if err := c.do(ctx, http.MethodPut, "/api/cms/about", map[string]string{"content": content}, &about); err != nil {
		return nil, err
	}
	return &about, nil
}

// Education lists education entries, most recent first.
func (c *Client) Education(ctx context.Context) ([]EducationEntry, error) {
	var entries []EducationEntry
	if err := c.do(ctx, http.MethodGet, "/api/cms/education", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateEducation creates an education entry.
func (c *Client) CreateEducation(ctx context.Context, in EducationInput) (*EducationEntry, error) {
	var entry EducationEntry
	if err := c.do(ctx, http.MethodPost, "/api/cms/education", in, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEducation replaces an education entry.
func (c *Client) UpdateEducation(ctx context.Context, id uint, in EducationInput) (*EducationEntry, error) {
	var entry EducationEntry
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cms/education/%d", id), in, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteEducation removes an education entry.
func (c *Client) DeleteEducation(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cms/education/%d", id), nil, nil)
}

// SubmitContact submits the public contact form.
func (c *Client) SubmitContact(ctx context.Context, in ContactInput) (*Contact, error) {
	var contact Contact
	if err := c.do(ctx, http.MethodPost, "/api/contacts", in, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// Contacts lists the admin inbox including replies.
func (c *Client) Contacts(ctx context.Context) ([]Contact, error) {
	var contacts []Contact
	if err := c.do(ctx, http.MethodGet, "/api/contacts", nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// UnreadCount returns the number of unread contacts.
func (c *Client) UnreadCount(ctx context.Context) (int64, error) {
	var res struct {
		Count int64 `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/contacts/unread", nil, &res); err != nil {
		return 0, err
	}
	return res.Count, nil
}

// MarkContactRead marks a contact as read.
func (c *Client) MarkContactRead(ctx context.Context, id uint) (*Contact, error) {
	var contact Contact
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/contacts/%d/read", id), nil, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// ReplyToContact appends a reply and returns the updated contact.
func (c *Client) ReplyToContact(ctx context.Context, id uint, message string) (*Contact, error) {
	var contact Contact
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/contacts/%d/reply", id), map[string]string{"message": message}, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// DeleteContact removes a contact and its replies.
func (c *Client) DeleteContact(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/contacts/%d", id), nil, nil)
}

// Settings fetches the site settings.
func (c *Client) Settings(ctx context.Context) (*Settings, error) {
	var settings Settings
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings creates or replaces the site settings.
func (c *Client) UpdateSettings(ctx context.Context, in SettingsInput) (*Settings, error) {
	var settings Settings
	if err := c.do(ctx, http.MethodPut, "/api/settings", in, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
