package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/handler"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/service"
)

const testSecret = "test-secret"

// stubSender records outgoing mail; result controls the reported outcome.
type stubSender struct {
	result bool
	sent   []string
}

func (s *stubSender) Send(to, subject, textBody, htmlBody string) bool {
	s.sent = append(s.sent, to)
	return s.result
}

type testServer struct {
	e      *echo.Echo
	db     *gorm.DB
	sender *stubSender
}

// newTestServer wires the full application against an in-memory database.
// The cache is nil, which behaves like a permanently empty cache.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Admin{},
		&model.Project{},
		&model.Skill{},
		&model.Contact{},
		&model.Reply{},
		&model.HeroSection{},
		&model.AboutSection{},
		&model.Education{},
		&model.Settings{},
	))

	sender := &stubSender{result: true}
	tokens := auth.NewService(testSecret)

	authService := service.NewAuthService(repository.NewAdminRepository(db), tokens)
	projectService := service.NewProjectService(repository.NewProjectRepository(db), nil)
	skillService := service.NewSkillService(repository.NewSkillRepository(db), nil)
	contactService := service.NewContactService(repository.NewContactRepository(db), sender, "Jane")
	contentService := service.NewContentService(repository.NewHeroRepository(db), repository.NewAboutRepository(db), nil)
	educationService := service.NewEducationService(repository.NewEducationRepository(db), nil)
	settingsService := service.NewSettingsService(repository.NewSettingsRepository(db), nil)

	e := echo.New()
	Register(e, &config.Config{JWTSecret: testSecret},
		handler.NewAuthHandler(authService),
		handler.NewProjectHandler(projectService),
		handler.NewSkillHandler(skillService),
		handler.NewContactHandler(contactService),
		handler.NewCMSHandler(contentService, educationService),
		handler.NewSettingsHandler(settingsService, authService),
	)

	return &testServer{e: e, db: db, sender: sender}
}

func (ts *testServer) seedAdmin(t *testing.T, passcode string) *model.Admin {
	t.Helper()
	admin := &model.Admin{Passcode: passcode, Name: "Admin"}
	require.NoError(t, ts.db.Create(admin).Error)
	return admin
}

func (ts *testServer) token(t *testing.T, adminID uint) string {
	t.Helper()
	token, err := auth.NewService(testSecret).Issue(adminID)
	require.NoError(t, err)
	return token
}

func (ts *testServer) request(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateFailsClosed(t *testing.T) {
	ts := newTestServer(t)
	ts.seedAdmin(t, "secret123")

	body := `{"title":"X","description":"d","imageUrl":"http://img"}`

	cases := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "not-a-jwt"},
		{"wrong secret", func() string {
			s, _ := auth.NewService("other-secret").Issue(1)
			return s
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := ts.request(http.MethodPost, "/api/projects", tc.token, body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var resp map[string]string
			decode(t, rec, &resp)
			assert.Equal(t, "unauthorized", resp["message"])
		})
	}

	// The rejected writes must not have touched storage.
	var count int64
	require.NoError(t, ts.db.Model(&model.Project{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGateRejectsExpiredToken(t *testing.T) {
	ts := newTestServer(t)
	ts.seedAdmin(t, "secret123")

	past := time.Now().Add(-48 * time.Hour)
	claims := &auth.Claims{
		AdminID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past.Add(auth.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(past),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := ts.request(http.MethodGet, "/api/auth/me", expired, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginFlow(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.seedAdmin(t, "secret123")

	rec := ts.request(http.MethodPost, "/api/auth/login", "", `{"passcode":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var errResp map[string]string
	decode(t, rec, &errResp)
	assert.Equal(t, "invalid passcode", errResp["message"])

	rec = ts.request(http.MethodPost, "/api/auth/login", "", `{"passcode":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var loginResp struct {
		Token string `json:"token"`
		Admin struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"admin"`
	}
	decode(t, rec, &loginResp)
	assert.NotEmpty(t, loginResp.Token)
	assert.Equal(t, admin.ID, loginResp.Admin.ID)

	// The issued token opens the gate.
	rec = ts.request(http.MethodGet, "/api/auth/me", loginResp.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var me model.Admin
	decode(t, rec, &me)
	assert.Equal(t, admin.ID, me.ID)
	assert.Equal(t, "Admin", me.Name)
}

func TestLoginValidation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodPost, "/api/auth/login", "", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangePasscode(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.seedAdmin(t, "secret123")
	token := ts.token(t, admin.ID)

	// Too short: rejected, stored passcode untouched.
	rec := ts.request(http.MethodPut, "/api/auth/change-passcode", token, `{"newPasscode":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.request(http.MethodPost, "/api/auth/login", "", `{"passcode":"secret123"}`)
	assert.Equal(t, http.StatusOK, rec.Code, "old passcode must still work after a rejected change")

	// Valid change: old passcode stops working, new one logs in.
	rec = ts.request(http.MethodPut, "/api/auth/change-passcode", token, `{"newPasscode":"newsecret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodPost, "/api/auth/login", "", `{"passcode":"secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.request(http.MethodPost, "/api/auth/login", "", `{"passcode":"newsecret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Re-submitting the current passcode is accepted as a no-op write.
	rec = ts.request(http.MethodPut, "/api/auth/change-passcode", token, `{"newPasscode":"newsecret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The already-issued token stays valid; there is no revocation.
	rec = ts.request(http.MethodGet, "/api/auth/me", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProjectCRUDAndFeaturedFilter(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.seedAdmin(t, "secret123")
	token := ts.token(t, admin.ID)

	create := func(title string, featured bool) *httptest.ResponseRecorder {
		body := fmt.Sprintf(`{"title":%q,"description":"d","imageUrl":"http://img","technologies":["Go"],"featured":%v}`, title, featured)
		return ts.request(http.MethodPost, "/api/projects", token, body)
	}

	rec := create("Plain", false)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.Project
	decode(t, rec, &created)
	require.NotZero(t, created.ID)
	assert.Equal(t, []string{"Go"}, created.Technologies)

	rec = create("Starred", true)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Public listing sees both, the featured filter only one.
	rec = ts.request(http.MethodGet, "/api/projects", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []model.Project
	decode(t, rec, &all)
	assert.Len(t, all, 2)

	rec = ts.request(http.MethodGet, "/api/projects/featured", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var featured []model.Project
	decode(t, rec, &featured)
	require.Len(t, featured, 1)
	assert.Equal(t, "Starred", featured[0].Title)

	// Full-replace update clears omitted optional fields.
	body := `{"title":"Renamed","description":"d2","imageUrl":"http://img2"}`
	rec = ts.request(http.MethodPut, fmt.Sprintf("/api/projects/%d", created.ID), token, body)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated model.Project
	decode(t, rec, &updated)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Empty(t, updated.Technologies)
	assert.False(t, updated.Featured)

	rec = ts.request(http.MethodGet, fmt.Sprintf("/api/projects/%d", created.ID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodDelete, fmt.Sprintf("/api/projects/%d", created.ID), token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodGet, fmt.Sprintf("/api/projects/%d", created.ID), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var errResp map[string]string
	decode(t, rec, &errResp)
	assert.Equal(t, "project not found", errResp["message"])
}

func TestFeaturedProjectCap(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.seedAdmin(t, "secret123")
	token := ts.token(t, admin.ID)

	for i := 0; i < 6; i++ {
		body := fmt.Sprintf(`{"title":"P%d","description":"d","imageUrl":"http://img","featured":true}`, i)
		rec := ts.request(http.MethodPost, "/api/projects", token, body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := ts.request(http.MethodPost, "/api/projects", token,
		`{"title":"P7","description":"d","imageUrl":"http://img","featured":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp map[string]string
	decode(t, rec, &errResp)
	assert.Equal(t, "no more than 6 projects can be featured", errResp["message"])

	// A non-featured create still goes through.
	rec = ts.request(http.MethodPost, "/api/projects", token,
		`{"title":"P7","description":"d","imageUrl":"http://img"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Updating an already-featured project keeps working at the cap.
	rec = ts.request(http.MethodPut, "/api/projects/1", token,
		`{"title":"P0 renamed","description":"d","imageUrl":"http://img","featured":true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSkillRoutes(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.seedAdmin(t, "secret123")
	token := ts.token(t, admin.ID)

	rec := ts.request(http.MethodPost, "/api/cms/skills", token,
		`{"name":"Go","category":"backend","devicon":"devicon-go-plain"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var skill model.Skill
	decode(t, rec, &skill)

	// Unknown category is rejected by validation.
	rec = ts.request(http.MethodPost, "/api/cms/skills", token,
		`{"name":"X","category":"wizardry"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Public and admin listings serve the same data.
	rec = ts.request(http.MethodGet, "/api/skills", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var public []model.Skill
	decode(t, rec, &public)
	assert.Len(t, public, 1)

	rec = ts.request(http.MethodGet, "/api/cms/skills", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodPut, fmt.Sprintf("/api/cms/skills/%d", skill.ID), token,
		`{"name":"Golang","category":"languages"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated model.Skill
	decode(t, rec, &updated)
	assert.Equal(t, "Golang", updated.Name)
	assert.Equal(t, "languages", updated.Category)
	assert.Empty(t, updated.Devicon)

	rec = ts.request(http.MethodDelete, fmt.Sprintf("/api/cms/skills/%d", skill.ID), token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodDelete, fmt.Sprintf("/api/cms/skills/%d", skill.ID), token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContactLifecycle(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.seedAdmin(t, "secret123")
	token := ts.token(t, admin.ID)

	// Mail delivery fails throughout; nothing below may care.
	ts.sender.result = false

	rec := ts.request(http.MethodPost, "/api/contacts", "",
		`{"name":"Visitor","email":"visitor@example.com","message":"Hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var contact model.Contact
	decode(t, rec, &contact)
	assert.False(t, contact.Read)
	assert.Len(t, ts.sender.sent, 1)

	// Invalid email never reaches storage.
	rec = ts.request(http.MethodPost, "/api/contacts", "",
		`{"name":"Visitor","email":"not-an-email","message":"Hello"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.request(http.MethodGet, "/api/contacts/unread", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var unread struct {
		Count int64 `json:"count"`
	}
	decode(t, rec, &unread)
	assert.Equal(t, int64(1), unread.Count)

	// Replying appends the reply, flips read, and attempts notification.
	rec = ts.request(http.MethodPost, fmt.Sprintf("/api/contacts/%d/reply", contact.ID), token,
		`{"message":"Thanks for reaching out"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var replied model.Contact
	decode(t, rec, &replied)
	assert.True(t, replied.Read)
	require.Len(t, replied.Replies, 1)
	assert.Equal(t, "Thanks for reaching out", replied.Replies[0].Message)
	assert.Len(t, ts.sender.sent, 2)

	rec = ts.request(http.MethodGet, "/api/contacts/unread", token, "")
	decode(t, rec, &unread)
	assert.Zero(t, unread.Count)

	// A second reply keeps chronological order.
	rec = ts.request(http.MethodPost, fmt.Sprintf("/api/contacts/%d/reply", contact.ID), token,
		`{"message":"Following up"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &replied)
	require.Len(t, replied.Replies, 2)
	assert.Equal(t, "Thanks for reaching out", replied.Replies[0].Message)
	assert.Equal(t, "Following up", replied.Replies[1].Message)

	// Deleting the contact removes its replies too.
	rec = ts.request(http.MethodDelete, fmt.Sprintf("/api/contacts/%d", contact.ID), token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var replyCount int64
	require.NoError(t, ts.db.Model(&model.Reply{}).Count(&replyCount).Error)
	assert.Zero(t, replyCount)

	rec = ts.request(http.MethodDelete, fmt.Sprintf("/api/contacts/%d", contact.ID), token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkContactRead(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.seedAdmin(t, "secret123")
	token := ts.token(t, admin.ID)

	rec := ts.request(http.MethodPost, "/api/contacts", "",
		`{"name":"Visitor","email":"visitor@example.com","message":"Hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var contact model.Contact
	decode(t, rec, &contact)

	rec = ts.request(http.MethodPut, fmt.Sprintf("/api/contacts/%d/read", contact.ID), token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var marked model.Contact
	decode(t, rec, &marked)
	assert.True(t, marked.Read)

	// Bulk mark-as-read in the admin UI hits already-read contacts too;
	// a repeat must succeed, not 404.
	rec = ts.request(http.MethodPut, fmt.Sprintf("/api/contacts/%d/read", contact.ID), token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &marked)
	assert.True(t, marked.Read)

	rec = ts.request(http.MethodPut, "/api/contacts/999/read", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHeroSingletonUpsert(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.seedAdmin(t, "secret123")
	token := ts.token(t, admin.ID)

	// Never written: empty object, not a 404.
	rec := ts.request(http.MethodGet, "/api/cms/hero", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = ts.request(http.MethodPut, "/api/cms/hero", token,
		`{"name":"Jane Doe","roles":["Engineer","Speaker"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var hero model.HeroSection
	decode(t, rec, &hero)
	assert.Equal(t, model.SingletonID, hero.ID)
	assert.Equal(t, []string{"Engineer", "Speaker"}, hero.Roles)

	// A second upsert replaces in place; still one row, same id.
	rec = ts.request(http.MethodPut, "/api/cms/hero", token,
		`{"name":"Jane Doe","roles":["Engineer"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &hero)
	assert.Equal(t, model.SingletonID, hero.ID)
	assert.Equal(t, []string{"Engineer"}, hero.Roles)

	var count int64
	require.NoError(t, ts.db.Model(&model.HeroSection{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAboutSingletonUpsert(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.seedAdmin(t, "secret123")
	token := ts.token(t, admin.ID)

	rec := ts.request(http.MethodGet, "/api/cms/about", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	for _, content := range []string{"First version", "Second version"} {
		rec = ts.request(http.MethodPut, "/api/cms/about", token,
			fmt.Sprintf(`{"content":%q}`, content))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = ts.request(http.MethodGet, "/api/cms/about", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var about model.AboutSection
	decode(t, rec, &about)
	assert.Equal(t, "Second version", about.Content)

	var count int64
	require.NoError(t, ts.db.Model(&model.AboutSection{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSettingsSingletonUpsert(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.seedAdmin(t, "secret123")
	token := ts.token(t, admin.ID)

	rec := ts.request(http.MethodGet, "/api/settings", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = ts.request(http.MethodPut, "/api/settings", token,
		`{"githubUrl":"https://github.com/janedoe","emailAddress":"jane@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Full replace: omitting a field clears it.
	rec = ts.request(http.MethodPut, "/api/settings", token,
		`{"githubUrl":"https://github.com/janedoe"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var settings model.Settings
	decode(t, rec, &settings)
	assert.Equal(t, "https://github.com/janedoe", settings.GithubURL)
	assert.Empty(t, settings.EmailAddress)

	var count int64
	require.NoError(t, ts.db.Model(&model.Settings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Malformed email is rejected.
	rec = ts.request(http.MethodPut, "/api/settings", token, `{"emailAddress":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEducationRoutes(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.seedAdmin(t, "secret123")
	token := ts.token(t, admin.ID)

	rec := ts.request(http.MethodPost, "/api/cms/education", token,
		`{"institution":"MIT","degree":"BSc","field":"CS","startDate":"2015-09-01T00:00:00Z","endDate":"2019-06-01T00:00:00Z","achievements":["Dean's list"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var older model.Education
	decode(t, rec, &older)

	rec = ts.request(http.MethodPost, "/api/cms/education", token,
		`{"institution":"Stanford","degree":"MSc","field":"CS","startDate":"2020-09-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Listing is public and ordered by start date, most recent first.
	rec = ts.request(http.MethodGet, "/api/cms/education", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []model.Education
	decode(t, rec, &entries)
	require.Len(t, entries, 2)
	assert.Equal(t, "Stanford", entries[0].Institution)
	assert.Equal(t, "MIT", entries[1].Institution)
	assert.Nil(t, entries[0].EndDate)

	rec = ts.request(http.MethodPut, fmt.Sprintf("/api/cms/education/%d", older.ID), token,
		`{"institution":"MIT","degree":"BEng","field":"CS","startDate":"2015-09-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated model.Education
	decode(t, rec, &updated)
	assert.Equal(t, "BEng", updated.Degree)
	assert.Nil(t, updated.EndDate)
	assert.Empty(t, updated.Achievements)

	rec = ts.request(http.MethodDelete, fmt.Sprintf("/api/cms/education/%d", older.ID), token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodDelete, fmt.Sprintf("/api/cms/education/%d", older.ID), token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyPasscodeExposesSecret(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.seedAdmin(t, "secret123")
	token := ts.token(t, admin.ID)

	rec := ts.request(http.MethodGet, "/api/settings/verify-passcode", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Admin struct {
			Passcode string `json:"passcode"`
		} `json:"admin"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "secret123", resp.Admin.Passcode)
}

func TestPathIDValidation(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.seedAdmin(t, "secret123")
	token := ts.token(t, admin.ID)

	for _, path := range []string{"/api/projects/abc", "/api/projects/0", "/api/projects/-1"} {
		rec := ts.request(http.MethodDelete, path, token, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "path %s", path)
	}
}
