package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// SettingsHandler handles the settings singleton plus the passcode routes
// that historically live under /settings.
type SettingsHandler struct {
	settings service.SettingsService
	auth     service.AuthService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settings service.SettingsService, auth service.AuthService) *SettingsHandler {
	return &SettingsHandler{settings: settings, auth: auth}
}

// SettingsRequest is the full settings payload; updates are full-replace.
type SettingsRequest struct {
	AboutText    string `json:"aboutText"`
	ResumeURL    string `json:"resumeUrl"`
	GithubURL    string `json:"githubUrl"`
	LinkedinURL  string `json:"linkedinUrl"`
	TwitterURL   string `json:"twitterUrl"`
	EmailAddress string `json:"emailAddress" validate:"omitempty,email"`
}

// Get godoc
// @Summary Get site settings
// @Tags settings
// @Produce json
// @Success 200 {object} model.Settings
// @Router /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settings.Get(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	if settings == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{})
	}
	return c.JSON(http.StatusOK, settings)
}

// Upsert godoc
// @Summary Create or replace site settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SettingsRequest true "Settings"
// @Success 200 {object} model.Settings
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /settings [put]
func (h *SettingsHandler) Upsert(c echo.Context) error {
	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	settings, err := h.settings.Upsert(c.Request().Context(), &model.Settings{
		AboutText:    req.AboutText,
		ResumeURL:    req.ResumeURL,
		GithubURL:    req.GithubURL,
		LinkedinURL:  req.LinkedinURL,
		TwitterURL:   req.TwitterURL,
		EmailAddress: req.EmailAddress,
	})
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, settings)
}

// ChangePasscode godoc
// @Summary Change the admin passcode
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasscodeRequest true "New passcode"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /settings/change-passcode [put]
func (h *SettingsHandler) ChangePasscode(c echo.Context) error {
	id, err := adminID(c)
	if err != nil {
		return err
	}

	var req ChangePasscodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	admin, err := h.auth.ChangePasscode(c.Request().Context(), id, req.NewPasscode)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Passcode updated successfully",
		"admin":   AdminInfo{ID: admin.ID, Name: admin.Name},
	})
}

// VerifyPasscode godoc
// @Summary Return the current passcode (testing aid)
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /settings/verify-passcode [get]
func (h *SettingsHandler) VerifyPasscode(c echo.Context) error {
	id, err := adminID(c)
	if err != nil {
		return err
	}

	admin, err := h.auth.GetAdmin(c.Request().Context(), id)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Current passcode retrieved",
		"admin": map[string]interface{}{
			"id":       admin.ID,
			"name":     admin.Name,
			"passcode": admin.Passcode,
		},
	})
}
