package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// CMSHandler handles hero, about and education content endpoints.
type CMSHandler struct {
	content   service.ContentService
	education service.EducationService
}

// NewCMSHandler creates a new CMS handler.
func NewCMSHandler(content service.ContentService, education service.EducationService) *CMSHandler {
	return &CMSHandler{content: content, education: education}
}

// HeroRequest is the hero section payload.
type HeroRequest struct {
	Name  string   `json:"name" validate:"required"`
	Roles []string `json:"roles"`
}

// AboutRequest is the about section payload.
type AboutRequest struct {
	Content string `json:"content" validate:"required"`
}

// EducationRequest is the education entry payload. Dates are RFC 3339.
type EducationRequest struct {
	Institution  string     `json:"institution" validate:"required"`
	Degree       string     `json:"degree" validate:"required"`
	Field        string     `json:"field" validate:"required"`
	StartDate    time.Time  `json:"startDate" validate:"required"`
	EndDate      *time.Time `json:"endDate"`
	Grade        string     `json:"grade"`
	Achievements []string   `json:"achievements"`
}

func (r *EducationRequest) toModel() *model.Education {
	return &model.Education{
		Institution:  r.Institution,
		Degree:       r.Degree,
		Field:        r.Field,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Grade:        r.Grade,
		Achievements: r.Achievements,
	}
}

// GetHero godoc
// @Summary Get the hero section
// @Tags cms
// @Produce json
// @Success 200 {object} model.HeroSection
// @Router /cms/hero [get]
func (h *CMSHandler) GetHero(c echo.Context) error {
	hero, err := h.content.GetHero(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	if hero == nil {
		// Never-written singleton reads as an empty object, not a 404.
		return c.JSON(http.StatusOK, map[string]interface{}{})
	}
	return c.JSON(http.StatusOK, hero)
}

// UpsertHero godoc
// @Summary Create or replace the hero section
// @Tags cms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body HeroRequest true "Hero content"
// @Success 200 {object} model.HeroSection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /cms/hero [put]
func (h *CMSHandler) UpsertHero(c echo.Context) error {
	var req HeroRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hero, err := h.content.UpsertHero(c.Request().Context(), &model.HeroSection{
		Name:  req.Name,
		Roles: req.Roles,
	})
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, hero)
}

// GetAbout godoc
// @Summary Get the about section
// @Tags cms
// @Produce json
// @Success 200 {object} model.AboutSection
// @Router /cms/about [get]
func (h *CMSHandler) GetAbout(c echo.Context) error {
	about, err := h.content.GetAbout(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	if about == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{})
	}
	return c.JSON(http.StatusOK, about)
}

// UpsertAbout godoc
// @Summary Create or replace the about section
// @Tags cms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AboutRequest true "About content"
// @Success 200 {object} model.AboutSection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /cms/about [put]
func (h *CMSHandler) UpsertAbout(c echo.Context) error {
	var req AboutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	about, err := h.content.UpsertAbout(c.Request().Context(), &model.AboutSection{
		Content: req.Content,
	})
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, about)
}

// ListEducation godoc
// @Summary List education entries, most recent first
// @Tags cms
// @Produce json
// @Success 200 {array} model.Education
// @Router /cms/education [get]
func (h *CMSHandler) ListEducation(c echo.Context) error {
	entries, err := h.education.List(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, entries)
}

// CreateEducation godoc
// @Summary Create an education entry
// @Tags cms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EducationRequest true "Education entry"
// @Success 201 {object} model.Education
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /cms/education [post]
func (h *CMSHandler) CreateEducation(c echo.Context) error {
	var req EducationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.education.Create(c.Request().Context(), req.toModel())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusCreated, entry)
}

// UpdateEducation godoc
// @Summary Replace an education entry
// @Tags cms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Education ID"
// @Param request body EducationRequest true "Education entry"
// @Success 200 {object} model.Education
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cms/education/{id} [put]
func (h *CMSHandler) UpdateEducation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req EducationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.education.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, entry)
}

// DeleteEducation godoc
// @Summary Delete an education entry
// @Tags cms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Education ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cms/education/{id} [delete]
func (h *CMSHandler) DeleteEducation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.education.Delete(c.Request().Context(), id); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Education entry deleted successfully",
	})
}
