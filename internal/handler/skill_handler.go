package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// SkillHandler handles skill endpoints. List serves both the public
// /api/skills alias and the protected /api/cms/skills admin listing.
type SkillHandler struct {
	svc service.SkillService
}

// NewSkillHandler creates a new skill handler.
func NewSkillHandler(svc service.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

// SkillRequest is the skill payload for create and update.
type SkillRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required,oneof=languages frontend backend tools other"`
	Devicon  string `json:"devicon"`
}

// List godoc
// @Summary List skills sorted by category
// @Tags skills
// @Produce json
// @Success 200 {array} model.Skill
// @Router /skills [get]
func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.svc.List(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, skills)
}

// Create godoc
// @Summary Create a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SkillRequest true "Skill"
// @Success 201 {object} model.Skill
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /cms/skills [post]
func (h *SkillHandler) Create(c echo.Context) error {
	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.svc.Create(c.Request().Context(), &model.Skill{
		Name:     req.Name,
		Category: req.Category,
		Devicon:  req.Devicon,
	})
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusCreated, skill)
}

// Update godoc
// @Summary Replace a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Param request body SkillRequest true "Skill"
// @Success 200 {object} model.Skill
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cms/skills/{id} [put]
func (h *SkillHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.svc.Update(c.Request().Context(), id, &model.Skill{
		Name:     req.Name,
		Category: req.Category,
		Devicon:  req.Devicon,
	})
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, skill)
}

// Delete godoc
// @Summary Delete a skill
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cms/skills/{id} [delete]
func (h *SkillHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Skill deleted successfully",
	})
}
