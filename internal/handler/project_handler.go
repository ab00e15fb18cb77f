package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	svc service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(svc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ProjectRequest is the full project representation expected on create and
// update. Updates are full-replace: omitted optional fields are cleared.
type ProjectRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	ImageURL     string   `json:"imageUrl" validate:"required"`
	LiveURL      *string  `json:"liveUrl"`
	GithubURL    *string  `json:"githubUrl"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
}

func (r *ProjectRequest) toModel() *model.Project {
	return &model.Project{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		LiveURL:      r.LiveURL,
		GithubURL:    r.GithubURL,
		Technologies: r.Technologies,
		Featured:     r.Featured,
	}
}

// List godoc
// @Summary List projects, newest first
// @Tags projects
// @Produce json
// @Success 200 {array} model.Project
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.svc.List(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, projects)
}

// Featured godoc
// @Summary List featured projects
// @Tags projects
// @Produce json
// @Success 200 {array} model.Project
// @Router /projects/featured [get]
func (h *ProjectHandler) Featured(c echo.Context) error {
	projects, err := h.svc.ListFeatured(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, projects)
}

// Get godoc
// @Summary Get a project by id
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} model.Project
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	project, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, project)
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProjectRequest true "Project"
// @Success 201 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.svc.Create(c.Request().Context(), req.toModel())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusCreated, project)
}

// Update godoc
// @Summary Replace a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body ProjectRequest true "Full project representation"
// @Success 200 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.svc.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, project)
}

// Delete godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Project deleted successfully",
	})
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
