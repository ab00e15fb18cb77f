package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Passcode string `json:"passcode" validate:"required"`
}

// ChangePasscodeRequest is the passcode change payload.
type ChangePasscodeRequest struct {
	NewPasscode string `json:"newPasscode" validate:"required"`
}

// AdminInfo is the public projection of the admin record.
type AdminInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string    `json:"token"`
	Admin AdminInfo `json:"admin"`
}

// Login godoc
// @Summary Log in with the admin passcode
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Passcode"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, admin, err := h.authService.Login(c.Request().Context(), req.Passcode)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Admin: AdminInfo{ID: admin.ID, Name: admin.Name},
	})
}

// Me godoc
// @Summary Get the authenticated admin profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Admin
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := adminID(c)
	if err != nil {
		return err
	}

	admin, err := h.authService.GetAdmin(c.Request().Context(), id)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}

	return c.JSON(http.StatusOK, admin)
}

// ChangePasscode godoc
// @Summary Change the admin passcode
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasscodeRequest true "New passcode"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/change-passcode [put]
func (h *AuthHandler) ChangePasscode(c echo.Context) error {
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

	if _, err := h.authService.ChangePasscode(c.Request().Context(), id, req.NewPasscode); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Passcode updated successfully",
	})
}
