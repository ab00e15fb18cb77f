package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/service"
)

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	svc service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// ReplyRequest is the admin reply payload.
type ReplyRequest struct {
	Message string `json:"message" validate:"required"`
}

// UnreadCountResponse carries the unread contact count.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// Submit godoc
// @Summary Submit a contact message
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Message"
// @Success 201 {object} model.Contact
// @Failure 400 {object} errors.ErrorResponse
// @Router /contacts [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := h.svc.Submit(c.Request().Context(), req.Name, req.Email, req.Message)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusCreated, contact)
}

// List godoc
// @Summary List contacts with replies, newest first
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Contact
// @Failure 401 {object} errors.ErrorResponse
// @Router /contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.svc.List(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, contacts)
}

// UnreadCount godoc
// @Summary Count unread contacts
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UnreadCountResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /contacts/unread [get]
func (h *ContactHandler) UnreadCount(c echo.Context) error {
	count, err := h.svc.UnreadCount(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, UnreadCountResponse{Count: count})
}

// MarkRead godoc
// @Summary Mark a contact as read
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} model.Contact
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{id}/read [put]
func (h *ContactHandler) MarkRead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	contact, err := h.svc.MarkRead(c.Request().Context(), id)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, contact)
}

// Reply godoc
// @Summary Reply to a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Param request body ReplyRequest true "Reply"
// @Success 200 {object} model.Contact
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{id}/reply [post]
func (h *ContactHandler) Reply(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req ReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := h.svc.Reply(c.Request().Context(), id, req.Message)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, contact)
}

// Delete godoc
// @Summary Delete a contact and its replies
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Contact deleted successfully",
	})
}
