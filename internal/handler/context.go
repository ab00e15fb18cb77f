package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"portfolio/internal/auth"
)

// adminID extracts the authenticated admin id the JWT middleware attached to
// the request context. A gate-protected route should always carry it; the
// unauthorized fallback covers misconfigured routes.
func adminID(c echo.Context) (uint, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return claims.AdminID, nil
}
