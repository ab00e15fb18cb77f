package router

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/handler"
)

// Register wires routes and middleware. The public/protected split below is
// the complete gate table: everything inside the secured group requires a
// valid bearer token, everything outside it is reachable anonymously.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	skillHandler *handler.SkillHandler,
	contactHandler *handler.ContactHandler,
	cmsHandler *handler.CMSHandler,
	settingsHandler *handler.SettingsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.GET("/projects", projectHandler.List)
	api.GET("/projects/featured", projectHandler.Featured)
	api.GET("/projects/:id", projectHandler.Get)
	api.GET("/skills", skillHandler.List)
	api.GET("/cms/hero", cmsHandler.GetHero)
	api.GET("/cms/about", cmsHandler.GetAbout)
	api.GET("/cms/education", cmsHandler.ListEducation)
	api.POST("/contacts", contactHandler.Submit)
	api.GET("/settings", settingsHandler.Get)

	// Gate-protected routes
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// The cause stays in the server log; clients always see the
			// same unauthorized response.
			log.Printf("auth: rejected %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		},
	}))

	secured.GET("/auth/me", authHandler.Me)
	secured.PUT("/auth/change-passcode", authHandler.ChangePasscode)

	secured.POST("/projects", projectHandler.Create)
	secured.PUT("/projects/:id", projectHandler.Update)
	secured.DELETE("/projects/:id", projectHandler.Delete)

	secured.GET("/cms/skills", skillHandler.List)
	secured.POST("/cms/skills", skillHandler.Create)
	secured.PUT("/cms/skills/:id", skillHandler.Update)
	secured.DELETE("/cms/skills/:id", skillHandler.Delete)

	secured.PUT("/cms/hero", cmsHandler.UpsertHero)
	secured.PUT("/cms/about", cmsHandler.UpsertAbout)
	secured.POST("/cms/education", cmsHandler.CreateEducation)
	secured.PUT("/cms/education/:id", cmsHandler.UpdateEducation)
	secured.DELETE("/cms/education/:id", cmsHandler.DeleteEducation)

	secured.GET("/contacts", contactHandler.List)
	secured.GET("/contacts/unread", contactHandler.UnreadCount)
	secured.PUT("/contacts/:id/read", contactHandler.MarkRead)
	secured.POST("/contacts/:id/reply", contactHandler.Reply)
	secured.DELETE("/contacts/:id", contactHandler.Delete)

	secured.PUT("/settings", settingsHandler.Upsert)
	secured.PUT("/settings/change-passcode", settingsHandler.ChangePasscode)
	secured.GET("/settings/verify-passcode", settingsHandler.VerifyPasscode)
}

// errorHandler renders every error as {"message": ...}. Uncaught errors
// collapse into a generic 500; their detail is logged server-side only.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Something went wrong!"

	switch e := err.(type) {
	case *echo.HTTPError:
		status = e.Code
		if m, ok := e.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	case *apperrors.HTTPError:
		status = e.StatusCode
		message = e.Message
	default:
		log.Printf("router: unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, apperrors.ErrorResponse{Message: message})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
