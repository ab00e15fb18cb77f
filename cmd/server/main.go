package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/docs"
	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/handler"
	"portfolio/internal/mail"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/router"
	"portfolio/internal/service"
)

// @title Portfolio API
// @version 1.0
// @description Portfolio site backend with admin CMS, contact inbox, and passcode authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	if cfg.JWTSecret == "" {
		// Known weakness carried over from the original deployment model.
		log.Println("WARNING: JWT_SECRET not set, using the fallback secret; tokens are forgeable")
		cfg.JWTSecret = auth.FallbackSecret
	}
	// Tokens are not revocable server-side; a leaked token stays valid for
	// the full 24h window.

	e := echo.New()
	e.HideBanner = true

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.Project{},
		&model.Skill{},
		&model.Contact{},
		&model.Reply{},
		&model.HeroSection{},
		&model.AboutSection{},
		&model.Settings{},
		&model.Education{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	tokens := auth.NewService(cfg.JWTSecret)
	mailer := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFromName, cfg.SMTPFromEmail)

	// Repositories
	adminRepo := repository.NewAdminRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	skillRepo := repository.NewSkillRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)
	heroRepo := repository.NewHeroRepository(gormDB)
	aboutRepo := repository.NewAboutRepository(gormDB)
	settingsRepo := repository.NewSettingsRepository(gormDB)
	educationRepo := repository.NewEducationRepository(gormDB)

	// Services
	authService := service.NewAuthService(adminRepo, tokens)
	projectService := service.NewProjectService(projectRepo, cacheClient)
	skillService := service.NewSkillService(skillRepo, cacheClient)
	contactService := service.NewContactService(contactRepo, mailer, cfg.SMTPFromName)
	contentService := service.NewContentService(heroRepo, aboutRepo, cacheClient)
	settingsService := service.NewSettingsService(settingsRepo, cacheClient)
	educationService := service.NewEducationService(educationRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	skillHandler := handler.NewSkillHandler(skillService)
	contactHandler := handler.NewContactHandler(contactService)
	cmsHandler := handler.NewCMSHandler(contentService, educationService)
	settingsHandler := handler.NewSettingsHandler(settingsService, authService)

	router.Register(
		e,
		cfg,
		authHandler,
		projectHandler,
		skillHandler,
		contactHandler,
		cmsHandler,
		settingsHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Printf("Server is running on port %s", cfg.ServerPort)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
