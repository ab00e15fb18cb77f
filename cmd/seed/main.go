package main

import (
	"context"
	"log"
	"os"

	"gorm.io/gorm"

	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

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
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedAdmin(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if err := seedContent(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}
	if err := seedProjects(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed projects: %v", err)
	}
	if err := seedSkills(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed skills: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// seedAdmin ensures the single operator record exists. The passcode comes
// from ADMIN_PASSCODE; an existing record is never overwritten.
func seedAdmin(ctx context.Context, gormDB *gorm.DB) error {
	repo := repository.NewAdminRepository(gormDB)

	if _, err := repo.First(ctx); err == nil {
		log.Println("Admin record already present, skipping")
		return nil
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	admin := &model.Admin{
		Passcode: envOr("ADMIN_PASSCODE", "admin123"),
		Name:     envOr("ADMIN_NAME", "Admin"),
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created admin %q (id %d)", admin.Name, admin.ID)
	return nil
}

func seedContent(ctx context.Context, gormDB *gorm.DB) error {
	heroRepo := repository.NewHeroRepository(gormDB)
	if hero, err := heroRepo.Get(ctx); err != nil {
		return err
	} else if hero == nil {
		if err := heroRepo.Upsert(ctx, &model.HeroSection{
			Name:  envOr("ADMIN_NAME", "Admin"),
			Roles: []string{"Full Stack Developer"},
		}); err != nil {
			return err
		}
		log.Println("Created hero section")
	}

	aboutRepo := repository.NewAboutRepository(gormDB)
	if about, err := aboutRepo.Get(ctx); err != nil {
		return err
	} else if about == nil {
		if err := aboutRepo.Upsert(ctx, &model.AboutSection{
			Content: "Tell visitors about yourself here.",
		}); err != nil {
			return err
		}
		log.Println("Created about section")
	}

	settingsRepo := repository.NewSettingsRepository(gormDB)
	if settings, err := settingsRepo.Get(ctx); err != nil {
		return err
	} else if settings == nil {
		if err := settingsRepo.Upsert(ctx, &model.Settings{}); err != nil {
			return err
		}
		log.Println("Created settings record")
	}

	return nil
}

func seedProjects(ctx context.Context, gormDB *gorm.DB) error {
	repo := repository.NewProjectRepository(gormDB)

	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("Projects already present (%d), skipping", len(existing))
		return nil
	}

	live := "https://example.com"
	github := "https://github.com/example/portfolio"
	sample := []model.Project{
		{
			Title:        "Portfolio Website",
			Description:  "This site: a public portfolio with an admin CMS behind passcode login.",
			ImageURL:     "/images/portfolio.png",
			LiveURL:      &live,
			GithubURL:    &github,
			Technologies: []string{"Go", "Echo", "MySQL", "React"},
			Featured:     true,
		},
	}
	for i := range sample {
		if err := repo.Create(ctx, &sample[i]); err != nil {
			return err
		}
	}
	log.Printf("Created %d sample projects", len(sample))
	return nil
}

func seedSkills(ctx context.Context, gormDB *gorm.DB) error {
	repo := repository.NewSkillRepository(gormDB)

	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("Skills already present (%d), skipping", len(existing))
		return nil
	}

	sample := []model.Skill{
		{Name: "Go", Category: model.SkillCategoryLanguages, Devicon: "devicon-go-original-wordmark"},
		{Name: "TypeScript", Category: model.SkillCategoryLanguages, Devicon: "devicon-typescript-plain"},
		{Name: "React", Category: model.SkillCategoryFrontend, Devicon: "devicon-react-original"},
		{Name: "MySQL", Category: model.SkillCategoryBackend, Devicon: "devicon-mysql-plain"},
		{Name: "Docker", Category: model.SkillCategoryTools, Devicon: "devicon-docker-plain"},
	}
	for i := range sample {
		if err := repo.Create(ctx, &sample[i]); err != nil {
			return err
		}
	}
	log.Printf("Created %d sample skills", len(sample))
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
