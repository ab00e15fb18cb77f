package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio/internal/model"
)

// HeroRepository persists the singleton hero section.
type HeroRepository interface {
	// Get returns the hero row, or nil when none exists yet.
	Get(ctx context.Context) (*model.HeroSection, error)
	// Upsert creates or replaces the singleton row atomically.
	Upsert(ctx context.Context, hero *model.HeroSection) error
}

// AboutRepository persists the singleton about section.
type AboutRepository interface {
	Get(ctx context.Context) (*model.AboutSection, error)
	Upsert(ctx context.Context, about *model.AboutSection) error
}

type heroRepository struct {
	db *gorm.DB
}

// NewHeroRepository creates a new hero section repository.
func NewHeroRepository(db *gorm.DB) HeroRepository {
	return &heroRepository{db: db}
}

func (r *heroRepository) Get(ctx context.Context) (*model.HeroSection, error) {
	var hero model.HeroSection
	err := r.db.WithContext(ctx).First(&hero).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

// Upsert writes the row under the fixed singleton id. ON CONFLICT makes the
// create-or-update decision inside the store, so two concurrent upserts can
// never produce a second row.
func (r *heroRepository) Upsert(ctx context.Context, hero *model.HeroSection) error {
	hero.ID = model.SingletonID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "roles", "updated_at"}),
		}).
		Create(hero).Error
}

type aboutRepository struct {
	db *gorm.DB
}

// NewAboutRepository creates a new about section repository.
func NewAboutRepository(db *gorm.DB) AboutRepository {
	return &aboutRepository{db: db}
}

func (r *aboutRepository) Get(ctx context.Context) (*model.AboutSection, error) {
	var about model.AboutSection
	err := r.db.WithContext(ctx).First(&about).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &about, nil
}

func (r *aboutRepository) Upsert(ctx context.Context, about *model.AboutSection) error {
	about.ID = model.SingletonID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(about).Error
}
