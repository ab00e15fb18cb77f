package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio/internal/model"
)

// SettingsRepository persists the singleton settings record.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Upsert(ctx context.Context, settings *model.Settings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *model.Settings) error {
	settings.ID = model.SingletonID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"about_text", "resume_url", "github_url",
				"linkedin_url", "twitter_url", "email_address", "updated_at",
			}),
		}).
		Create(settings).Error
}
