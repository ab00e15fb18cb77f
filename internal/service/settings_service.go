package service

import (
	"context"
	"encoding/json"
	"fmt"

	"portfolio/internal/cache"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const settingsCacheKey = "settings"

// SettingsService handles the singleton site settings record.
type SettingsService interface {
	Get(ctx context.Context) (*model.Settings, error)
	Upsert(ctx context.Context, settings *model.Settings) (*model.Settings, error)
}

type settingsService struct {
	repo  repository.SettingsRepository
	cache *cache.Client
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo repository.SettingsRepository, cache *cache.Client) SettingsService {
	return &settingsService{repo: repo, cache: cache}
}

func (s *settingsService) Get(ctx context.Context) (*model.Settings, error) {
	if data, _ := s.cache.Get(ctx, settingsCacheKey); data != nil {
		var cached model.Settings
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if settings != nil {
		if payload, err := json.Marshal(settings); err == nil {
			_ = s.cache.Set(ctx, settingsCacheKey, payload, contentCacheTTL)
		}
	}
	return settings, nil
}

func (s *settingsService) Upsert(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	_ = s.cache.Delete(ctx, settingsCacheKey)
	return s.repo.Get(ctx)
}
