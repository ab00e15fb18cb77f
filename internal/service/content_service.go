package service

import (
	"context"
	"encoding/json"
	"fmt"

	"portfolio/internal/cache"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const (
	heroCacheKey  = "cms:hero"
	aboutCacheKey = "cms:about"
)

// ContentService handles the singleton hero and about sections. Get returns
// nil when the row has never been written; Upsert applies
// create-if-absent/else-update semantics.
type ContentService interface {
	GetHero(ctx context.Context) (*model.HeroSection, error)
	UpsertHero(ctx context.Context, hero *model.HeroSection) (*model.HeroSection, error)
	GetAbout(ctx context.Context) (*model.AboutSection, error)
	UpsertAbout(ctx context.Context, about *model.AboutSection) (*model.AboutSection, error)
}

type contentService struct {
	heroRepo  repository.HeroRepository
	aboutRepo repository.AboutRepository
	cache     *cache.Client
}

// NewContentService creates a new content service.
func NewContentService(heroRepo repository.HeroRepository, aboutRepo repository.AboutRepository, cache *cache.Client) ContentService {
	return &contentService{heroRepo: heroRepo, aboutRepo: aboutRepo, cache: cache}
}

func (s *contentService) GetHero(ctx context.Context) (*model.HeroSection, error) {
	if data, _ := s.cache.Get(ctx, heroCacheKey); data != nil {
		var cached model.HeroSection
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	hero, err := s.heroRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get hero: %w", err)
	}
	if hero != nil {
		if payload, err := json.Marshal(hero); err == nil {
			_ = s.cache.Set(ctx, heroCacheKey, payload, contentCacheTTL)
		}
	}
	return hero, nil
}

func (s *contentService) UpsertHero(ctx context.Context, hero *model.HeroSection) (*model.HeroSection, error) {
	if err := s.heroRepo.Upsert(ctx, hero); err != nil {
		return nil, fmt.Errorf("upsert hero: %w", err)
	}
	_ = s.cache.Delete(ctx, heroCacheKey)
	return s.heroRepo.Get(ctx)
}

func (s *contentService) GetAbout(ctx context.Context) (*model.AboutSection, error) {
	if data, _ := s.cache.Get(ctx, aboutCacheKey); data != nil {
		var cached model.AboutSection
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	about, err := s.aboutRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get about: %w", err)
	}
	if about != nil {
		if payload, err := json.Marshal(about); err == nil {
			_ = s.cache.Set(ctx, aboutCacheKey, payload, contentCacheTTL)
		}
	}
	return about, nil
}

func (s *contentService) UpsertAbout(ctx context.Context, about *model.AboutSection) (*model.AboutSection, error) {
	if err := s.aboutRepo.Upsert(ctx, about); err != nil {
		return nil, fmt.Errorf("upsert about: %w", err)
	}
	_ = s.cache.Delete(ctx, aboutCacheKey)
	return s.aboutRepo.Get(ctx)
}
