package service

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"portfolio/internal/cache"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const educationListCacheKey = "cms:education"

// EducationService handles education history entries.
type EducationService interface {
	List(ctx context.Context) ([]model.Education, error)
	Create(ctx context.Context, entry *model.Education) (*model.Education, error)
	Update(ctx context.Context, id uint, entry *model.Education) (*model.Education, error)
	Delete(ctx context.Context, id uint) error
}

type educationService struct {
	repo  repository.EducationRepository
	cache *cache.Client
}

// NewEducationService creates a new education service.
func NewEducationService(repo repository.EducationRepository, cache *cache.Client) EducationService {
	return &educationService{repo: repo, cache: cache}
}

func (s *educationService) List(ctx context.Context) ([]model.Education, error) {
	if data, _ := s.cache.Get(ctx, educationListCacheKey); data != nil {
		var cached []model.Education
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(entries); err == nil {
		_ = s.cache.Set(ctx, educationListCacheKey, payload, contentCacheTTL)
	}
	return entries, nil
}

func (s *educationService) Create(ctx context.Context, entry *model.Education) (*model.Education, error) {
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create education entry: %w", err)
	}
	_ = s.cache.Delete(ctx, educationListCacheKey)
	return entry, nil
}

func (s *educationService) Update(ctx context.Context, id uint, entry *model.Education) (*model.Education, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrEducationNotFound
		}
		return nil, fmt.Errorf("find education entry: %w", err)
	}

	existing.Institution = entry.Institution
	existing.Degree = entry.Degree
	existing.Field = entry.Field
	existing.StartDate = entry.StartDate
	existing.EndDate = entry.EndDate
	existing.Grade = entry.Grade
	existing.Achievements = entry.Achievements

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update education entry: %w", err)
	}
	_ = s.cache.Delete(ctx, educationListCacheKey)
	return existing, nil
}

func (s *educationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrEducationNotFound
		}
		return fmt.Errorf("delete education entry: %w", err)
	}
	_ = s.cache.Delete(ctx, educationListCacheKey)
	return nil
}
