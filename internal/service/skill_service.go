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

const skillListCacheKey = "skills:all"

// SkillService handles skill operations. The same listing backs both the
// public read path and the admin listing.
type SkillService interface {
	List(ctx context.Context) ([]model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) (*model.Skill, error)
	Update(ctx context.Context, id uint, skill *model.Skill) (*model.Skill, error)
	Delete(ctx context.Context, id uint) error
}

type skillService struct {
	repo  repository.SkillRepository
	cache *cache.Client
}

// NewSkillService creates a new skill service.
func NewSkillService(repo repository.SkillRepository, cache *cache.Client) SkillService {
	return &skillService{repo: repo, cache: cache}
}

func (s *skillService) List(ctx context.Context) ([]model.Skill, error) {
	if data, _ := s.cache.Get(ctx, skillListCacheKey); data != nil {
		var cached []model.Skill
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	skills, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(skills); err == nil {
		_ = s.cache.Set(ctx, skillListCacheKey, payload, contentCacheTTL)
	}
	return skills, nil
}

func (s *skillService) Create(ctx context.Context, skill *model.Skill) (*model.Skill, error) {
	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	_ = s.cache.Delete(ctx, skillListCacheKey)
	return skill, nil
}

func (s *skillService) Update(ctx context.Context, id uint, skill *model.Skill) (*model.Skill, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}

	existing.Name = skill.Name
	existing.Category = skill.Category
	existing.Devicon = skill.Devicon

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}
	_ = s.cache.Delete(ctx, skillListCacheKey)
	return existing, nil
}

func (s *skillService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrSkillNotFound
		}
		return fmt.Errorf("delete skill: %w", err)
	}
	_ = s.cache.Delete(ctx, skillListCacheKey)
	return nil
}
