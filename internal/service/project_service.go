package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"portfolio/internal/cache"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const (
	contentCacheTTL = 5 * time.Minute

	projectListCacheKey     = "projects:all"
	projectFeaturedCacheKey = "projects:featured"

	// maxFeaturedProjects caps how many projects may carry the featured flag.
	// The companion "at least one" rule stays UI policy: an empty database
	// would make it unsatisfiable here.
	maxFeaturedProjects = 6
)

// ProjectService handles project operations.
type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	ListFeatured(ctx context.Context) ([]model.Project, error)
	Get(ctx context.Context, id uint) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) (*model.Project, error)
	// Update is full-replace: the given project's content fields overwrite
	// the stored row entirely.
	Update(ctx context.Context, id uint, project *model.Project) (*model.Project, error)
	Delete(ctx context.Context, id uint) error
}

type projectService struct {
	repo  repository.ProjectRepository
	cache *cache.Client
}

// NewProjectService creates a new project service.
func NewProjectService(repo repository.ProjectRepository, cache *cache.Client) ProjectService {
	return &projectService{repo: repo, cache: cache}
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	if data, _ := s.cache.Get(ctx, projectListCacheKey); data != nil {
		var cached []model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(projects); err == nil {
		_ = s.cache.Set(ctx, projectListCacheKey, payload, contentCacheTTL)
	}
	return projects, nil
}

func (s *projectService) ListFeatured(ctx context.Context) ([]model.Project, error) {
	if data, _ := s.cache.Get(ctx, projectFeaturedCacheKey); data != nil {
		var cached []model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(projects); err == nil {
		_ = s.cache.Set(ctx, projectFeaturedCacheKey, payload, contentCacheTTL)
	}
	return projects, nil
}

func (s *projectService) Get(ctx context.Context, id uint) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	if project.Featured {
		if err := s.checkFeaturedCap(ctx, 0); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	s.invalidate(ctx)
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id uint, project *model.Project) (*model.Project, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	if project.Featured && !existing.Featured {
		if err := s.checkFeaturedCap(ctx, id); err != nil {
			return nil, err
		}
	}

	existing.Title = project.Title
	existing.Description = project.Description
	existing.ImageURL = project.ImageURL
	existing.LiveURL = project.LiveURL
	existing.GithubURL = project.GithubURL
	existing.Technologies = project.Technologies
	existing.Featured = project.Featured

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	s.invalidate(ctx)
	return existing, nil
}

func (s *projectService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("delete project: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *projectService) checkFeaturedCap(ctx context.Context, excludeID uint) error {
	count, err := s.repo.CountFeatured(ctx, excludeID)
	if err != nil {
		return fmt.Errorf("count featured: %w", err)
	}
	if count >= maxFeaturedProjects {
		return apperrors.ErrFeaturedLimit
	}
	return nil
}

func (s *projectService) invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, projectListCacheKey, projectFeaturedCacheKey)
}
