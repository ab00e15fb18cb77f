package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// ProjectRepository defines project persistence operations.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	ListFeatured(ctx context.Context) ([]model.Project, error)
	CountFeatured(ctx context.Context, excludeID uint) (int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update persists the full record. Save writes every column, which gives the
// API its full-replace update semantics: fields the caller left empty are
// stored empty, not merged.
func (r *projectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *projectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) ListFeatured(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// CountFeatured counts featured projects, optionally excluding one id so an
// update of an already-featured project does not count against itself.
func (r *projectRepository) CountFeatured(ctx context.Context, excludeID uint) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Project{}).Where("featured = ?", true)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
