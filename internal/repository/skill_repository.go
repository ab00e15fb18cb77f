package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// SkillRepository defines skill persistence operations.
type SkillRepository interface {
	Create(ctx context.Context, skill *model.Skill) error
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Skill, error)
	List(ctx context.Context) ([]model.Skill, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepository) Update(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

func (r *skillRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Skill{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *skillRepository) FindByID(ctx context.Context, id uint) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) List(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.db.WithContext(ctx).Order("category ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}
