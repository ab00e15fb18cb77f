package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// EducationRepository defines education entry persistence operations.
type EducationRepository interface {
	Create(ctx context.Context, entry *model.Education) error
	Update(ctx context.Context, entry *model.Education) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Education, error)
	List(ctx context.Context) ([]model.Education, error)
}

type educationRepository struct {
	db *gorm.DB
}

// NewEducationRepository creates a new education repository.
func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{db: db}
}

func (r *educationRepository) Create(ctx context.Context, entry *model.Education) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *educationRepository) Update(ctx context.Context, entry *model.Education) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *educationRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Education{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *educationRepository) FindByID(ctx context.Context, id uint) (*model.Education, error) {
	var entry model.Education
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *educationRepository) List(ctx context.Context) ([]model.Education, error) {
	var entries []model.Education
	if err := r.db.WithContext(ctx).Order("start_date DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
