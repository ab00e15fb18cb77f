package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// AdminRepository defines admin persistence operations.
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	First(ctx context.Context) (*model.Admin, error)
	FindByID(ctx context.Context, id uint) (*model.Admin, error)
	FindByPasscode(ctx context.Context, passcode string) (*model.Admin, error)
	UpdatePasscode(ctx context.Context, id uint, passcode string) error
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

// First returns the admin record, if any. The table is expected to hold a
// single row.
func (r *adminRepository) First(ctx context.Context) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByID(ctx context.Context, id uint) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByPasscode looks an admin up by exact passcode match. This is the login
// lookup: the passcode is the shared secret itself, not a hash.
func (r *adminRepository) FindByPasscode(ctx context.Context, passcode string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("passcode = ?", passcode).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// UpdatePasscode overwrites the stored passcode. Existence is checked with a
// lookup rather than the affected-row count: MySQL counts changed rows, so
// re-submitting the current passcode would otherwise read as not-found.
func (r *adminRepository) UpdatePasscode(ctx context.Context, id uint, passcode string) error {
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&model.Admin{}).
		Where("id = ?", id).
		Update("passcode", passcode).Error
}
