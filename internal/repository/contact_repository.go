package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// ContactRepository defines contact and reply persistence operations.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	FindByID(ctx context.Context, id uint) (*model.Contact, error)
	FindByIDWithReplies(ctx context.Context, id uint) (*model.Contact, error)
	ListWithReplies(ctx context.Context) ([]model.Contact, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uint) error
	AddReply(ctx context.Context, contactID uint, message string) error
	Delete(ctx context.Context, id uint) error
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) FindByID(ctx context.Context, id uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) FindByIDWithReplies(ctx context.Context, id uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		Where("id = ?", id).First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) ListWithReplies(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		Order("created_at DESC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Contact{}).
		Where("`read` = ?", false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkRead flips the read flag. Existence is checked explicitly: the MySQL
// driver reports changed rows, not matched rows, so a zero affected count
// cannot distinguish a missing contact from one already read.
func (r *contactRepository) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var contact model.Contact
		if err := tx.Select("id").Where("id = ?", id).First(&contact).Error; err != nil {
			return err
		}
		return tx.Model(&model.Contact{}).
			Where("id = ?", id).
			Update("read", true).Error
	})
}

// AddReply appends a reply and marks the parent contact read in a single
// transaction, so a reply can never exist on an unread contact. The parent
// is re-checked inside the transaction: a concurrent delete between the
// caller's lookup and this call must not leave an orphan reply behind.
func (r *contactRepository) AddReply(ctx context.Context, contactID uint, message string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var contact model.Contact
		if err := tx.Select("id").Where("id = ?", contactID).First(&contact).Error; err != nil {
			return err
		}
		reply := &model.Reply{ContactID: contactID, Message: message}
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		return tx.Model(&model.Contact{}).
			Where("id = ?", contactID).
			Update("read", true).Error
	})
}

func (r *contactRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Delete replies first for stores without FK cascade support.
		if err := tx.Where("contact_id = ?", id).Delete(&model.Reply{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Contact{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
