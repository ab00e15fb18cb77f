package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"portfolio/internal/auth"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// minPasscodeLength is the only server-side constraint on passcodes.
const minPasscodeLength = 6

// AuthService handles the login flow and passcode management.
type AuthService interface {
	// Login matches the submitted passcode exactly against the stored admin
	// record and issues a bearer token on success.
	Login(ctx context.Context, passcode string) (token string, admin *model.Admin, err error)
	// GetAdmin returns the admin record for an authenticated id.
	GetAdmin(ctx context.Context, id uint) (*model.Admin, error)
	// ChangePasscode overwrites the stored passcode after a minimal length
	// check. No old-passcode confirmation is required.
	ChangePasscode(ctx context.Context, id uint, newPasscode string) (*model.Admin, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	tokens    *auth.Service
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminRepository, tokens *auth.Service) AuthService {
	return &authService{adminRepo: adminRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, passcode string) (string, *model.Admin, error) {
	admin, err := s.adminRepo.FindByPasscode(ctx, passcode)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// Deliberately no lockout or rate limiting: single-operator tool.
			log.Printf("auth: login rejected, passcode mismatch")
			return "", nil, apperrors.ErrInvalidPasscode
		}
		return "", nil, fmt.Errorf("find admin: %w", err)
	}

	token, err := s.tokens.Issue(admin.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, admin, nil
}

func (s *authService) GetAdmin(ctx context.Context, id uint) (*model.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return admin, nil
}

func (s *authService) ChangePasscode(ctx context.Context, id uint, newPasscode string) (*model.Admin, error) {
	if len(newPasscode) < minPasscodeLength {
		return nil, apperrors.ErrPasscodeTooShort
	}

	if err := s.adminRepo.UpdatePasscode(ctx, id, newPasscode); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("update passcode: %w", err)
	}

	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload admin: %w", err)
	}
	return admin, nil
}
