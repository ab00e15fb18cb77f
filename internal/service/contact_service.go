package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/mail"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// ContactService handles contact form submissions, the admin inbox, and
// replies. Notification email is best-effort throughout: a failed send is
// logged and the operation still succeeds.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) (*model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uint) (*model.Contact, error)
	Reply(ctx context.Context, id uint, message string) (*model.Contact, error)
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	repo     repository.ContactRepository
	mailer   mail.Sender
	fromName string
}

// NewContactService creates a new contact service. fromName signs the
// outgoing notification mails.
func NewContactService(repo repository.ContactRepository, mailer mail.Sender, fromName string) ContactService {
	return &contactService{repo: repo, mailer: mailer, fromName: fromName}
}

func (s *contactService) Submit(ctx context.Context, name, email, message string) (*model.Contact, error) {
	contact := &model.Contact{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	text, html := confirmationBody(name, s.fromName)
	if !s.mailer.Send(email, "Thank you for contacting me", text, html) {
		log.Printf("contact: confirmation email to %s failed", email)
	}

	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.repo.ListWithReplies(ctx)
}

func (s *contactService) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}

func (s *contactService) MarkRead(ctx context.Context, id uint) (*model.Contact, error) {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("mark contact read: %w", err)
	}
	return s.repo.FindByIDWithReplies(ctx, id)
}

func (s *contactService) Reply(ctx context.Context, id uint, message string) (*model.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}

	if err := s.repo.AddReply(ctx, id, message); err != nil {
		// The contact can vanish between the lookup above and the insert.
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("add reply: %w", err)
	}

	updated, err := s.repo.FindByIDWithReplies(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload contact: %w", err)
	}

	text, html := replyBody(contact.Name, message, s.fromName)
	if !s.mailer.Send(contact.Email, "Reply to your message", text, html) {
		log.Printf("contact: reply email to %s failed", contact.Email)
	}

	return updated, nil
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrContactNotFound
		}
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

func confirmationBody(name, fromName string) (text, html string) {
	text = fmt.Sprintf(
		"Hi %s,\n\nThank you for reaching out. I have received your message and will get back to you soon.\n\nBest regards,\n%s",
		name, fromName)
	html = fmt.Sprintf(
		"<p>Hi %s,</p><p>Thank you for reaching out. I have received your message and will get back to you soon.</p><p>Best regards,<br>%s</p>",
		name, fromName)
	return text, html
}

func replyBody(name, message, fromName string) (text, html string) {
	text = fmt.Sprintf(
		"Hi %s,\n\nThank you for your message. Here's my reply:\n\n%s\n\nBest regards,\n%s",
		name, message, fromName)
	html = fmt.Sprintf(
		"<p>Hi %s,</p><p>Thank you for your message. Here's my reply:</p><p>%s</p><p>Best regards,<br>%s</p>",
		name, strings.ReplaceAll(message, "\n", "<br>"), fromName)
	return text, html
}
