package contact

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"framelight/internal/domain"
	"framelight/internal/pkg/validator"
)

var (
	ErrNotFound   = errors.New("message not found")
	ErrValidation = errors.New("validation error")
)

// ContactRepository defines storage for contact-page enquiries
type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id int64) error
}

type Service struct {
	messages ContactRepository
}

func NewService(messages ContactRepository) *Service {
	return &Service{messages: messages}
}

func (s *Service) Submit(ctx context.Context, req CreateMessageRequest) (*domain.ContactMessage, error) {
	m := &domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	}
	if errs := validator.Validate(m); errs != nil {
		return nil, ErrValidation
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.messages.List(ctx)
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if err := s.messages.MarkRead(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
