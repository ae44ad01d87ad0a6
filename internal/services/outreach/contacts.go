package outreach

import (
	"context"
	"strings"

	"charity/internal/models"
	"charity/internal/repositories"
	"charity/internal/utils/validation"
)

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email,max=160"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

type ContactService interface {
	Submit(ctx context.Context, input ContactInput) (*models.Contact, error)
	List(ctx context.Context, status string) ([]models.Contact, error)
	SetStatus(ctx context.Context, id uint, status string) (*models.Contact, error)
}

type contactService struct {
	repo repositories.ContactRepository
}

func NewContactService(repo repositories.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Submit(ctx context.Context, input ContactInput) (*models.Contact, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	contact := &models.Contact{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
		Status:  models.ContactStatusNew,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) List(ctx context.Context, status string) ([]models.Contact, error) {
	if status != "" && !isContactStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, status)
}

func (s *contactService) SetStatus(ctx context.Context, id uint, status string) (*models.Contact, error) {
	if !isContactStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func isContactStatus(s string) bool {
	switch s {
	case models.ContactStatusNew, models.ContactStatusRead, models.ContactStatusReplied:
		return true
	}
	return false
}
