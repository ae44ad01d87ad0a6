package outreach

import (
	"context"
	"log"
	"strings"

	"charity/internal/models"
	"charity/internal/repositories"
	"charity/internal/utils/validation"
)

type VolunteerInput struct {
	Name         string `json:"name" validate:"required,max=120"`
	Email        string `json:"email" validate:"required,email,max=160"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
	Skills       string `json:"skills"`
	Availability string `json:"availability" validate:"max=120"`
	Message      string `json:"message"`
}

type VolunteerService interface {
	Apply(ctx context.Context, input VolunteerInput) (*models.Volunteer, error)
	List(ctx context.Context, status string) ([]models.Volunteer, error)
	SetStatus(ctx context.Context, id uint, status string) (*models.Volunteer, error)
}

type volunteerService struct {
	repo repositories.VolunteerRepository
}

func NewVolunteerService(repo repositories.VolunteerRepository) VolunteerService {
	return &volunteerService{repo: repo}
}

func (s *volunteerService) Apply(ctx context.Context, input VolunteerInput) (*models.Volunteer, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	volunteer := &models.Volunteer{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:        input.Phone,
		Skills:       input.Skills,
		Availability: input.Availability,
		Message:      input.Message,
		Status:       models.VolunteerStatusPending,
	}
	if err := s.repo.Create(ctx, volunteer); err != nil {
		return nil, err
	}
	log.Printf("[volunteers] new application from %s", volunteer.Email)
	return volunteer, nil
}

func (s *volunteerService) List(ctx context.Context, status string) ([]models.Volunteer, error) {
	if status != "" && !isVolunteerStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, status)
}

func (s *volunteerService) SetStatus(ctx context.Context, id uint, status string) (*models.Volunteer, error) {
	if !isVolunteerStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func isVolunteerStatus(s string) bool {
	switch s {
	case models.VolunteerStatusPending, models.VolunteerStatusApproved, models.VolunteerStatusRejected:
		return true
	}
	return false
}
