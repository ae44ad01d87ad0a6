package outreach

import (
	"context"
	"time"

	"charity/internal/models"
	"charity/internal/repositories"
	"charity/internal/utils/validation"
)

type EventInput struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	Location    string     `json:"location" validate:"max=200"`
	StartsAt    time.Time  `json:"starts_at" validate:"required"`
	EndsAt      *time.Time `json:"ends_at"`
	ImageURL    string     `json:"image_url" validate:"omitempty,url,max=500"`
	Capacity    int        `json:"capacity" validate:"min=0"`
	Status      string     `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	ProjectID   *uint      `json:"project_id"`
}

type EventPatch struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description"`
	Location    *string    `json:"location" validate:"omitempty,max=200"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	ImageURL    *string    `json:"image_url" validate:"omitempty,max=500"`
	Capacity    *int       `json:"capacity" validate:"omitempty,min=0"`
	Status      *string    `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type EventService interface {
	Create(ctx context.Context, input EventInput) (*models.Event, error)
	Get(ctx context.Context, id uint) (*models.Event, error)
	List(ctx context.Context, upcomingOnly bool) ([]models.Event, error)
	Update(ctx context.Context, id uint, patch EventPatch) (*models.Event, error)
	Delete(ctx context.Context, id uint) error
}

type eventService struct {
	repo repositories.EventRepository
}

func NewEventService(repo repositories.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) Create(ctx context.Context, input EventInput) (*models.Event, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.EndsAt != nil && input.EndsAt.Before(input.StartsAt) {
		return nil, ErrInvalidSchedule
	}

	status := input.Status
	if status == "" {
		status = models.EventStatusUpcoming
	}
	event := &models.Event{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		ImageURL:    input.ImageURL,
		Capacity:    input.Capacity,
		Status:      status,
		ProjectID:   input.ProjectID,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Get(ctx context.Context, id uint) (*models.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *eventService) List(ctx context.Context, upcomingOnly bool) ([]models.Event, error) {
	return s.repo.List(ctx, upcomingOnly)
}

func (s *eventService) Update(ctx context.Context, id uint, patch EventPatch) (*models.Event, error) {
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Location != nil {
		fields["location"] = *patch.Location
	}
	if patch.StartsAt != nil {
		fields["starts_at"] = *patch.StartsAt
	}
	if patch.EndsAt != nil {
		fields["ends_at"] = *patch.EndsAt
	}
	if patch.ImageURL != nil {
		fields["image_url"] = *patch.ImageURL
	}
	if patch.Capacity != nil {
		fields["capacity"] = *patch.Capacity
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	if patch.StartsAt != nil || patch.EndsAt != nil {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		starts, ends := current.StartsAt, current.EndsAt
		if patch.StartsAt != nil {
			starts = *patch.StartsAt
		}
		if patch.EndsAt != nil {
			ends = patch.EndsAt
		}
		if ends != nil && ends.Before(starts) {
			return nil, ErrInvalidSchedule
		}
	}

	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *eventService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
