package outreach

import (
	"context"
	"errors"
	"log"
	"strings"

	"charity/internal/models"
	"charity/internal/repositories"
	"charity/internal/utils/validation"

	"github.com/google/uuid"
)

type SubscribeInput struct {
	Email string `json:"email" validate:"required,email,max=160"`
	Name  string `json:"name" validate:"max=120"`
}

type NewsletterService interface {
	// Subscribe creates the subscription or reactivates a lapsed one.
	Subscribe(ctx context.Context, input SubscribeInput) (*models.Subscriber, error)
	Unsubscribe(ctx context.Context, token string) error
	Subscribers(ctx context.Context, activeOnly bool) ([]models.Subscriber, error)
}

type newsletterService struct {
	repo repositories.SubscriberRepository
}

func NewNewsletterService(repo repositories.SubscriberRepository) NewsletterService {
	return &newsletterService{repo: repo}
}

func (s *newsletterService) Subscribe(ctx context.Context, input SubscribeInput) (*models.Subscriber, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if !existing.Active {
			if err := s.repo.SetActive(ctx, existing.ID, true); err != nil {
				return nil, err
			}
			existing.Active = true
			log.Printf("[newsletter] resubscribed %s", email)
		}
		return existing, nil
	case !errors.Is(err, repositories.ErrSubscriberNotFound):
		return nil, err
	}

	subscriber := &models.Subscriber{
		Email:            email,
		Name:             strings.TrimSpace(input.Name),
		Active:           true,
		UnsubscribeToken: uuid.NewString(),
	}
	if err := s.repo.Create(ctx, subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

func (s *newsletterService) Unsubscribe(ctx context.Context, token string) error {
	if _, err := uuid.Parse(token); err != nil {
		return ErrSubscriberNotFound
	}
	return s.repo.DeactivateByToken(ctx, token)
}

func (s *newsletterService) Subscribers(ctx context.Context, activeOnly bool) ([]models.Subscriber, error) {
	return s.repo.List(ctx, activeOnly)
}
