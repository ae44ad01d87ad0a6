package project

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"charity/internal/models"
	"charity/internal/repositories"
	"charity/internal/repositories/cache"
	"charity/internal/utils/validation"

	"github.com/shopspring/decimal"
)

var (
	ErrProjectNotFound = repositories.ErrProjectNotFound
	ErrSlugTaken       = repositories.ErrSlugTaken
	ErrInvalidStatus   = errors.New("invalid project status")
	ErrInvalidGoal     = errors.New("goal amount cannot be negative")
	ErrEmptyUpdate     = errors.New("no updatable fields provided")
)

const maxSlugAttempts = 50

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

type Input struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Slug        string          `json:"slug" validate:"omitempty,max=220"`
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"max=60"`
	Location    string          `json:"location" validate:"max=160"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url,max=500"`
	GoalAmount  decimal.Decimal `json:"goal_amount"`
	Status      string          `json:"status" validate:"omitempty,oneof=active completed paused"`
	IsFeatured  bool            `json:"is_featured"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
}

// Patch holds the editable project fields; nil means unchanged. The raised
// amount is never editable here.
type Patch struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Category    *string          `json:"category" validate:"omitempty,max=60"`
	Location    *string          `json:"location" validate:"omitempty,max=160"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,max=500"`
	GoalAmount  *decimal.Decimal `json:"goal_amount"`
	Status      *string          `json:"status" validate:"omitempty,oneof=active completed paused"`
	IsFeatured  *bool            `json:"is_featured"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
}

type Service interface {
	Create(ctx context.Context, input Input) (*models.Project, error)
	Get(ctx context.Context, id uint) (*models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)

	// Lookup resolves a path parameter that is either a numeric id or a slug.
	Lookup(ctx context.Context, idOrSlug string) (*models.Project, error)
	List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	Update(ctx context.Context, id uint, patch Patch) (*models.Project, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo  repositories.ProjectRepository
	cache *cache.CacheService
}

// NewService creates the project service. cache may be nil.
func NewService(repo repositories.ProjectRepository, cache *cache.CacheService) Service {
	return &service{repo: repo, cache: cache}
}

func (s *service) Create(ctx context.Context, input Input) (*models.Project, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.GoalAmount.IsNegative() {
		return nil, ErrInvalidGoal
	}

	slug, err := s.resolveSlug(ctx, input.Slug, input.Title)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.ProjectStatusActive
	}

	project := &models.Project{
		Title:        strings.TrimSpace(input.Title),
		Slug:         slug,
		Description:  input.Description,
		Category:     input.Category,
		Location:     input.Location,
		ImageURL:     input.ImageURL,
		GoalAmount:   input.GoalAmount,
		AmountRaised: decimal.Zero,
		Status:       status,
		IsFeatured:   input.IsFeatured,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.invalidate(ctx, project.ID)
	return project, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.Project, error) {
	if s.cache != nil {
		if project, err := s.cache.GetProject(ctx, id); err == nil && project != nil {
			return project, nil
		} else if err != nil {
			log.Printf("Project cache lookup failed for ID %d: %v", id, err)
		}
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheProject(ctx, project); err != nil {
			log.Printf("Failed to cache project: %v", err)
		}
	}
	return project, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	return s.repo.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
}

func (s *service) Lookup(ctx context.Context, idOrSlug string) (*models.Project, error) {
	if id, err := strconv.ParseUint(idOrSlug, 10, 64); err == nil {
		return s.Get(ctx, uint(id))
	}
	return s.GetBySlug(ctx, idOrSlug)
}

func (s *service) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	if filter.Status != "" && !models.IsValidProjectStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}

	key := listKey(filter)
	if s.cache != nil {
		var cached []models.Project
		if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
			return cached, nil
		} else if err != nil {
			log.Printf("Project list cache lookup failed: %v", err)
		}
	}

	projects, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, projects); err != nil {
			log.Printf("Failed to cache project list: %v", err)
		}
	}
	return projects, nil
}

func (s *service) Update(ctx context.Context, id uint, patch Patch) (*models.Project, error) {
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if patch.Title != nil {
		fields["title"] = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.Location != nil {
		fields["location"] = *patch.Location
	}
	if patch.ImageURL != nil {
		fields["image_url"] = *patch.ImageURL
	}
	if patch.GoalAmount != nil {
		if patch.GoalAmount.IsNegative() {
			return nil, ErrInvalidGoal
		}
		fields["goal_amount"] = *patch.GoalAmount
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if patch.IsFeatured != nil {
		fields["is_featured"] = *patch.IsFeatured
	}
	if patch.StartDate != nil {
		fields["start_date"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		fields["end_date"] = *patch.EndDate
	}
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	project, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return project, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// resolveSlug validates an explicit slug or derives a free one from the title.
func (s *service) resolveSlug(ctx context.Context, explicit, title string) (string, error) {
	if explicit != "" {
		slug := Slugify(explicit)
		exists, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if exists {
			return "", ErrSlugTaken
		}
		return slug, nil
	}

	base := Slugify(title)
	if base == "" {
		base = "project"
	}
	candidate := base
	for i := 2; i <= maxSlugAttempts; i++ {
		exists, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", ErrSlugTaken
}

func (s *service) invalidate(ctx context.Context, id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProject(ctx, id); err != nil {
		log.Printf("Cache invalidation error for project %d: %v", id, err)
	}
	if err := s.cache.InvalidateDashboard(ctx); err != nil {
		log.Printf("Cache invalidation error for dashboard: %v", err)
	}
}

// Slugify lowercases s and joins its alphanumeric runs with hyphens.
func Slugify(s string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 200 {
		slug = strings.TrimRight(slug[:200], "-")
	}
	return slug
}

func listKey(filter models.ProjectFilter) string {
	featured := "any"
	if filter.Featured != nil {
		featured = strconv.FormatBool(*filter.Featured)
	}
	return fmt.Sprintf("%s%s:%s:%s", cache.ProjectListPrefix, filter.Status, filter.Category, featured)
}
