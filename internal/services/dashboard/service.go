package dashboard

import (
	"context"
	"fmt"
	"log"

	"charity/internal/models"
	"charity/internal/repositories"
	"charity/internal/repositories/cache"
)

type Service interface {
	// Stats returns the admin overview, served from cache when fresh.
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type service struct {
	repo  repositories.DashboardRepository
	cache *cache.CacheService
}

// NewService creates the dashboard service. cache may be nil.
func NewService(repo repositories.DashboardRepository, cache *cache.CacheService) Service {
	return &service{
		repo:  repo,
		cache: cache,
	}
}

func (s *service) Stats(ctx context.Context) (*models.DashboardStats, error) {
	if s.cache != nil {
		if stats, err := s.cache.GetDashboard(ctx); err == nil && stats != nil {
			return stats, nil
		} else if err != nil {
			log.Printf("Dashboard cache lookup failed: %v", err)
		}
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.CacheDashboard(ctx, stats); err != nil {
			log.Printf("Failed to cache dashboard stats: %v", err)
		}
	}
	return stats, nil
}
