package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"charity/internal/models"

	"github.com/redis/go-redis/v9"
)

// Keys that do not depend on an entity id.
const (
	DashboardStatsKey = "dashboard:stats"
	ProjectListPrefix = "project:list:"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// Get decodes the cached JSON under key into dest. found is false on a miss.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// DeletePattern removes every key matching a glob pattern.
func (s *CacheService) DeletePattern(ctx context.Context, pattern string) error {
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return s.Delete(ctx, keys...)
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// User caching
func (s *CacheService) CacheUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("cannot cache nil user")
	}
	return s.Set(ctx, s.GenerateKey("user", "id", user.ID), cachedUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
	})
}

// GetUser returns the cached user or (nil, nil) on a miss.
func (s *CacheService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var user cachedUser
	found, err := s.Get(ctx, s.GenerateKey("user", "id", userID), &user)
	if err != nil || !found {
		return nil, err
	}
	return user.toModel(), nil
}

func (s *CacheService) InvalidateUser(ctx context.Context, userID uint) error {
	return s.Delete(ctx, s.GenerateKey("user", "id", userID))
}

// Project caching
func (s *CacheService) CacheProject(ctx context.Context, project *models.Project) error {
	if project == nil {
		return errors.New("cannot cache nil project")
	}
	return s.Set(ctx, s.GenerateKey("project", "id", project.ID), project)
}

// GetProject returns the cached project or (nil, nil) on a miss.
func (s *CacheService) GetProject(ctx context.Context, projectID uint) (*models.Project, error) {
	var project models.Project
	found, err := s.Get(ctx, s.GenerateKey("project", "id", projectID), &project)
	if err != nil || !found {
		return nil, err
	}
	return &project, nil
}

// InvalidateProject drops the project entry and every cached project listing.
func (s *CacheService) InvalidateProject(ctx context.Context, projectID uint) error {
	if err := s.Delete(ctx, s.GenerateKey("project", "id", projectID)); err != nil {
		return err
	}
	return s.DeletePattern(ctx, ProjectListPrefix+"*")
}

// Dashboard caching
func (s *CacheService) CacheDashboard(ctx context.Context, stats *models.DashboardStats) error {
	return s.Set(ctx, DashboardStatsKey, stats)
}

func (s *CacheService) GetDashboard(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	found, err := s.Get(ctx, DashboardStatsKey, &stats)
	if err != nil || !found {
		return nil, err
	}
	return &stats, nil
}

func (s *CacheService) InvalidateDashboard(ctx context.Context) error {
	return s.Delete(ctx, DashboardStatsKey)
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}

// cachedUser keeps the token version models.User hides from JSON so the
// auth middleware can check it from the cache. The password hash never
// leaves the database.
type cachedUser struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	TokenVersion int    `json:"token_version"`
}

func (c cachedUser) toModel() *models.User {
	return &models.User{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Role:         c.Role,
		TokenVersion: c.TokenVersion,
	}
}
