package repositories

import (
	"context"

	"charity/internal/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	// Create creates a new user in the database
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by their ID
	GetByID(ctx context.Context, id uint) (*models.User, error)

	// GetByEmail retrieves a user by their email address
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// IncrementTokenVersion increments the user's token version
	IncrementTokenVersion(ctx context.Context, userID uint) error
}

// Implementation is in user_repository_impl.go
