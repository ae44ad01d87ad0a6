package main

import (
	"context"
	"errors"
	"log"
	"os"

	"charity/internal/config"
	"charity/internal/models"
	"charity/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminName := config.GetEnv("ADMIN_NAME", "Administrator")

	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	db, err := repositories.Open(cfg.DB)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer repositories.Close(db)

	users := repositories.NewUserRepository(db, nil)
	ctx := context.Background()

	if _, err := users.GetByEmail(ctx, adminEmail); err == nil {
		log.Println("Admin user already exists")
		return
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		log.Fatal("Failed to look up admin user:", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	adminUser := &models.User{
		Name:         adminName,
		Email:        adminEmail,
		Password:     string(hashedPassword),
		Phone:        os.Getenv("ADMIN_PHONE"),
		Role:         models.RoleAdmin,
		TokenVersion: 1,
	}
	if err := users.Create(ctx, adminUser); err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Println("✅ Admin account created successfully!")
}
