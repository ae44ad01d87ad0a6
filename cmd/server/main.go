// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"charity/internal/config"
	"charity/internal/handlers"
	"charity/internal/repositories"
	"charity/internal/repositories/cache"
	"charity/internal/routes"
	"charity/internal/services/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const shutdownTimeout = 10 * time.Second

// main initializes and starts the HTTP server.
// It performs the following setup:
// - Loads configuration
// - Connects PostgreSQL and Redis
// - Builds the payment gateway
// - Configures middleware and routes
// - Serves until SIGINT/SIGTERM, then shuts down gracefully
func main() {
	config.LoadEnv()
	cfg := config.Load()

	db, err := repositories.Open(cfg.DB)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer repositories.Close(db)

	cacheSvc := connectCache(cfg)
	if cacheSvc != nil {
		defer func() {
			if err := cacheSvc.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}()
	}

	// A nil gateway keeps the API up; payment endpoints then answer 500.
	var gateway payment.Gateway
	if rzp, err := payment.NewRazorpay(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret); err != nil {
		log.Printf("⚠️ Razorpay disabled: %v", err)
	} else {
		gateway = rzp
		log.Println("✅ Razorpay gateway configured")
	}

	app := fiber.New(fiber.Config{
		AppName:      "charity-api",
		ErrorHandler: handlers.ErrorHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
	}))

	app.Use("/api/auth/register", authLimiter())
	app.Use("/api/auth/login", authLimiter())

	routes.SetupRoutes(app, cfg, db, cacheSvc, gateway)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("❌ Server stopped: %v", err)
		}
	}()
	log.Printf("🚀 Server listening on :%s (%s)", cfg.Port, cfg.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Printf("⚠️ Graceful shutdown failed: %v", err)
	}
}

// connectCache returns nil when redis is unreachable so the API keeps
// serving straight from the database.
func connectCache(cfg config.Config) *cache.CacheService {
	client := cache.NewRedisClient(cfg.Redis)
	cacheSvc := cache.NewCacheService(client, cfg.CacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := cacheSvc.HealthCheck(ctx); err != nil {
		log.Printf("⚠️ Redis unavailable, caching disabled: %v", err)
		_ = client.Close()
		return nil
	}

	log.Println("✅ Redis connected")
	return cacheSvc
}

func authLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}
