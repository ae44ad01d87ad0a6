package handlers

import (
	"context"
	"time"

	"charity/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	db             *gorm.DB
	cache          *cache.CacheService
	gatewayEnabled bool
}

func NewHealthHandler(db *gorm.DB, cache *cache.CacheService, gatewayEnabled bool) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, gatewayEnabled: gatewayEnabled}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	status := "ok"
	database := "connected"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		database = "unavailable"
		status = "degraded"
	}

	redisStatus := "disabled"
	if h.cache != nil {
		redisStatus = "connected"
		if err := h.cache.HealthCheck(ctx); err != nil {
			redisStatus = "unavailable"
			status = "degraded"
		}
	}

	gateway := "configured"
	if !h.gatewayEnabled {
		gateway = "not configured"
	}

	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"version": "1.0.0",
		"services": fiber.Map{
			"database":        database,
			"redis":           redisStatus,
			"payment_gateway": gateway,
		},
	})
}

// CacheStats exposes the redis connection pool counters.
func (h *HealthHandler) CacheStats(c *fiber.Ctx) error {
	if h.cache == nil {
		return c.JSON(fiber.Map{"pool_stats": nil})
	}
	poolStats := h.cache.GetStats()
	return c.JSON(fiber.Map{
		"pool_stats": fiber.Map{
			"hits":        poolStats.Hits,
			"misses":      poolStats.Misses,
			"timeouts":    poolStats.Timeouts,
			"total_conns": poolStats.TotalConns,
			"idle_conns":  poolStats.IdleConns,
			"stale_conns": poolStats.StaleConns,
		},
	})
}
