package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment at startup.
type Config struct {
	Port        string
	Env         string
	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigins string
	Currency    string
	CacheTTL    time.Duration

	DB       DBConfig
	Redis    RedisConfig
	Razorpay RazorpayConfig
}

// DBConfig holds postgres connection and pool settings.
type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// RazorpayConfig carries the gateway credentials. Both fields empty is a
// valid configuration: payment endpoints then answer "gateway not configured".
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

// Configured reports whether both credentials are present.
func (r RazorpayConfig) Configured() bool {
	return r.KeyID != "" && r.KeySecret != ""
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads the process environment into a Config.
func Load() Config {
	return Config{
		Port:        GetEnv("PORT", "5000"),
		Env:         GetEnv("ENV", "development"),
		JWTSecret:   GetEnv("JWT_SECRET", "charity-dev-secret"),
		JWTTTL:      GetDurationEnv("JWT_TTL", 7*24*time.Hour),
		CORSOrigins: GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		Currency:    strings.ToUpper(GetEnv("PAYMENT_CURRENCY", "INR")),
		CacheTTL:    GetDurationEnv("CACHE_TTL", 5*time.Minute),
		DB: DBConfig{
			Host:            GetEnv("DB_HOST", "localhost"),
			Port:            GetEnv("DB_PORT", "5432"),
			User:            GetEnv("DB_USER", "postgres"),
			Password:        GetEnv("DB_PASSWORD", "postgres"),
			Name:            GetEnv("DB_NAME", "charity"),
			SSLMode:         GetEnv("DB_SSLMODE", "disable"),
			MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
		},
		Razorpay: RazorpayConfig{
			KeyID:     GetEnv("RAZORPAY_KEY_ID", ""),
			KeySecret: GetEnv("RAZORPAY_KEY_SECRET", ""),
		},
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv parses a time.Duration ("30m", "1h") or returns the default.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		log.Printf("invalid duration for %s=%q, using default %s", key, val, defaultVal)
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
