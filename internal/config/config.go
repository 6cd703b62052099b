package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"literaryhub/internal/core/domain"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode   string
	Port      string
	Location  *time.Location
	Database  DatabaseConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Redis     RedisConfig
	AMQP      AMQPConfig
	Cron      CronConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
	Policy    domain.BorrowPolicy
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// RedisConfig holds the optional Redis connection used by the rate limiter
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether Redis is configured
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// AMQPConfig holds the optional broker for activity events
type AMQPConfig struct {
	URL      string
	Exchange string
}

// Enabled reports whether a broker is configured
func (a AMQPConfig) Enabled() bool {
	return a.URL != ""
}

// CronConfig holds background job schedules
type CronConfig struct {
	OverdueSweep string
}

// RateLimitConfig holds API rate limit settings
type RateLimitConfig struct {
	Max        int
	Expiration time.Duration
}

// AdminConfig holds the bootstrap admin account created by the seeder
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	loc, err := loadLocation(getEnv("APP_TIMEZONE", ""))
	if err != nil {
		return nil, err
	}

	database, err := loadDatabaseConfig(appMode)
	if err != nil {
		return nil, err
	}

	policy, err := LoadPolicy(getEnv("POLICY_FILE", ""))
	if err != nil {
		return nil, err
	}

	// Build config based on APP_MODE
	config := &Config{
		AppMode:   appMode,
		Port:      getEnv("PORT", "5000"),
		Location:  loc,
		Database:  database,
		JWT:       loadJWTConfig(appMode),
		Cookie:    loadCookieConfig(appMode),
		Redis:     loadRedisConfig(),
		AMQP:      loadAMQPConfig(),
		Cron:      CronConfig{OverdueSweep: getEnv("OVERDUE_SWEEP_CRON", "5 0 * * *")},
		RateLimit: loadRateLimitConfig(),
		Admin: AdminConfig{
			Name:     getEnv("ADMIN_NAME", "Quản trị viên"),
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Policy: policy,
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s, DB: %s, TZ: %s]", appMode, database.Driver, loc)
	return config, nil
}

// loadLocation resolves the calendar-day timezone; empty means the host zone
func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE '%s': %w", name, err)
	}
	return loc, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) (DatabaseConfig, error) {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	driver := strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", DriverMySQL)))
	defaultPort := "3306"
	switch driver {
	case DriverMySQL:
	case DriverPostgres:
		defaultPort = "5432"
	case DriverSQLite:
		defaultPort = ""
	default:
		return DatabaseConfig{}, fmt.Errorf("invalid DB_DRIVER: '%s' (must be mysql, postgres or sqlite)", driver)
	}

	return DatabaseConfig{
		Driver:   driver,
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", defaultPort),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "literaryhub"),
		SSLMode:  getEnv(prefix+"DB_SSLMODE", "disable"),
		Path:     getEnv(prefix+"DB_PATH", "literaryhub.db"),
	}, nil
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	ttlHours, err := strconv.Atoi(getEnv("ACCESS_TOKEN_HOURS", "168"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 168
	}

	return JWTConfig{
		Secret:   getEnv(prefix+"JWT_SECRET", "default_secret"),
		TokenTTL: time.Duration(ttlHours) * time.Hour,
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

func loadRedisConfig() RedisConfig {
	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	return RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func loadAMQPConfig() AMQPConfig {
	return AMQPConfig{
		URL:      getEnv("AMQP_URL", ""),
		Exchange: getEnv("AMQP_EXCHANGE", "literaryhub.activity"),
	}
}

func loadRateLimitConfig() RateLimitConfig {
	maxRequests, err := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "100"))
	if err != nil || maxRequests <= 0 {
		maxRequests = 100
	}
	window, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil || window <= 0 {
		window = time.Minute
	}
	return RateLimitConfig{Max: maxRequests, Expiration: window}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:5173"
	}
	return origins
}
