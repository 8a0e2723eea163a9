package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port     int
	LogLevel string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Identity provider (Supabase-compatible auth API)
	IdentityURL        string
	IdentityAnonKey    string
	IdentityServiceKey string

	// Base URL embedded in generated game launch links
	GameBaseURL string

	// Path to the course catalog file
	CoursesFile string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:           getEnv("LOG_LEVEL", "INFO"),
		DBUser:             getEnv("SUPABASE_DB_USER", "postgres"),
		DBPassword:         getEnv("SUPABASE_DB_PASSWORD", "password"),
		DBHost:             getEnv("SUPABASE_DB_HOST", "127.0.0.1"),
		DBPort:             getEnv("SUPABASE_DB_PORT", "5432"),
		DBName:             getEnv("SUPABASE_DB_NAME", "postgres"),
		IdentityURL:        getEnv("SUPABASE_URL", ""),
		IdentityAnonKey:    getEnv("SUPABASE_ANON_KEY", ""),
		IdentityServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
		GameBaseURL:        getEnv("GAME_BASE_URL", "https://game.com/build"),
		CoursesFile:        getEnv("COURSES_FILE", "configs/courses.json"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.IdentityURL == "" || cfg.IdentityAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_ANON_KEY environment variables must be set")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
