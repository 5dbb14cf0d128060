package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the API server reads from the environment.
type Config struct {
	Port           string
	JobAPIBaseURL  string
	JobAPITimeout  time.Duration
	DatabaseURL    string
	GeminiAPIKey   string
	GeminiModel    string
	AllowedOrigins []string
	PageSize       int
}

// Default returns a config with every optional value filled in.
func Default() Config {
	return Config{
		Port:          "8080",
		JobAPITimeout: 10 * time.Second,
		GeminiModel:   "gemini-2.5-flash",
		PageSize:      10,
	}
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️  Could not read .env: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, so tests need not touch the real environment.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.JobAPIBaseURL = strings.TrimRight(strings.TrimSpace(getenv("JOB_API_BASE_URL")), "/")
	if cfg.JobAPIBaseURL == "" {
		return cfg, errors.New("JOB_API_BASE_URL must be set")
	}

	if v := getenv("JOB_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid JOB_API_TIMEOUT %q", v)
		}
		cfg.JobAPITimeout = d
	}

	cfg.DatabaseURL = getenv("DATABASE_URL")
	cfg.GeminiAPIKey = getenv("GEMINI_API_KEY")
	if v := getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}

	for _, origin := range strings.Split(getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	if v := getenv("PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid PAGE_SIZE %q", v)
		}
		cfg.PageSize = n
	}

	return cfg, nil
}
