package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	BaseURL string        // API base URL, e.g. https://api.forkful.app
	Home    string        // config directory, e.g. $HOME/.forkful
	Timeout time.Duration // per-request timeout
	RPS     float64       // outbound request budget; 0 disables throttling
}

// LoadConfig reads configuration from the environment, with a best-effort
// .env file load first.
func LoadConfig() (Config, error) {
	// Missing .env is fine; real deployments use plain env vars.
	_ = godotenv.Load()

	cfg := Config{
		BaseURL: getEnv("FORKFUL_API_URL", "http://127.0.0.1:8000"),
		Home:    os.Getenv("FORKFUL_HOME"),
		Timeout: 30 * time.Second,
	}
	if v := os.Getenv("FORKFUL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("FORKFUL_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("FORKFUL_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("FORKFUL_RPS: %w", err)
		}
		cfg.RPS = f
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".forkful")
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("FORKFUL_API_URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("FORKFUL_TIMEOUT must be positive")
	}
	if c.RPS < 0 {
		return fmt.Errorf("FORKFUL_RPS must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
