package config

import (
	"fmt"
	"os"
)

// Config carries everything the process needs from the environment. It is
// built once in main and passed down explicitly; nothing reads os.Getenv
// after startup.
type Config struct {
	SessionSecret string // signs the session cookie
	DatabaseURL   string // Postgres DSN
	Port          string
}

// Load reads the environment. SESSION_SECRET and DATABASE_URL are required;
// the process must not come up without them.
func Load() (*Config, error) {
	cfg := &Config{
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          os.Getenv("PORT"),
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is not set")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}
