package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 3050
	defaultEnv        = "development"
	defaultLocale     = "ko"
)

// Load reads the YAML config file, applies defaults and environment
// overrides, and validates the result.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, fmt.Errorf("database dsn is required (config `dsn` or ATELIER_DSN)")
	}
	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.ToLower(strings.TrimSpace(c.Env)) != "production"
}

// EnabledAIProvider returns the first enabled AI provider, or nil.
func (c *AppConfig) EnabledAIProvider() *AIProvider {
	for i := range c.AI.Providers {
		if c.AI.Providers[i].Enabled {
			return &c.AI.Providers[i]
		}
	}
	return nil
}

// AIProviderByID returns the provider with the given id, or nil.
func (c *AppConfig) AIProviderByID(id string) *AIProvider {
	for i := range c.AI.Providers {
		if c.AI.Providers[i].ID == id {
			return &c.AI.Providers[i]
		}
	}
	return nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("ATELIER_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("ATELIER_REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("ATELIER_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("ATELIER_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("ATELIER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	if v := os.Getenv("ATELIER_S3_SECRET_ACCESS_KEY"); v != "" {
		cfg.S3.SecretAccessKey = v
	}
	if v := os.Getenv("ATELIER_MAIL_PASS"); v != "" {
		cfg.Mail.Pass = v
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://localhost:6379/0"
	}
	if cfg.Site.Name == "" {
		cfg.Site.Name = "Maison Lumière"
	}
	if cfg.Site.DefaultLocale == "" {
		cfg.Site.DefaultLocale = defaultLocale
	}
	if cfg.Site.WebURL == "" {
		cfg.Site.WebURL = "http://localhost:3000"
	}
	if cfg.Site.ServerURL == "" {
		cfg.Site.ServerURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	if cfg.Newsletter.BatchSize <= 0 {
		cfg.Newsletter.BatchSize = 20
	}
}
