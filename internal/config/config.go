package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// DevJWTSecret is the fallback signing secret used outside production when
// jwtSecret is not configured. Production startup fails instead.
const DevJWTSecret = "insecure-dev-secret"

type Config struct {
	Server struct {
		Host      string `json:"host"`
		Port      int    `json:"port"`
		Env       string `json:"env"`
		JWTSecret string `json:"jwtSecret"`
	} `json:"server"`
	Postgres struct {
		DSN string `json:"dsn"`
	} `json:"postgres"`
}

// IsProduction reports whether the server runs with production hardening
// (secure cookies, mandatory signing secret).
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads config.json from disk (singleton)
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		raw, err := os.ReadFile(path)
		if err != nil {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}
		var c Config
		if err := json.Unmarshal(raw, &c); err != nil {
			cfgErr = fmt.Errorf("invalid config format: %w", err)
			return
		}
		if c.Server.JWTSecret == "" {
			if c.IsProduction() {
				cfgErr = errors.New("jwtSecret must be set in production")
				return
			}
			c.Server.JWTSecret = DevJWTSecret
		}
		if c.Postgres.DSN == "" {
			cfgErr = errors.New("postgres dsn must be set in config")
			return
		}
		cfg = &c
	})
	return cfg, cfgErr
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
