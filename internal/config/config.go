// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type BackendConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
	PriceTTL time.Duration `yaml:"price_ttl"` // gold-price cache TTL
}

type ChatConfig struct {
	// Delay before the purchase surface auto-opens after a buy-gold chip.
	PurchaseOpenDelay time.Duration `yaml:"purchase_open_delay"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // trace|debug|info|warn|error
	Format string `yaml:"format"` // json|console
}

type DebugConfig struct {
	Port int `yaml:"port"` // health + metrics server; 0 disables
}

type Config struct {
	Runtime RuntimeConfig `yaml:"-"`
	Backend BackendConfig `yaml:"backend"`
	Chat    ChatConfig    `yaml:"chat"`
	Log     LogConfig     `yaml:"log"`
	Debug   DebugConfig   `yaml:"debug"`
}

// LoadConfig reads the YAML file at path (missing file falls back to
// defaults), then applies environment overrides. A .env file in the working
// directory is honored if present.
func LoadConfig(path string, dev bool) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Runtime: RuntimeConfig{Dev: dev},
		Backend: BackendConfig{
			BaseURL:  "http://localhost:3000",
			Timeout:  15 * time.Second,
			PriceTTL: 30 * time.Second,
		},
		Chat: ChatConfig{PurchaseOpenDelay: time.Second},
		Log:  LogConfig{Level: "info", Format: "json"},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BACKEND_BASE_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("DEBUG_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Debug.Port = p
		}
	}
}

func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = 15 * time.Second
	}
	if c.Backend.PriceTTL <= 0 {
		c.Backend.PriceTTL = 30 * time.Second
	}
	if c.Chat.PurchaseOpenDelay < 0 {
		c.Chat.PurchaseOpenDelay = 0
	}
	return nil
}
