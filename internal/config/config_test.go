package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Backend.BaseURL != "http://localhost:3000" {
		t.Fatalf("base url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 15*time.Second {
		t.Fatalf("timeout = %v", cfg.Backend.Timeout)
	}
	if cfg.Chat.PurchaseOpenDelay != time.Second {
		t.Fatalf("open delay = %v", cfg.Chat.PurchaseOpenDelay)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
backend:
  base_url: https://gold.example.com
  timeout: 5s
  price_ttl: 10s
chat:
  purchase_open_delay: 250ms
log:
  level: debug
  format: console
debug:
  port: 9091
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path, true)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Backend.BaseURL != "https://gold.example.com" {
		t.Fatalf("base url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.PriceTTL != 10*time.Second {
		t.Fatalf("price ttl = %v", cfg.Backend.PriceTTL)
	}
	if cfg.Chat.PurchaseOpenDelay != 250*time.Millisecond {
		t.Fatalf("open delay = %v", cfg.Chat.PurchaseOpenDelay)
	}
	if cfg.Debug.Port != 9091 {
		t.Fatalf("debug port = %d", cfg.Debug.Port)
	}
	if !cfg.Runtime.Dev {
		t.Fatal("dev flag not carried")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://override:3000")
	t.Setenv("LOG_LEVEL", "trace")
	t.Setenv("DEBUG_PORT", "7777")

	cfg, err := LoadConfig("", false)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Backend.BaseURL != "http://override:3000" {
		t.Fatalf("base url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Log.Level != "trace" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
	if cfg.Debug.Port != 7777 {
		t.Fatalf("debug port = %d", cfg.Debug.Port)
	}
}
