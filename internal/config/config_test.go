package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout != 2*time.Minute {
		t.Errorf("RequestTimeout = %s, want 2m", cfg.Server.RequestTimeout)
	}
	if cfg.Redis.Address != "" {
		t.Errorf("Redis.Address = %q, want empty (in-process cache)", cfg.Redis.Address)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FRONTFORGE_PORT", "9090")
	t.Setenv("FRONTFORGE_REDIS_ADDRESS", "localhost:6379")
	t.Setenv("FRONTFORGE_VERDICT_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Redis.Address != "localhost:6379" {
		t.Errorf("Redis.Address = %q", cfg.Redis.Address)
	}
	if cfg.Redis.TTL != time.Hour {
		t.Errorf("Redis.TTL = %s, want 1h", cfg.Redis.TTL)
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("FRONTFORGE_PORT", "70000")
	if _, err := Load(); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestBadIntFallsBack(t *testing.T) {
	t.Setenv("FRONTFORGE_PORT", "not-a-number")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want default 8080", cfg.Server.Port)
	}
}
