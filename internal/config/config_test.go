package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TASKBOX_PORT", "")
	t.Setenv("TASKBOX_JWT_SECRET", "")
	t.Setenv("TASKBOX_ACCESS_TTL", "")

	cfg := Load()
	if cfg.Port != "5000" {
		t.Fatalf("default port: %q", cfg.Port)
	}
	if cfg.JWTSecret != DefaultSecret {
		t.Fatalf("default secret: %q", cfg.JWTSecret)
	}
	if cfg.AccessTTL != time.Hour {
		t.Fatalf("default ttl: %v", cfg.AccessTTL)
	}
}

func TestLoad_EnvOverlay(t *testing.T) {
	t.Setenv("TASKBOX_PORT", "8080")
	t.Setenv("TASKBOX_JWT_SECRET", "prod-secret")
	t.Setenv("TASKBOX_ACCESS_TTL", "30m")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port: %q", cfg.Port)
	}
	if cfg.JWTSecret != "prod-secret" {
		t.Fatalf("secret: %q", cfg.JWTSecret)
	}
	if cfg.AccessTTL != 30*time.Minute {
		t.Fatalf("ttl: %v", cfg.AccessTTL)
	}
}

func TestLoad_BadTTLKeepsDefault(t *testing.T) {
	t.Setenv("TASKBOX_ACCESS_TTL", "soon")

	cfg := Load()
	if cfg.AccessTTL != time.Hour {
		t.Fatalf("bad ttl must fall back to default, got %v", cfg.AccessTTL)
	}
}
