package config

import (
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "168h")
	t.Setenv("HTTP_ADDRESS", ":4000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TokenTTL != 168*time.Hour {
		t.Fatalf("TokenTTL want 168h, got %v", cfg.TokenTTL)
	}
	if cfg.HTTPAddress != ":4000" {
		t.Fatalf("HTTPAddress want :4000, got %v", cfg.HTTPAddress)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("JWT_SECRET", "s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TokenTTL != 168*time.Hour {
		t.Fatalf("default TokenTTL want 7 days, got %v", cfg.TokenTTL)
	}
	if cfg.HTTPAddress == "" {
		t.Fatal("expected default HTTP address")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error due to missing JWT_SECRET, got nil")
	}
}

func TestLoad_BadTTL(t *testing.T) {
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("TOKEN_TTL", "seven days")

	if _, err := Load(); err == nil {
		t.Fatal("expected error due to bad TOKEN_TTL, got nil")
	}
}
