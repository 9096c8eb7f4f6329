package config_test

import (
	"slices"
	"testing"
	"time"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"SERVER_HOST", "SERVER_PORT", "DB_PATH", "CORS_ALLOWED_ORIGINS", "EVALUATION_YEAR", "DEFAULT_COUNTRY", "DEFAULT_CURRENCY"} {
			t.Setenv(key, "")
		}

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Server.Addr != "localhost:5001" {
			t.Errorf("Server.Addr = %q, want localhost:5001", cfg.Server.Addr)
		}
		if cfg.Finance.EvaluationYear != time.Now().Year() {
			t.Errorf("EvaluationYear = %d, want current year", cfg.Finance.EvaluationYear)
		}
		if cfg.Finance.DefaultCountry != "US" {
			t.Errorf("DefaultCountry = %q, want US", cfg.Finance.DefaultCountry)
		}
		if len(cfg.CORS.AllowedOrigins) != 2 {
			t.Errorf("AllowedOrigins = %v, want two defaults", cfg.CORS.AllowedOrigins)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_HOST", "0.0.0.0")
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
		t.Setenv("EVALUATION_YEAR", "2024")
		t.Setenv("DEFAULT_COUNTRY", "nl")
		t.Setenv("SNAPSHOT_SCHEDULE", "")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Server.Addr != "0.0.0.0:8080" {
			t.Errorf("Server.Addr = %q", cfg.Server.Addr)
		}
		if want := []string{"https://a.example", "https://b.example"}; !slices.Equal(cfg.CORS.AllowedOrigins, want) {
			t.Errorf("AllowedOrigins = %v, want %v", cfg.CORS.AllowedOrigins, want)
		}
		if cfg.Finance.EvaluationYear != 2024 {
			t.Errorf("EvaluationYear = %d, want 2024", cfg.Finance.EvaluationYear)
		}
		if cfg.Finance.DefaultCountry != "NL" {
			t.Errorf("DefaultCountry = %q, want NL", cfg.Finance.DefaultCountry)
		}
		if cfg.Snapshot.Schedule != "" {
			t.Errorf("Snapshot.Schedule = %q, want disabled", cfg.Snapshot.Schedule)
		}
	})

	t.Run("rejects a non-numeric evaluation year", func(t *testing.T) {
		t.Setenv("EVALUATION_YEAR", "soon")

		if _, err := config.Load(); err == nil {
			t.Error("expected error for invalid EVALUATION_YEAR")
		}
	})
}
