package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_NAME", "")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := LoadConfig()

	if cfg.Database.Database != "hospital_emr" {
		t.Errorf("expected default db name hospital_emr, got %q", cfg.Database.Database)
	}
	if cfg.JWT.AccessTokenExpiry != 15*time.Minute {
		t.Errorf("expected 15m access expiry, got %v", cfg.JWT.AccessTokenExpiry)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("unexpected default origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("SURVEYS_ENABLED", "1")
	t.Setenv("LOGIN_RATE_BURST", "3")
	t.Setenv("REFRESH_TOKEN_EXPIRY", "not-a-duration")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,,")

	cfg := LoadConfig()

	if !cfg.Database.AutoMigrate || !cfg.Database.SurveysEnabled {
		t.Error("expected migration flags to be parsed as true")
	}
	if cfg.RateLimit.LoginBurst != 3 {
		t.Errorf("expected burst 3, got %d", cfg.RateLimit.LoginBurst)
	}
	if cfg.JWT.RefreshTokenExpiry != 168*time.Hour {
		t.Errorf("expected fallback refresh expiry, got %v", cfg.JWT.RefreshTokenExpiry)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.CORS.AllowedOrigins) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.CORS.AllowedOrigins)
	}
	for i := range want {
		if cfg.CORS.AllowedOrigins[i] != want[i] {
			t.Errorf("origin %d: expected %q, got %q", i, want[i], cfg.CORS.AllowedOrigins[i])
		}
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "3307", User: "emr", Password: "pw", Database: "h1"}
	want := "emr:pw@tcp(db:3307)/h1?charset=utf8mb4&parseTime=True&loc=UTC"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
