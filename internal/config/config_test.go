package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.RateLimit.CleanupSchedule != "*/5 * * * *" {
		t.Errorf("CleanupSchedule = %q", cfg.RateLimit.CleanupSchedule)
	}
	if cfg.Dataset.FixturePath != "" {
		t.Errorf("FixturePath = %q, want built-in seed", cfg.Dataset.FixturePath)
	}
	if !cfg.Features.MetricsEnabled || !cfg.Features.SwaggerEnabled {
		t.Errorf("Features = %+v", cfg.Features)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("SEED_FIXTURE_PATH", "/etc/mssp/dataset.yaml")
	t.Setenv("SWAGGER_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:9090" {
		t.Errorf("Addr() = %s", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("ReadTimeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.RateLimit.RequestsPerSecond != 2.5 || cfg.RateLimit.Burst != 5 {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if cfg.Dataset.FixturePath != "/etc/mssp/dataset.yaml" {
		t.Errorf("FixturePath = %q", cfg.Dataset.FixturePath)
	}
	if cfg.Features.SwaggerEnabled {
		t.Error("SwaggerEnabled should be false")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: 8080},
			Logging:   LoggingConfig{Format: "json"},
			RateLimit: RateLimitConfig{RequestsPerSecond: 10, Burst: 20, CleanupSchedule: "@every 5m"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "invalid server port"},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "invalid server port"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "unsupported log format"},
		{"zero rps", func(c *Config) { c.RateLimit.RequestsPerSecond = 0 }, "RATE_LIMIT_RPS"},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, "RATE_LIMIT_BURST"},
		{"bad schedule", func(c *Config) { c.RateLimit.CleanupSchedule = "often" }, "RATE_LIMIT_CLEANUP_SCHEDULE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
