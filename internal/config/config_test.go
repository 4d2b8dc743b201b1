package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target: &cfg,
		Lookuper: envconfig.MapLookuper(map[string]string{
			"TELEGRAM_BOT_TOKEN": "token",
			"RESELLER_API_KEY":   "key",
			"RESELLER_API_URL":   "https://reseller.example/api/v2",
		}),
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if cfg.Env != "local" {
		t.Errorf("Env = %q, want local", cfg.Env)
	}
	if cfg.Reseller.Timeout != 30*time.Second {
		t.Errorf("Reseller.Timeout = %v, want 30s", cfg.Reseller.Timeout)
	}
	if cfg.Sessions.TTL != 30*time.Minute {
		t.Errorf("Sessions.TTL = %v, want 30m", cfg.Sessions.TTL)
	}
	if cfg.Sessions.CleanupSchedule != "@every 1m" {
		t.Errorf("Sessions.CleanupSchedule = %q", cfg.Sessions.CleanupSchedule)
	}
	if got := cfg.Observability.ADDR(); got != "127.0.0.1:8383" {
		t.Errorf("Observability.ADDR() = %q", got)
	}
	if cfg.Tracing.Exporter != "none" || cfg.Tracing.SampleRatio != 1.0 {
		t.Errorf("Tracing = %+v, want none exporter with full sampling", cfg.Tracing)
	}
}

func TestConfigRequiredSecrets(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing api key",
			env: map[string]string{
				"TELEGRAM_BOT_TOKEN": "token",
				"RESELLER_API_URL":   "https://reseller.example/api/v2",
			},
		},
		{
			name: "missing api url",
			env: map[string]string{
				"TELEGRAM_BOT_TOKEN": "token",
				"RESELLER_API_KEY":   "key",
			},
		},
		{
			name: "missing bot token",
			env: map[string]string{
				"RESELLER_API_KEY": "key",
				"RESELLER_API_URL": "https://reseller.example/api/v2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
				Target:   &cfg,
				Lookuper: envconfig.MapLookuper(tt.env),
			})
			if err == nil {
				t.Fatal("expected error for missing required variable")
			}
		})
	}
}
