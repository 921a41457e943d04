package config

import (
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.Environment != "dev" {
		t.Errorf("Environment = %q, want dev", cfg.Environment)
	}
	if cfg.Port != 4000 {
		t.Errorf("Port = %d, want 4000", cfg.Port)
	}
	if cfg.APIBaseURL == "" {
		t.Error("APIBaseURL is empty")
	}
}

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "invalid environment", key: "ENVIRONMENT", value: "production"},
		{name: "port out of range", key: "PORT", value: "70000"},
		{name: "negative read timeout", key: "READ_TIMEOUT", value: "-1s"},
		{name: "zero upload limit", key: "MAX_UPLOAD_BYTES", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if _, err := NewConfig(); err == nil {
				t.Errorf("NewConfig() with %s=%s expected error, got nil", tt.key, tt.value)
			}
		})
	}
}
