package config_test

import (
	"testing"
	"time"

	"github.com/printhaus/printshop/internal/config"
)

func TestServerConfig_FinalizeDefaults(t *testing.T) {
	var cfg config.ServerConfig
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:3000" {
		t.Errorf("Addr = %q, want 0.0.0.0:3000", cfg.Addr())
	}
	if cfg.ReadTimeoutDuration() != 30*time.Second {
		t.Errorf("ReadTimeoutDuration = %v, want 30s", cfg.ReadTimeoutDuration())
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("ShutdownTimeoutDuration = %v, want 30s", cfg.ShutdownTimeoutDuration())
	}
}

func TestServerConfig_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvServerPort, "8080")

	var cfg config.ServerConfig
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
}

func TestServerConfig_InvalidTimeout(t *testing.T) {
	cfg := config.ServerConfig{ReadTimeout: "whenever"}
	if err := cfg.Finalize(); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestServerConfig_Merge(t *testing.T) {
	base := config.ServerConfig{Host: "0.0.0.0", Port: 3000, ReadTimeout: "30s"}
	overlay := config.ServerConfig{Port: 4000}

	base.Merge(&overlay)

	if base.Port != 4000 {
		t.Errorf("Port = %d, want 4000", base.Port)
	}
	if base.Host != "0.0.0.0" {
		t.Errorf("Host = %q, zero overlay value should not overwrite", base.Host)
	}
	if base.ReadTimeout != "30s" {
		t.Errorf("ReadTimeout = %q, zero overlay value should not overwrite", base.ReadTimeout)
	}
}

func TestStorageConfig_MaxUploadSize(t *testing.T) {
	cfg := config.StorageConfig{MaxUploadSize: "10MB"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if cfg.MaxUploadSizeBytes() != 10_000_000 {
		t.Errorf("MaxUploadSizeBytes = %d, want 10000000", cfg.MaxUploadSizeBytes())
	}
}

func TestStorageConfig_InvalidMaxUploadSize(t *testing.T) {
	cfg := config.StorageConfig{MaxUploadSize: "lots"}
	if err := cfg.Finalize(); err == nil {
		t.Error("expected error for invalid size")
	}
}

func TestAuthConfig_RequiresSecret(t *testing.T) {
	t.Setenv(config.EnvAuthSecret, "")

	var cfg config.AuthConfig
	if err := cfg.Finalize(); err == nil {
		t.Error("expected error for missing secret")
	}
}

func TestAuthConfig_TokenTTL(t *testing.T) {
	t.Setenv(config.EnvAuthSecret, "test-secret")

	var cfg config.AuthConfig
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if cfg.TokenTTLDuration() != 24*time.Hour {
		t.Errorf("TokenTTLDuration = %v, want 24h", cfg.TokenTTLDuration())
	}
}
