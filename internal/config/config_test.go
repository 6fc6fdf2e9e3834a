package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ANDROID_HOME", "GO_IOS_PATH", "WDA_HOST", "WDA_PORT", "IOS_TUNNEL_PORT",
		"MOBILE_COMMAND_TIMEOUT", "MOBILE_COMMAND_MAX_OUTPUT", "MOBILE_HTTP_TIMEOUT", "LOG_LEVEL", "LOG_DEV", "LOG_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AgentHost != "localhost" {
		t.Errorf("AgentHost = %q, want localhost", cfg.AgentHost)
	}
	if cfg.AgentPort != 8100 {
		t.Errorf("AgentPort = %d, want 8100", cfg.AgentPort)
	}
	if cfg.TunnelPort != 60105 {
		t.Errorf("TunnelPort = %d, want 60105", cfg.TunnelPort)
	}
	if cfg.CommandTimeout != 30*time.Second {
		t.Errorf("CommandTimeout = %v, want 30s", cfg.CommandTimeout)
	}
	if cfg.MaxOutput != 4*1024*1024 {
		t.Errorf("MaxOutput = %d, want 4MiB", cfg.MaxOutput)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ANDROID_HOME", "/opt/android")
	t.Setenv("GO_IOS_PATH", "/usr/local/bin/go-ios")
	t.Setenv("WDA_PORT", "8200")
	t.Setenv("MOBILE_COMMAND_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := cfg.AdbPath(), filepath.Join("/opt/android", "platform-tools", "adb"); got != want {
		t.Errorf("AdbPath() = %q, want %q", got, want)
	}
	if cfg.GoIOSBinary() != "/usr/local/bin/go-ios" {
		t.Errorf("GoIOSBinary() = %q", cfg.GoIOSBinary())
	}
	if cfg.AgentPort != 8200 {
		t.Errorf("AgentPort = %d, want 8200", cfg.AgentPort)
	}
	if cfg.CommandTimeout != 5*time.Second {
		t.Errorf("CommandTimeout = %v, want 5s", cfg.CommandTimeout)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("MOBILE_COMMAND_TIMEOUT", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Error("Load() should return error for invalid duration config")
	}
}

func TestDefault_FallbackExecutables(t *testing.T) {
	cfg := Default()
	if cfg.AdbPath() != "adb" {
		t.Errorf("AdbPath() = %q, want adb", cfg.AdbPath())
	}
	if cfg.GoIOSBinary() != "ios" {
		t.Errorf("GoIOSBinary() = %q, want ios", cfg.GoIOSBinary())
	}
}
