package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the tool locations and limits shared by every backend.
// It is loaded once per invocation and passed to each manager and robot.
type Config struct {
	// Android device bridge
	AndroidHome string `envconfig:"ANDROID_HOME"`

	// Physical iOS bridge (go-ios) and its tunnel
	GoIOSPath  string `envconfig:"GO_IOS_PATH"`
	TunnelPort int    `envconfig:"IOS_TUNNEL_PORT" default:"60105"`

	// On-device automation agent (WebDriverAgent)
	AgentHost   string        `envconfig:"WDA_HOST" default:"localhost"`
	AgentPort   int           `envconfig:"WDA_PORT" default:"8100"`
	HTTPTimeout time.Duration `envconfig:"MOBILE_HTTP_TIMEOUT" default:"30s"`

	// Bounds applied to every subprocess invocation
	CommandTimeout time.Duration `envconfig:"MOBILE_COMMAND_TIMEOUT" default:"30s"`
	MaxOutput      int           `envconfig:"MOBILE_COMMAND_MAX_OUTPUT" default:"4194304"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
	LogFile  string `envconfig:"LOG_FILE"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns the default configuration without reading the environment.
func Default() *Config {
	return &Config{
		TunnelPort:     60105,
		AgentHost:      "localhost",
		AgentPort:      8100,
		HTTPTimeout:    30 * time.Second,
		CommandTimeout: 30 * time.Second,
		MaxOutput:      4 * 1024 * 1024,
		LogLevel:       "info",
	}
}

// AdbPath returns the adb executable: inside ANDROID_HOME when set,
// otherwise the bare name resolved through PATH.
func (c *Config) AdbPath() string {
	if c.AndroidHome != "" {
		return filepath.Join(c.AndroidHome, "platform-tools", "adb")
	}
	return "adb"
}

// GoIOSBinary returns the go-ios executable, falling back to "ios" on PATH.
func (c *Config) GoIOSBinary() string {
	if c.GoIOSPath != "" {
		return c.GoIOSPath
	}
	return "ios"
}
