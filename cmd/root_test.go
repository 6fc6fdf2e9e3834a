package cmd

import (
	"testing"

	"github.com/mj1618/mobile-cli/internal/config"
	"github.com/mj1618/mobile-cli/internal/logging"
	"github.com/mj1618/mobile-cli/internal/model"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{
		"devices", "apps", "launch", "terminate", "tap", "swipe", "type",
		"button", "open", "elements", "screenshot", "screen-size", "orientation", "serve",
	}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	tests := []struct {
		name     string
		flagType string
	}{
		{"format", "string"},
		{"pretty", "bool"},
		{"device", "string"},
	}
	for _, tt := range tests {
		f := rootCmd.PersistentFlags().Lookup(tt.name)
		if f == nil {
			t.Errorf("expected persistent flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestOrientationCommand_Subcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, c := range orientationCmd.Commands() {
		found[c.Name()] = true
	}
	for _, name := range []string{"get", "set"} {
		if !found[name] {
			t.Errorf("expected orientation subcommand %q not found", name)
		}
	}
}

func TestScreenshotCommand_Flags(t *testing.T) {
	tests := []struct {
		name     string
		flagType string
	}{
		{"output", "string"},
		{"format", "string"},
		{"quality", "int"},
		{"width", "int"},
		{"points", "bool"},
		{"annotate", "string"},
	}
	for _, tt := range tests {
		f := screenshotCmd.Flags().Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestServeCommand_Flags(t *testing.T) {
	tests := []struct {
		name     string
		flagType string
		def      string
	}{
		{"transport", "string", "stdio"},
		{"port", "int", "8080"},
		{"cache-ttl", "int", "500"},
	}
	for _, tt := range tests {
		f := serveCmd.Flags().Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
		if f.DefValue != tt.def {
			t.Errorf("flag %q: expected default %q, got %q", tt.name, tt.def, f.DefValue)
		}
	}
}

func TestSetup_RegistersAllPlatforms(t *testing.T) {
	setup(config.Default(), logging.NewOrNop(logging.DefaultConfig()))

	if app.provider == nil || app.simulators == nil {
		t.Fatal("setup() left provider or simulator manager unset")
	}
	want := []model.Platform{model.PlatformAndroid, model.PlatformIOS, model.PlatformSimulator}
	if len(app.provider.Managers) != len(want) {
		t.Fatalf("got %d managers, want %d", len(app.provider.Managers), len(want))
	}
	for i, m := range app.provider.Managers {
		if m.Platform() != want[i] {
			t.Errorf("manager %d platform = %q, want %q", i, m.Platform(), want[i])
		}
	}
}
