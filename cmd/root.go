package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mj1618/mobile-cli/internal/config"
	"github.com/mj1618/mobile-cli/internal/logging"
	"github.com/mj1618/mobile-cli/internal/output"
	"github.com/mj1618/mobile-cli/internal/platform"
	"github.com/mj1618/mobile-cli/internal/platform/android"
	"github.com/mj1618/mobile-cli/internal/platform/ios"
	"github.com/mj1618/mobile-cli/internal/platform/simulator"
	"github.com/mj1618/mobile-cli/internal/process"
	"github.com/mj1618/mobile-cli/internal/version"
)

// app holds what PersistentPreRunE builds for the running command.
var app struct {
	cfg        *config.Config
	log        *zap.Logger
	provider   *platform.Provider
	simulators *simulator.Manager
}

var rootCmd = &cobra.Command{
	Use:   "mobile-cli",
	Short: "Inspect and drive Android devices, iOS devices and iOS simulators",
	Long: `A CLI tool that lets AI agents list mobile devices, read on-screen elements,
take screenshots and perform taps, swipes, key presses and app launches.

Android devices are driven through adb, physical iOS devices through go-ios
and WebDriverAgent, and iOS simulators through simctl and WebDriverAgent.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if app.log != nil {
		_ = app.log.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().StringP("device", "d", "", "Device ID (optional when exactly one device is connected)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Use the root persistent flag directly to avoid conflicts with
		// subcommand local flags (e.g. screenshot --format png/jpg).
		formatFlag, _ := rootCmd.PersistentFlags().GetString("format")
		format, err := output.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		output.OutputFormat = format
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDev, File: cfg.LogFile})
		if err != nil {
			return fmt.Errorf("invalid log configuration: %w", err)
		}

		setup(cfg, log)
		return nil
	}
}

// setup wires the device managers for cfg. Every backend shares one runner
// so the command timeout and output cap apply uniformly.
func setup(cfg *config.Config, log *zap.Logger) {
	runner := process.NewRunner(cfg.CommandTimeout, cfg.MaxOutput, log)

	app.cfg = cfg
	app.log = log
	app.simulators = simulator.NewManager(cfg, runner, log)
	app.provider = platform.NewProvider(
		android.NewManager(cfg.AdbPath(), runner, log),
		ios.NewManager(cfg, runner, log),
		app.simulators,
	)
}
