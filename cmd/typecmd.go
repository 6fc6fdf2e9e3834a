package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/mobile-cli/internal/output"
	"github.com/mj1618/mobile-cli/internal/platform"
)

var typeCmd = &cobra.Command{
	Use:   "type <text>",
	Short: "Type text into the focused element",
	Long: `Send text to the element that currently has keyboard focus. Tap a text
field first to focus it.`,
	Args: cobra.ExactArgs(1),
	RunE: runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
}

func runType(cmd *cobra.Command, args []string) error {
	text := args[0]
	return runAction(cmd, "type", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{}, robot.SendKeys(cmd.Context(), text)
	})
}
