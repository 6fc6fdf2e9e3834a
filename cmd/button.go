package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mj1618/mobile-cli/internal/output"
	"github.com/mj1618/mobile-cli/internal/platform"
)

var buttonCmd = &cobra.Command{
	Use:   "button <name>",
	Short: "Press a hardware or navigation button",
	Long: `Press a named button.

Android: HOME, BACK, VOLUME_UP, VOLUME_DOWN, ENTER,
         DPAD_CENTER, DPAD_UP, DPAD_DOWN, DPAD_LEFT, DPAD_RIGHT
iOS:     HOME, VOLUME_UP, VOLUME_DOWN, ENTER`,
	Args: cobra.ExactArgs(1),
	RunE: runButton,
}

func init() {
	rootCmd.AddCommand(buttonCmd)
}

func runButton(cmd *cobra.Command, args []string) error {
	button := strings.ToUpper(args[0])
	return runAction(cmd, "button", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{Target: button}, robot.PressButton(cmd.Context(), button)
	})
}
