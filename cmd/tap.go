package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/mobile-cli/internal/output"
	"github.com/mj1618/mobile-cli/internal/platform"
)

var tapCmd = &cobra.Command{
	Use:   "tap <x> <y>",
	Short: "Tap at screen coordinates",
	Long: `Tap at the given coordinates in device points. Use "elements" to find the
rect of a control and tap its centre.`,
	Args: cobra.ExactArgs(2),
	RunE: runTap,
}

func init() {
	rootCmd.AddCommand(tapCmd)
}

func runTap(cmd *cobra.Command, args []string) error {
	x, err := parseCoordinate("x", args[0])
	if err != nil {
		return err
	}
	y, err := parseCoordinate("y", args[1])
	if err != nil {
		return err
	}
	return runAction(cmd, "tap", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{X: x, Y: y}, robot.Tap(cmd.Context(), x, y)
	})
}
