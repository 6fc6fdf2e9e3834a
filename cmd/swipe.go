package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/output"
	"github.com/mj1618/mobile-cli/internal/platform"
)

var swipeCmd = &cobra.Command{
	Use:   "swipe <up|down>",
	Short: "Swipe the screen vertically",
	Args:  cobra.ExactArgs(1),
	RunE:  runSwipe,
}

func init() {
	rootCmd.AddCommand(swipeCmd)
}

func runSwipe(cmd *cobra.Command, args []string) error {
	dir, err := model.ParseDirection(args[0])
	if err != nil {
		return err
	}
	return runAction(cmd, "swipe", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{Target: string(dir)}, robot.Swipe(cmd.Context(), dir)
	})
}
