package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/output"
	"github.com/mj1618/mobile-cli/internal/platform"
)

// OrientationResult is the output of `orientation get`.
type OrientationResult struct {
	Device      string            `yaml:"device"      json:"device"`
	Orientation model.Orientation `yaml:"orientation" json:"orientation"`
}

var orientationCmd = &cobra.Command{
	Use:   "orientation",
	Short: "Get or set the screen orientation",
}

var orientationGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current screen orientation",
	Args:  cobra.NoArgs,
	RunE:  runOrientationGet,
}

var orientationSetCmd = &cobra.Command{
	Use:   "set <portrait|landscape>",
	Short: "Rotate the screen",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrientationSet,
}

var screenSizeCmd = &cobra.Command{
	Use:   "screen-size",
	Short: "Print the screen size in points and the pixel scale",
	Args:  cobra.NoArgs,
	RunE:  runScreenSize,
}

func init() {
	rootCmd.AddCommand(orientationCmd)
	rootCmd.AddCommand(screenSizeCmd)
	orientationCmd.AddCommand(orientationGetCmd)
	orientationCmd.AddCommand(orientationSetCmd)
}

func runOrientationGet(cmd *cobra.Command, args []string) error {
	robot, dev, err := resolveRobot(cmd)
	if err != nil {
		return err
	}
	o, err := robot.GetOrientation(cmd.Context())
	if err != nil {
		return err
	}
	return output.Print(OrientationResult{Device: dev.ID, Orientation: o})
}

func runOrientationSet(cmd *cobra.Command, args []string) error {
	o, err := model.ParseOrientation(args[0])
	if err != nil {
		return err
	}
	return runAction(cmd, "orientation", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{Target: string(o)}, robot.SetOrientation(cmd.Context(), o)
	})
}

func runScreenSize(cmd *cobra.Command, args []string) error {
	robot, _, err := resolveRobot(cmd)
	if err != nil {
		return err
	}
	size, err := robot.GetScreenSize(cmd.Context())
	if err != nil {
		return err
	}
	return output.Print(size)
}
