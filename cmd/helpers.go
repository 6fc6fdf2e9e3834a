package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/output"
	"github.com/mj1618/mobile-cli/internal/platform"
)

// resolveRobot returns the robot for --device, or for the only connected
// device when the flag is empty.
func resolveRobot(cmd *cobra.Command) (platform.Robot, model.Device, error) {
	deviceID, _ := cmd.Flags().GetString("device")
	return app.provider.Robot(cmd.Context(), deviceID)
}

// runAction resolves the device, runs fn against it and prints the result.
func runAction(cmd *cobra.Command, action string, fn func(platform.Robot) (output.ActionResult, error)) error {
	robot, dev, err := resolveRobot(cmd)
	if err != nil {
		return err
	}
	result, err := fn(robot)
	if err != nil {
		return err
	}
	result.OK = true
	result.Action = action
	result.Device = dev.ID
	return output.Print(result)
}

// parseCoordinate parses a positional x or y argument.
func parseCoordinate(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s coordinate %q: must be an integer", name, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid %s coordinate %d: must not be negative", name, v)
	}
	return v, nil
}
