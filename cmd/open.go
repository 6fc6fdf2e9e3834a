package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/mobile-cli/internal/output"
	"github.com/mj1618/mobile-cli/internal/platform"
)

var openCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Open a URL on the device",
	Long: `Open a URL with the device's default handler. Web URLs open in the
browser; custom schemes open the app that registered them.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

var launchCmd = &cobra.Command{
	Use:   "launch <package>",
	Short: "Launch an app by package name or bundle ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runLaunch,
}

var terminateCmd = &cobra.Command{
	Use:   "terminate <package>",
	Short: "Stop a running app by package name or bundle ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runTerminate,
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(terminateCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	url := args[0]
	return runAction(cmd, "open", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{Target: url}, robot.OpenURL(cmd.Context(), url)
	})
}

func runLaunch(cmd *cobra.Command, args []string) error {
	pkg := args[0]
	return runAction(cmd, "launch", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{Target: pkg}, robot.LaunchApp(cmd.Context(), pkg)
	})
}

func runTerminate(cmd *cobra.Command, args []string) error {
	pkg := args[0]
	return runAction(cmd, "terminate", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{Target: pkg}, robot.TerminateApp(cmd.Context(), pkg)
	})
}
