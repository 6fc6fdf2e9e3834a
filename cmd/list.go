package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/output"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List connected devices",
	Long: `List Android devices visible to adb, physical iOS devices visible to go-ios
and booted iOS simulators.

Without --format the list is rendered as a grouped table. With --format
yaml or json it is printed as structured data.`,
	Args: cobra.NoArgs,
	RunE: runDevices,
}

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List launchable apps installed on the device",
	Args:  cobra.NoArgs,
	RunE:  runApps,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(appsCmd)
	devicesCmd.Flags().Bool("all", false, "Include simulators that are not booted")
}

func runDevices(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	devices, err := app.provider.Devices(ctx)
	if err != nil {
		return err
	}

	if all, _ := cmd.Flags().GetBool("all"); all {
		sims, err := app.simulators.Simulators(ctx)
		if err != nil {
			return err
		}
		devices = withAllSimulators(devices, sims)
	}

	if !rootCmd.PersistentFlags().Changed("format") {
		output.RenderDeviceList(cmd.OutOrStdout(), devices)
		return nil
	}
	if devices == nil {
		devices = []model.Device{}
	}
	return output.Print(devices)
}

// withAllSimulators replaces the booted simulators in devices with sims.
func withAllSimulators(devices, sims []model.Device) []model.Device {
	result := make([]model.Device, 0, len(devices)+len(sims))
	for _, d := range devices {
		if d.Platform != model.PlatformSimulator {
			result = append(result, d)
		}
	}
	for _, s := range sims {
		s.Platform = model.PlatformSimulator
		result = append(result, s)
	}
	return result
}

func runApps(cmd *cobra.Command, args []string) error {
	robot, _, err := resolveRobot(cmd)
	if err != nil {
		return err
	}
	apps, err := robot.ListApps(cmd.Context())
	if err != nil {
		return err
	}
	if apps == nil {
		apps = []model.AppInfo{}
	}
	return output.Print(apps)
}
