package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mj1618/mobile-cli/internal/model"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

var platformOrder = []model.Platform{model.PlatformAndroid, model.PlatformIOS, model.PlatformSimulator}

// RenderDeviceList writes a human-readable device list grouped by platform.
func RenderDeviceList(w io.Writer, devices []model.Device) {
	if len(devices) == 0 {
		fmt.Fprintln(w, "No devices found")
		return
	}

	byPlatform := make(map[model.Platform][]model.Device)
	for _, d := range devices {
		byPlatform[d.Platform] = append(byPlatform[d.Platform], d)
	}

	for _, p := range platformOrder {
		devs := byPlatform[p]
		if len(devs) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\n", bold(strings.ToUpper(string(p))))
		for _, d := range devs {
			line := "  " + cyan(d.ID)
			if d.Name != "" {
				line += " " + d.Name
			}
			if d.Type != "" {
				line += " " + dim("("+d.Type+")")
			}
			if d.State != "" {
				stateColor := dim
				if d.State == "Booted" {
					stateColor = green
				}
				line += " " + stateColor(fmt.Sprintf("[%s]", d.State))
			}
			fmt.Fprintln(w, line)
		}
	}
}
