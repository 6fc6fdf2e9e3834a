package platform

import (
	"context"

	"github.com/mj1618/mobile-cli/internal/model"
)

// Robot is the capability surface every backend exposes for one device.
// A Robot is scoped to a single device identifier and keeps no state
// across calls.
type Robot interface {
	// GetScreenSize returns the logical screen size and pixel scale.
	GetScreenSize(ctx context.Context) (model.ScreenSize, error)

	ListApps(ctx context.Context) ([]model.AppInfo, error)
	LaunchApp(ctx context.Context, packageName string) error
	TerminateApp(ctx context.Context, packageName string) error

	// Tap touches the screen at (x, y) in device points.
	Tap(ctx context.Context, x, y int) error
	Swipe(ctx context.Context, direction model.Direction) error
	SendKeys(ctx context.Context, text string) error

	// PressButton presses a hardware or virtual button. Names outside the
	// backend's supported set fail with an ActionableError.
	PressButton(ctx context.Context, button string) error

	OpenURL(ctx context.Context, url string) error

	// GetElementsOnScreen returns the normalized accessibility elements
	// currently visible.
	GetElementsOnScreen(ctx context.Context) ([]model.ScreenElement, error)

	// GetScreenshot returns the screen as PNG bytes.
	GetScreenshot(ctx context.Context) ([]byte, error)

	SetOrientation(ctx context.Context, orientation model.Orientation) error
	GetOrientation(ctx context.Context) (model.Orientation, error)
}

// DeviceManager enumerates the devices of one platform and builds robots
// for them.
type DeviceManager interface {
	Platform() model.Platform

	// Devices lists the available devices. Managers degrade to an empty
	// list when their bridge tool is unavailable.
	Devices(ctx context.Context) ([]model.Device, error)

	Robot(deviceID string) Robot
}
