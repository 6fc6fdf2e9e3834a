package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func deviceParam() mcp.ToolOption {
	return mcp.WithString("device", mcp.Description("Device ID (optional when exactly one device is connected)"))
}

func (s *Server) registerTools() {
	// list_devices
	s.mcp.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List connected Android devices, physical iOS devices and booted iOS simulators"),
		),
		s.handleListDevices,
	)

	// list_apps
	s.mcp.AddTool(
		mcp.NewTool("list_apps",
			mcp.WithDescription("List launchable applications installed on the device"),
			deviceParam(),
		),
		s.handleListApps,
	)

	// launch_app
	s.mcp.AddTool(
		mcp.NewTool("launch_app",
			mcp.WithDescription("Launch an application by package name or bundle identifier"),
			deviceParam(),
			mcp.WithString("package", mcp.Required(), mcp.Description("Package name (Android) or bundle ID (iOS)")),
		),
		s.handleLaunchApp,
	)

	// terminate_app
	s.mcp.AddTool(
		mcp.NewTool("terminate_app",
			mcp.WithDescription("Stop a running application"),
			deviceParam(),
			mcp.WithString("package", mcp.Required(), mcp.Description("Package name (Android) or bundle ID (iOS)")),
		),
		s.handleTerminateApp,
	)

	// screen_size
	s.mcp.AddTool(
		mcp.NewTool("screen_size",
			mcp.WithDescription("Get the screen size in points and the pixel scale"),
			deviceParam(),
		),
		s.handleScreenSize,
	)

	// tap
	s.mcp.AddTool(
		mcp.NewTool("tap",
			mcp.WithDescription("Tap at screen coordinates (points). Use list_elements to find coordinates."),
			deviceParam(),
			mcp.WithNumber("x", mcp.Required(), mcp.Description("X coordinate")),
			mcp.WithNumber("y", mcp.Required(), mcp.Description("Y coordinate")),
		),
		s.handleTap,
	)

	// swipe
	s.mcp.AddTool(
		mcp.NewTool("swipe",
			mcp.WithDescription("Swipe the screen up or down"),
			deviceParam(),
			mcp.WithString("direction", mcp.Required(), mcp.Description("Swipe direction: up, down")),
		),
		s.handleSwipe,
	)

	// type_keys
	s.mcp.AddTool(
		mcp.NewTool("type_keys",
			mcp.WithDescription("Type text into the focused element"),
			deviceParam(),
			mcp.WithString("text", mcp.Required(), mcp.Description("Text to type")),
		),
		s.handleTypeKeys,
	)

	// press_button
	s.mcp.AddTool(
		mcp.NewTool("press_button",
			mcp.WithDescription("Press a hardware or navigation button: HOME, BACK, VOLUME_UP, VOLUME_DOWN, ENTER, DPAD_*"),
			deviceParam(),
			mcp.WithString("button", mcp.Required(), mcp.Description("Button name")),
		),
		s.handlePressButton,
	)

	// open_url
	s.mcp.AddTool(
		mcp.NewTool("open_url",
			mcp.WithDescription("Open a URL with the device's default handler"),
			deviceParam(),
			mcp.WithString("url", mcp.Required(), mcp.Description("URL to open")),
		),
		s.handleOpenURL,
	)

	// list_elements
	s.mcp.AddTool(
		mcp.NewTool("list_elements",
			mcp.WithDescription("List the on-screen elements with their type, text, label and rect. Tap the center of a rect to interact with it."),
			deviceParam(),
			mcp.WithString("text", mcp.Description("Filter elements by text, label, name, value or identifier")),
			mcp.WithString("types", mcp.Description("Comma-separated element types to keep")),
		),
		s.handleListElements,
	)

	// screenshot
	s.mcp.AddTool(
		mcp.NewTool("screenshot",
			mcp.WithDescription("Take a screenshot of the device screen, scaled to the screen size in points"),
			deviceParam(),
			mcp.WithString("format", mcp.Description("Image format: jpg (default), png")),
			mcp.WithNumber("quality", mcp.Description("JPEG quality 1-100 (default: 75)")),
		),
		s.handleScreenshot,
	)

	// set_orientation
	s.mcp.AddTool(
		mcp.NewTool("set_orientation",
			mcp.WithDescription("Set the screen orientation"),
			deviceParam(),
			mcp.WithString("orientation", mcp.Required(), mcp.Description("portrait or landscape")),
		),
		s.handleSetOrientation,
	)

	// get_orientation
	s.mcp.AddTool(
		mcp.NewTool("get_orientation",
			mcp.WithDescription("Get the current screen orientation"),
			deviceParam(),
		),
		s.handleGetOrientation,
	)
}
