package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/mj1618/mobile-cli/internal/imaging"
	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/output"
	"github.com/mj1618/mobile-cli/internal/platform"
)

// textResult serializes v to YAML for an MCP response.
func textResult(v interface{}) (*mcp.CallToolResult, error) {
	text, err := output.MarshalText(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

// withRobot resolves the requested device, holds its lock and runs fn.
func (s *Server) withRobot(
	ctx context.Context,
	request mcp.CallToolRequest,
	fn func(platform.Robot, model.Device) (*mcp.CallToolResult, error),
) (*mcp.CallToolResult, error) {
	deviceID := stringParam(request.GetArguments(), "device", "")

	robot, dev, err := s.devices.Robot(ctx, deviceID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	lock := s.deviceLock(dev.ID)
	lock.Lock()
	defer lock.Unlock()

	return fn(robot, dev)
}

// writeActionHandler runs an action that changes the screen and drops the
// device's cached elements.
func (s *Server) writeActionHandler(
	ctx context.Context,
	request mcp.CallToolRequest,
	action string,
	fn func(platform.Robot) (output.ActionResult, error),
) (*mcp.CallToolResult, error) {
	return s.withRobot(ctx, request, func(robot platform.Robot, dev model.Device) (*mcp.CallToolResult, error) {
		result, err := fn(robot)
		result.Action = action
		result.Device = dev.ID
		if err != nil {
			s.log.Debug("tool failed", zap.String("action", action), zap.String("device", dev.ID), zap.Error(err))
			return mcp.NewToolResultError(err.Error()), nil
		}
		result.OK = true
		s.cache.Invalidate(dev.ID)
		return textResult(result)
	})
}

func requireString(params map[string]interface{}, key string) (string, error) {
	v := stringParam(params, key, "")
	if v == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return v, nil
}

func (s *Server) handleListDevices(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices, err := s.devices.Devices(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(devices) == 0 {
		return mcp.NewToolResultText("No devices found."), nil
	}
	return textResult(devices)
}

func (s *Server) handleListApps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.withRobot(ctx, request, func(robot platform.Robot, _ model.Device) (*mcp.CallToolResult, error) {
		apps, err := robot.ListApps(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return textResult(apps)
	})
}

func (s *Server) handleLaunchApp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pkg, err := requireString(request.GetArguments(), "package")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.writeActionHandler(ctx, request, "launch", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{Target: pkg}, robot.LaunchApp(ctx, pkg)
	})
}

func (s *Server) handleTerminateApp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pkg, err := requireString(request.GetArguments(), "package")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.writeActionHandler(ctx, request, "terminate", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{Target: pkg}, robot.TerminateApp(ctx, pkg)
	})
}

func (s *Server) handleScreenSize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.withRobot(ctx, request, func(robot platform.Robot, _ model.Device) (*mcp.CallToolResult, error) {
		size, err := robot.GetScreenSize(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return textResult(size)
	})
}

func (s *Server) handleTap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	if !hasParam(params, "x") || !hasParam(params, "y") {
		return mcp.NewToolResultError("x and y parameters are required"), nil
	}
	x := intParam(params, "x", 0)
	y := intParam(params, "y", 0)
	return s.writeActionHandler(ctx, request, "tap", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{X: x, Y: y}, robot.Tap(ctx, x, y)
	})
}

func (s *Server) handleSwipe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := model.ParseDirection(stringParam(request.GetArguments(), "direction", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.writeActionHandler(ctx, request, "swipe", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{Target: string(dir)}, robot.Swipe(ctx, dir)
	})
}

func (s *Server) handleTypeKeys(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := requireString(request.GetArguments(), "text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.writeActionHandler(ctx, request, "type", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{}, robot.SendKeys(ctx, text)
	})
}

func (s *Server) handlePressButton(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	button, err := requireString(request.GetArguments(), "button")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.writeActionHandler(ctx, request, "button", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{Target: button}, robot.PressButton(ctx, button)
	})
}

func (s *Server) handleOpenURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := requireString(request.GetArguments(), "url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.writeActionHandler(ctx, request, "open", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{Target: url}, robot.OpenURL(ctx, url)
	})
}

func (s *Server) handleListElements(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := stringParam(params, "text", "")
	var types []string
	if raw := stringParam(params, "types", ""); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
	}

	return s.withRobot(ctx, request, func(robot platform.Robot, dev model.Device) (*mcp.CallToolResult, error) {
		elements, err := s.cache.Elements(ctx, dev.ID, robot)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		elements = model.FilterByType(model.FilterByText(elements, text), types)
		if len(elements) == 0 {
			return mcp.NewToolResultText("No elements found on screen."), nil
		}
		return textResult(elements)
	})
}

func (s *Server) handleScreenshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	format := stringParam(params, "format", "jpg")
	quality := intParam(params, "quality", imaging.DefaultJPEGQuality)

	return s.withRobot(ctx, request, func(robot platform.Robot, _ model.Device) (*mcp.CallToolResult, error) {
		size, err := robot.GetScreenSize(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		data, err := robot.GetScreenshot(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if _, _, err := imaging.PNGDimensions(data); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("screenshot is not a valid PNG: %v", err)), nil
		}

		img, mimeType, err := imaging.Transform(data, imaging.Options{
			Width:   size.Width,
			Format:  format,
			Quality: quality,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.ImageContent{
					Type:     "image",
					Data:     base64.StdEncoding.EncodeToString(img),
					MIMEType: mimeType,
				},
			},
		}, nil
	})
}

func (s *Server) handleSetOrientation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orientation, err := model.ParseOrientation(stringParam(request.GetArguments(), "orientation", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.writeActionHandler(ctx, request, "orientation", func(robot platform.Robot) (output.ActionResult, error) {
		return output.ActionResult{Target: string(orientation)}, robot.SetOrientation(ctx, orientation)
	})
}

func (s *Server) handleGetOrientation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.withRobot(ctx, request, func(robot platform.Robot, _ model.Device) (*mcp.CallToolResult, error) {
		orientation, err := robot.GetOrientation(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return textResult(map[string]string{"orientation": string(orientation)})
	})
}
