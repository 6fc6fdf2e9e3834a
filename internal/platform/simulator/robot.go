// Package simulator drives booted iOS simulators through `xcrun simctl`
// and the WebDriverAgent running inside the simulator.
package simulator

import (
	"context"

	"go.uber.org/zap"

	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/platform"
	"github.com/mj1618/mobile-cli/internal/process"
	"github.com/mj1618/mobile-cli/internal/wda"
)

const xcrun = "xcrun"

// Robot drives one simulator.
type Robot struct {
	uuid  string
	exec  process.Executor
	agent *wda.Client
	log   *zap.Logger
}

var _ platform.Robot = (*Robot)(nil)

// NewRobot creates a Robot for the simulator with the given UUID.
func NewRobot(uuid string, exec process.Executor, agent *wda.Client, log *zap.Logger) *Robot {
	if log == nil {
		log = zap.NewNop()
	}
	return &Robot{uuid: uuid, exec: exec, agent: agent, log: log}
}

func (r *Robot) simctl(ctx context.Context, args ...string) ([]byte, error) {
	return r.exec.Run(ctx, xcrun, append([]string{"simctl"}, args...)...)
}

func (r *Robot) wda(ctx context.Context) (*wda.Client, error) {
	if !r.agent.IsRunning(ctx) {
		return nil, platform.Actionable("WebDriverAgent is not running on simulator, please see https://github.com/mobile-next/mobile-mcp/wiki/")
	}
	return r.agent, nil
}

func (r *Robot) GetScreenshot(ctx context.Context) ([]byte, error) {
	return r.simctl(ctx, "io", r.uuid, "screenshot", "-")
}

func (r *Robot) LaunchApp(ctx context.Context, packageName string) error {
	_, err := r.simctl(ctx, "launch", r.uuid, packageName)
	return err
}

func (r *Robot) TerminateApp(ctx context.Context, packageName string) error {
	_, err := r.simctl(ctx, "terminate", r.uuid, packageName)
	return err
}

// ListApps lists installed apps with their display names.
func (r *Robot) ListApps(ctx context.Context) ([]model.AppInfo, error) {
	out, err := r.simctl(ctx, "listapps", r.uuid)
	if err != nil {
		return nil, err
	}
	records := parseAppList(string(out))
	apps := make([]model.AppInfo, 0, len(records))
	for _, rec := range records {
		apps = append(apps, model.AppInfo{
			PackageName: rec["CFBundleIdentifier"],
			AppName:     rec["CFBundleDisplayName"],
		})
	}
	return apps, nil
}

func (r *Robot) OpenURL(ctx context.Context, url string) error {
	agent, err := r.wda(ctx)
	if err != nil {
		return err
	}
	return agent.OpenURL(ctx, url)
}

func (r *Robot) GetScreenSize(ctx context.Context) (model.ScreenSize, error) {
	agent, err := r.wda(ctx)
	if err != nil {
		return model.ScreenSize{}, err
	}
	return agent.GetScreenSize(ctx)
}

func (r *Robot) SendKeys(ctx context.Context, text string) error {
	agent, err := r.wda(ctx)
	if err != nil {
		return err
	}
	return agent.SendKeys(ctx, text)
}

func (r *Robot) Swipe(ctx context.Context, direction model.Direction) error {
	agent, err := r.wda(ctx)
	if err != nil {
		return err
	}
	return agent.Swipe(ctx, direction)
}

func (r *Robot) Tap(ctx context.Context, x, y int) error {
	agent, err := r.wda(ctx)
	if err != nil {
		return err
	}
	return agent.Tap(ctx, x, y)
}

func (r *Robot) PressButton(ctx context.Context, button string) error {
	agent, err := r.wda(ctx)
	if err != nil {
		return err
	}
	return agent.PressButton(ctx, button)
}

func (r *Robot) GetElementsOnScreen(ctx context.Context) ([]model.ScreenElement, error) {
	agent, err := r.wda(ctx)
	if err != nil {
		return nil, err
	}
	return agent.GetElementsOnScreen(ctx)
}

func (r *Robot) SetOrientation(ctx context.Context, orientation model.Orientation) error {
	agent, err := r.wda(ctx)
	if err != nil {
		return err
	}
	return agent.SetOrientation(ctx, orientation)
}

func (r *Robot) GetOrientation(ctx context.Context) (model.Orientation, error) {
	agent, err := r.wda(ctx)
	if err != nil {
		return "", err
	}
	return agent.GetOrientation(ctx)
}
