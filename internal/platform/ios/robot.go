// Package ios drives physical iOS devices through the go-ios bridge and
// a WebDriverAgent reachable through port forwarding.
package ios

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mj1618/mobile-cli/internal/config"
	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/platform"
	"github.com/mj1618/mobile-cli/internal/process"
	"github.com/mj1618/mobile-cli/internal/wda"
)

const (
	wikiURL = "https://github.com/mobile-next/mobile-mcp/wiki/"

	// Devices from this major version on need the go-ios tunnel.
	tunnelMajorVersion = 17

	dialTimeout = 2 * time.Second
)

// Robot drives one physical iOS device.
type Robot struct {
	deviceID   string
	goIOS      string
	host       string
	agentPort  int
	tunnelPort int
	exec       process.Executor
	agent      *wda.Client
	log        *zap.Logger
}

var _ platform.Robot = (*Robot)(nil)

// NewRobot creates a Robot for the device with the given UDID.
func NewRobot(deviceID string, cfg *config.Config, exec process.Executor, log *zap.Logger) *Robot {
	if log == nil {
		log = zap.NewNop()
	}
	return &Robot{
		deviceID:   deviceID,
		goIOS:      cfg.GoIOSBinary(),
		host:       cfg.AgentHost,
		agentPort:  cfg.AgentPort,
		tunnelPort: cfg.TunnelPort,
		exec:       exec,
		agent:      wda.NewLocalClient(cfg.AgentHost, cfg.AgentPort, cfg.HTTPTimeout, log),
		log:        log,
	}
}

func (r *Robot) ios(ctx context.Context, args ...string) ([]byte, error) {
	return r.exec.Run(ctx, r.goIOS, append([]string{"--udid", r.deviceID}, args...)...)
}

// isListeningOnPort reports whether a TCP connection to port succeeds.
func (r *Robot) isListeningOnPort(ctx context.Context, port int) bool {
	d := net.Dialer{Timeout: dialTimeout}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(r.host, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// iosVersion returns the ProductVersion reported by `ios info`.
func (r *Robot) iosVersion(ctx context.Context) (string, error) {
	info, err := process.RunJSON(ctx, r.exec, r.goIOS, "--udid", r.deviceID, "info")
	if err != nil {
		return "", err
	}
	version := info.Get("ProductVersion").String()
	if version == "" {
		return "", fmt.Errorf("device %s reported no ProductVersion", r.deviceID)
	}
	return version, nil
}

func (r *Robot) isTunnelRequired(ctx context.Context) (bool, error) {
	version, err := r.iosVersion(ctx)
	if err != nil {
		return false, err
	}
	major, _, _ := strings.Cut(version, ".")
	n, err := strconv.Atoi(major)
	if err != nil {
		return false, fmt.Errorf("unexpected iOS version %q: %w", version, err)
	}
	return n >= tunnelMajorVersion, nil
}

func (r *Robot) assertTunnelRunning(ctx context.Context) error {
	required, err := r.isTunnelRequired(ctx)
	if err != nil {
		return err
	}
	if required && !r.isListeningOnPort(ctx, r.tunnelPort) {
		return platform.Actionable("iOS tunnel is not running, please see %s", wikiURL)
	}
	return nil
}

// wda checks tunnel, port forwarding and agent in that order and returns
// the agent client once all three are up.
func (r *Robot) wda(ctx context.Context) (*wda.Client, error) {
	if err := r.assertTunnelRunning(ctx); err != nil {
		return nil, err
	}
	if !r.isListeningOnPort(ctx, r.agentPort) {
		return nil, platform.Actionable("Port forwarding to WebDriverAgent is not running (tunnel okay), please see %s", wikiURL)
	}
	if !r.agent.IsRunning(ctx) {
		return nil, platform.Actionable("WebDriverAgent is not running on device (tunnel okay, port forwarding okay), please see %s", wikiURL)
	}
	return r.agent, nil
}

func (r *Robot) GetScreenSize(ctx context.Context) (model.ScreenSize, error) {
	agent, err := r.wda(ctx)
	if err != nil {
		return model.ScreenSize{}, err
	}
	return agent.GetScreenSize(ctx)
}

func (r *Robot) Swipe(ctx context.Context, direction model.Direction) error {
	agent, err := r.wda(ctx)
	if err != nil {
		return err
	}
	return agent.Swipe(ctx, direction)
}

// ListApps lists installed apps. Each output line is a bundle id followed
// by the display name.
func (r *Robot) ListApps(ctx context.Context) ([]model.AppInfo, error) {
	if err := r.assertTunnelRunning(ctx); err != nil {
		return nil, err
	}
	out, err := r.ios(ctx, "apps", "--all", "--list")
	if err != nil {
		return nil, err
	}

	var apps []model.AppInfo
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pkg, name, _ := strings.Cut(line, " ")
		apps = append(apps, model.AppInfo{PackageName: pkg, AppName: name})
	}
	return apps, nil
}

func (r *Robot) LaunchApp(ctx context.Context, packageName string) error {
	if err := r.assertTunnelRunning(ctx); err != nil {
		return err
	}
	_, err := r.ios(ctx, "launch", packageName)
	return err
}

func (r *Robot) TerminateApp(ctx context.Context, packageName string) error {
	if err := r.assertTunnelRunning(ctx); err != nil {
		return err
	}
	_, err := r.ios(ctx, "kill", packageName)
	return err
}

func (r *Robot) OpenURL(ctx context.Context, url string) error {
	agent, err := r.wda(ctx)
	if err != nil {
		return err
	}
	return agent.OpenURL(ctx, url)
}

func (r *Robot) SendKeys(ctx context.Context, text string) error {
	agent, err := r.wda(ctx)
	if err != nil {
		return err
	}
	return agent.SendKeys(ctx, text)
}

func (r *Robot) PressButton(ctx context.Context, button string) error {
	agent, err := r.wda(ctx)
	if err != nil {
		return err
	}
	return agent.PressButton(ctx, button)
}

func (r *Robot) Tap(ctx context.Context, x, y int) error {
	agent, err := r.wda(ctx)
	if err != nil {
		return err
	}
	return agent.Tap(ctx, x, y)
}

func (r *Robot) GetElementsOnScreen(ctx context.Context) ([]model.ScreenElement, error) {
	agent, err := r.wda(ctx)
	if err != nil {
		return nil, err
	}
	return agent.GetElementsOnScreen(ctx)
}

// GetScreenshot has go-ios write a PNG to a temporary file, then reads
// and removes it.
func (r *Robot) GetScreenshot(ctx context.Context) ([]byte, error) {
	if err := r.assertTunnelRunning(ctx); err != nil {
		return nil, err
	}

	path := filepath.Join(os.TempDir(), "screenshot-"+uuid.NewString()+".png")
	defer os.Remove(path)

	if _, err := r.ios(ctx, "screenshot", "--output", path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading screenshot: %w", err)
	}
	return data, nil
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
