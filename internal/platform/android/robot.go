// Package android drives Android devices and emulators through adb.
package android

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/platform"
	"github.com/mj1618/mobile-cli/internal/process"
)

const (
	dumpAttempts     = 10
	nullRootMarker   = "null root node returned by UiTestAutomationBridge"
	launcherCategory = "android.intent.category.LAUNCHER"
)

var keyCodes = map[string]string{
	"BACK":        "KEYCODE_BACK",
	"HOME":        "KEYCODE_HOME",
	"VOLUME_UP":   "KEYCODE_VOLUME_UP",
	"VOLUME_DOWN": "KEYCODE_VOLUME_DOWN",
	"ENTER":       "KEYCODE_ENTER",
	"DPAD_CENTER": "KEYCODE_DPAD_CENTER",
	"DPAD_UP":     "KEYCODE_DPAD_UP",
	"DPAD_DOWN":   "KEYCODE_DPAD_DOWN",
	"DPAD_LEFT":   "KEYCODE_DPAD_LEFT",
	"DPAD_RIGHT":  "KEYCODE_DPAD_RIGHT",
}

// Robot drives one Android device.
type Robot struct {
	deviceID string
	adb      string
	exec     process.Executor
	log      *zap.Logger
}

var _ platform.Robot = (*Robot)(nil)

// NewRobot creates a Robot for deviceID using the adb executable at adbPath.
func NewRobot(deviceID, adbPath string, exec process.Executor, log *zap.Logger) *Robot {
	if log == nil {
		log = zap.NewNop()
	}
	return &Robot{deviceID: deviceID, adb: adbPath, exec: exec, log: log}
}

func (r *Robot) run(ctx context.Context, args ...string) ([]byte, error) {
	return r.exec.Run(ctx, r.adb, append([]string{"-s", r.deviceID}, args...)...)
}

func (r *Robot) shell(ctx context.Context, args ...string) ([]byte, error) {
	return r.run(ctx, append([]string{"shell"}, args...)...)
}

// trimmedLines splits output into whitespace-trimmed lines.
func trimmedLines(out []byte) []string {
	lines := strings.Split(string(out), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// GetSystemFeatures lists the features reported by the package manager.
func (r *Robot) GetSystemFeatures(ctx context.Context) ([]string, error) {
	out, err := r.shell(ctx, "pm", "list", "features")
	if err != nil {
		return nil, err
	}
	var features []string
	for _, line := range trimmedLines(out) {
		if f, ok := strings.CutPrefix(line, "feature:"); ok {
			features = append(features, f)
		}
	}
	return features, nil
}

// GetScreenSize parses `wm size`. When an override size is reported it
// wins, being the last one printed. Scale is always 1.
func (r *Robot) GetScreenSize(ctx context.Context) (model.ScreenSize, error) {
	out, err := r.shell(ctx, "wm", "size")
	if err != nil {
		return model.ScreenSize{}, err
	}
	fields := strings.Fields(string(out))
	if len(fields) == 0 {
		return model.ScreenSize{}, fmt.Errorf("failed to get screen size: empty output")
	}
	w, h, ok := strings.Cut(fields[len(fields)-1], "x")
	if !ok {
		return model.ScreenSize{}, fmt.Errorf("failed to get screen size: unexpected output %q", strings.TrimSpace(string(out)))
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return model.ScreenSize{}, fmt.Errorf("failed to get screen size: %w", err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return model.ScreenSize{}, fmt.Errorf("failed to get screen size: %w", err)
	}
	return model.ScreenSize{Width: width, Height: height, Scale: 1}, nil
}

// ListApps lists the packages with a launcher activity.
func (r *Robot) ListApps(ctx context.Context) ([]model.AppInfo, error) {
	out, err := r.shell(ctx, "cmd", "package", "query-activities",
		"-a", "android.intent.action.MAIN", "-c", launcherCategory)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var apps []model.AppInfo
	for _, line := range trimmedLines(out) {
		pkg, ok := strings.CutPrefix(line, "packageName=")
		if !ok || seen[pkg] {
			continue
		}
		seen[pkg] = true
		apps = append(apps, model.AppInfo{PackageName: pkg, AppName: pkg})
	}
	return apps, nil
}

func (r *Robot) LaunchApp(ctx context.Context, packageName string) error {
	_, err := r.shell(ctx, "monkey", "-p", packageName, "-c", launcherCategory, "1")
	return err
}

func (r *Robot) TerminateApp(ctx context.Context, packageName string) error {
	_, err := r.shell(ctx, "am", "force-stop", packageName)
	return err
}

// ListRunningProcesses returns the names of non-system processes.
func (r *Robot) ListRunningProcesses(ctx context.Context) ([]string, error) {
	out, err := r.shell(ctx, "ps", "-e")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range trimmedLines(out) {
		if !strings.HasPrefix(line, "u") {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 8 {
			names = append(names, fields[8])
		}
	}
	return names, nil
}

func (r *Robot) Tap(ctx context.Context, x, y int) error {
	_, err := r.shell(ctx, "input", "tap", strconv.Itoa(x), strconv.Itoa(y))
	return err
}

// Swipe drags along the vertical centre line between 20% and 80% of the
// screen height over one second.
func (r *Robot) Swipe(ctx context.Context, direction model.Direction) error {
	size, err := r.GetScreenSize(ctx)
	if err != nil {
		return err
	}

	x := size.Width >> 1
	upper := size.Height * 20 / 100
	lower := size.Height * 80 / 100

	var y0, y1 int
	switch direction {
	case model.SwipeUp:
		y0, y1 = lower, upper
	case model.SwipeDown:
		y0, y1 = upper, lower
	default:
		return platform.Actionable("Swipe direction %q is not supported", direction)
	}

	_, err = r.shell(ctx, "input", "swipe",
		strconv.Itoa(x), strconv.Itoa(y0), strconv.Itoa(x), strconv.Itoa(y1), "1000")
	return err
}

// SendKeys types text. Spaces are escaped for the device shell.
func (r *Robot) SendKeys(ctx context.Context, text string) error {
	_, err := r.shell(ctx, "input", "text", strings.ReplaceAll(text, " ", `\ `))
	return err
}

func (r *Robot) PressButton(ctx context.Context, button string) error {
	code, ok := keyCodes[button]
	if !ok {
		return platform.Actionable("Button %q is not supported on Android", button)
	}
	_, err := r.shell(ctx, "input", "keyevent", code)
	return err
}

func (r *Robot) OpenURL(ctx context.Context, url string) error {
	_, err := r.shell(ctx, "am", "start", "-a", "android.intent.action.VIEW", "-d", url)
	return err
}

func (r *Robot) GetScreenshot(ctx context.Context) ([]byte, error) {
	return r.run(ctx, "exec-out", "screencap", "-p")
}

// SetOrientation pins the rotation and disables auto-rotate.
func (r *Robot) SetOrientation(ctx context.Context, orientation model.Orientation) error {
	value := "1"
	if orientation == model.Portrait {
		value = "0"
	}
	if _, err := r.shell(ctx, "content", "insert", "--uri", "content://settings/system",
		"--bind", "name:s:user_rotation", "--bind", "value:i:"+value); err != nil {
		return err
	}
	_, err := r.shell(ctx, "settings", "put", "system", "accelerometer_rotation", "0")
	return err
}

func (r *Robot) GetOrientation(ctx context.Context) (model.Orientation, error) {
	out, err := r.shell(ctx, "settings", "get", "system", "user_rotation")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(string(out)) == "0" {
		return model.Portrait, nil
	}
	return model.Landscape, nil
}

// uiAutomatorDump fetches the accessibility dump. uiautomator sometimes
// reports a null root node while the screen settles; those dumps are
// discarded and retried. Any other output is returned unchecked.
func (r *Robot) uiAutomatorDump(ctx context.Context) ([]byte, error) {
	for attempt := 1; attempt <= dumpAttempts; attempt++ {
		dump, err := r.run(ctx, "exec-out", "uiautomator", "dump", "/dev/tty")
		if err != nil {
			return nil, err
		}
		if !bytes.Contains(dump, []byte(nullRootMarker)) {
			return dump, nil
		}
		r.log.Debug("uiautomator returned null root", zap.String("device", r.deviceID), zap.Int("attempt", attempt))
	}
	return nil, platform.Actionable("Failed to get UIAutomator XML after %d attempts", dumpAttempts)
}

func (r *Robot) GetElementsOnScreen(ctx context.Context) ([]model.ScreenElement, error) {
	dump, err := r.uiAutomatorDump(ctx)
	if err != nil {
		return nil, err
	}
	return parseHierarchy(dump)
}
