package ios

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/mj1618/mobile-cli/internal/config"
	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/platform"
	"github.com/mj1618/mobile-cli/internal/process"
)

// Manager enumerates physical iOS devices through go-ios.
type Manager struct {
	cfg  *config.Config
	exec process.Executor
	log  *zap.Logger
}

var _ platform.DeviceManager = (*Manager)(nil)

func NewManager(cfg *config.Config, exec process.Executor, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{cfg: cfg, exec: exec, log: log}
}

func (m *Manager) Platform() model.Platform { return model.PlatformIOS }

func (m *Manager) Robot(deviceID string) platform.Robot {
	return NewRobot(deviceID, m.cfg, m.exec, m.log)
}

// isGoIOSInstalled probes `ios version`. Release builds report a
// "v"-prefixed version and source builds report "local-build".
func (m *Manager) isGoIOSInstalled(ctx context.Context) bool {
	res, err := process.RunJSON(ctx, m.exec, m.cfg.GoIOSBinary(), "version")
	if err != nil {
		return false
	}
	version := res.Get("version")
	if !version.Exists() {
		return false
	}
	v := version.String()
	return strings.HasPrefix(v, "v") || v == "local-build"
}

func (m *Manager) deviceName(ctx context.Context, deviceID string) (string, error) {
	res, err := process.RunJSON(ctx, m.exec, m.cfg.GoIOSBinary(), "info", "--udid", deviceID)
	if err != nil {
		return "", err
	}
	return res.Get("DeviceName").String(), nil
}

// Devices lists connected devices with their display names. Without
// go-ios the list is empty.
func (m *Manager) Devices(ctx context.Context) ([]model.Device, error) {
	if !m.isGoIOSInstalled(ctx) {
		m.log.Warn("go-ios is not installed, no physical iOS devices can be detected")
		return []model.Device{}, nil
	}

	res, err := process.RunJSON(ctx, m.exec, m.cfg.GoIOSBinary(), "list")
	if err != nil {
		return nil, fmt.Errorf("listing iOS devices: %w", err)
	}

	devices := []model.Device{}
	var nameErr error
	res.Get("deviceList").ForEach(func(_, id gjson.Result) bool {
		name, err := m.deviceName(ctx, id.String())
		if err != nil {
			nameErr = fmt.Errorf("reading name of %s: %w", id.String(), err)
			return false
		}
		devices = append(devices, model.Device{
			ID:       id.String(),
			Name:     name,
			Platform: model.PlatformIOS,
		})
		return true
	})
	if nameErr != nil {
		return nil, nameErr
	}
	return devices, nil
}
