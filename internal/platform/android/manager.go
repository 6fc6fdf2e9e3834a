package android

import (
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/platform"
	"github.com/mj1618/mobile-cli/internal/process"
)

// tvFeatures mark a device as a television.
var tvFeatures = []string{"android.software.leanback", "android.hardware.type.television"}

// Manager enumerates devices attached to adb.
type Manager struct {
	adb  string
	exec process.Executor
	log  *zap.Logger
}

var _ platform.DeviceManager = (*Manager)(nil)

// NewManager creates a Manager using the adb executable at adbPath.
func NewManager(adbPath string, exec process.Executor, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{adb: adbPath, exec: exec, log: log}
}

func (m *Manager) Platform() model.Platform { return model.PlatformAndroid }

func (m *Manager) Robot(deviceID string) platform.Robot {
	return NewRobot(deviceID, m.adb, m.exec, m.log)
}

// Devices lists attached devices and classifies each as "tv" or
// "mobile". If adb cannot be run the list is empty and no error is
// returned.
func (m *Manager) Devices(ctx context.Context) ([]model.Device, error) {
	out, err := m.exec.Run(ctx, m.adb, "devices")
	if err != nil {
		m.log.Warn("could not execute adb, is ANDROID_HOME set?", zap.Error(err))
		return []model.Device{}, nil
	}

	devices := []model.Device{}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "List of devices attached") || strings.TrimSpace(line) == "" {
			continue
		}
		id, _, _ := strings.Cut(line, "\t")
		id = strings.TrimSpace(id)

		deviceType, err := m.deviceType(ctx, id)
		if err != nil {
			m.log.Warn("could not classify android device", zap.String("device", id), zap.Error(err))
			return []model.Device{}, nil
		}
		devices = append(devices, model.Device{
			ID:       id,
			Platform: model.PlatformAndroid,
			Type:     deviceType,
		})
	}
	return devices, nil
}

func (m *Manager) deviceType(ctx context.Context, deviceID string) (string, error) {
	features, err := NewRobot(deviceID, m.adb, m.exec, m.log).GetSystemFeatures(ctx)
	if err != nil {
		return "", err
	}
	for _, f := range tvFeatures {
		if slices.Contains(features, f) {
			return "tv", nil
		}
	}
	return "mobile", nil
}
