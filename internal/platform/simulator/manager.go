package simulator

import (
	"context"
	"runtime"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/mj1618/mobile-cli/internal/config"
	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/platform"
	"github.com/mj1618/mobile-cli/internal/process"
	"github.com/mj1618/mobile-cli/internal/wda"
)

const bootedState = "Booted"

// Manager enumerates simulators known to simctl. Only booted simulators
// are offered as devices.
type Manager struct {
	cfg  *config.Config
	exec process.Executor
	log  *zap.Logger
	goos string
}

var _ platform.DeviceManager = (*Manager)(nil)

func NewManager(cfg *config.Config, exec process.Executor, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{cfg: cfg, exec: exec, log: log, goos: runtime.GOOS}
}

func (m *Manager) Platform() model.Platform { return model.PlatformSimulator }

func (m *Manager) Robot(uuid string) platform.Robot {
	agent := wda.NewLocalClient(m.cfg.AgentHost, m.cfg.AgentPort, m.cfg.HTTPTimeout, m.log)
	return NewRobot(uuid, m.exec, agent, m.log)
}

// Simulators lists every simulator regardless of state. Off macOS, or
// when simctl fails, the list is empty.
func (m *Manager) Simulators(ctx context.Context) ([]model.Device, error) {
	if m.goos != "darwin" {
		return []model.Device{}, nil
	}

	res, err := process.RunJSON(ctx, m.exec, xcrun, "simctl", "list", "devices", "-j")
	if err != nil {
		m.log.Warn("error listing simulators", zap.Error(err))
		return []model.Device{}, nil
	}

	sims := []model.Device{}
	res.Get("devices").ForEach(func(_, runtimeDevices gjson.Result) bool {
		runtimeDevices.ForEach(func(_, d gjson.Result) bool {
			sims = append(sims, model.Device{
				ID:       d.Get("udid").String(),
				Name:     d.Get("name").String(),
				Platform: model.PlatformSimulator,
				State:    d.Get("state").String(),
			})
			return true
		})
		return true
	})
	return sims, nil
}

// Devices lists the booted simulators.
func (m *Manager) Devices(ctx context.Context) ([]model.Device, error) {
	sims, err := m.Simulators(ctx)
	if err != nil {
		return nil, err
	}
	booted := []model.Device{}
	for _, s := range sims {
		if s.State == bootedState {
			booted = append(booted, s)
		}
	}
	return booted, nil
}
