package platform

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/mj1618/mobile-cli/internal/model"
)

// ErrDeviceNotFound is returned when no manager reports the requested device.
var ErrDeviceNotFound = errors.New("device not found")

// Provider bundles the device managers of every supported platform and
// resolves a device identifier to the robot that drives it.
type Provider struct {
	Managers []DeviceManager
}

// NewProvider returns a Provider over the given managers. Order matters:
// when two managers report the same identifier the first one wins.
func NewProvider(managers ...DeviceManager) *Provider {
	return &Provider{Managers: managers}
}

// Devices lists the devices of every manager, tagged with their platform.
func (p *Provider) Devices(ctx context.Context) ([]model.Device, error) {
	var all []model.Device
	for _, m := range p.Managers {
		devices, err := m.Devices(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing %s devices: %w", m.Platform(), err)
		}
		for _, d := range devices {
			if d.Platform == "" {
				d.Platform = m.Platform()
			}
			all = append(all, d)
		}
	}
	return all, nil
}

// Robot returns the robot for deviceID. An empty deviceID selects the only
// available device, and fails if there are none or several.
func (p *Provider) Robot(ctx context.Context, deviceID string) (Robot, model.Device, error) {
	if deviceID == "" {
		devices, err := p.Devices(ctx)
		if err != nil {
			return nil, model.Device{}, err
		}
		switch len(devices) {
		case 0:
			return nil, model.Device{}, Actionable("No devices found. Connect a device or boot a simulator, then try again.")
		case 1:
			return p.robotFor(devices[0])
		default:
			ids := make([]string, len(devices))
			for i, d := range devices {
				ids[i] = d.ID
			}
			return nil, model.Device{}, Actionable("Multiple devices found (%v). Select one with --device.", ids)
		}
	}

	for _, m := range p.Managers {
		devices, err := m.Devices(ctx)
		if err != nil {
			return nil, model.Device{}, fmt.Errorf("listing %s devices: %w", m.Platform(), err)
		}
		idx := slices.IndexFunc(devices, func(d model.Device) bool { return d.ID == deviceID })
		if idx >= 0 {
			d := devices[idx]
			if d.Platform == "" {
				d.Platform = m.Platform()
			}
			return m.Robot(deviceID), d, nil
		}
	}
	return nil, model.Device{}, fmt.Errorf("%w: %s", ErrDeviceNotFound, deviceID)
}

func (p *Provider) robotFor(d model.Device) (Robot, model.Device, error) {
	for _, m := range p.Managers {
		if m.Platform() == d.Platform {
			return m.Robot(d.ID), d, nil
		}
	}
	return nil, model.Device{}, fmt.Errorf("%w: %s", ErrDeviceNotFound, d.ID)
}
