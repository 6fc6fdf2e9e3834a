package ios

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/mobile-cli/internal/config"
	"github.com/mj1618/mobile-cli/internal/model"
)

func TestManager_Devices(t *testing.T) {
	f := &fakeExec{respond: func(args []string) ([]byte, error) {
		switch strings.Join(args, " ") {
		case "version":
			return []byte(`{"version":"v1.0.150"}`), nil
		case "list":
			return []byte(`{"deviceList":["00008030-001","00008110-002"]}`), nil
		case "info --udid 00008030-001":
			return []byte(`{"DeviceName":"Work iPhone"}`), nil
		case "info --udid 00008110-002":
			return []byte(`{"DeviceName":"Test iPad"}`), nil
		}
		return nil, errors.New("unexpected")
	}}
	m := NewManager(config.Default(), f, nil)

	devices, err := m.Devices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Device{
		{ID: "00008030-001", Name: "Work iPhone", Platform: model.PlatformIOS},
		{ID: "00008110-002", Name: "Test iPad", Platform: model.PlatformIOS},
	}, devices)
}

func TestManager_Devices_GoIOSMissing(t *testing.T) {
	tests := []struct {
		name    string
		respond func(args []string) ([]byte, error)
	}{
		{"not installed", func(args []string) ([]byte, error) { return nil, errors.New("executable file not found") }},
		{"not json", func(args []string) ([]byte, error) { return []byte("usage: ios"), nil }},
		{"unexpected version", func(args []string) ([]byte, error) { return []byte(`{"version":"1.0"}`), nil }},
		{"no version", func(args []string) ([]byte, error) { return []byte(`{}`), nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeExec{respond: tt.respond}
			devices, err := NewManager(config.Default(), f, nil).Devices(context.Background())
			require.NoError(t, err)
			assert.Empty(t, devices)
			assert.Len(t, f.calls, 1)
		})
	}
}

func TestManager_Devices_LocalBuild(t *testing.T) {
	f := &fakeExec{respond: func(args []string) ([]byte, error) {
		switch args[0] {
		case "version":
			return []byte(`{"version":"local-build"}`), nil
		case "list":
			return []byte(`{"deviceList":[]}`), nil
		}
		return nil, errors.New("unexpected")
	}}

	devices, err := NewManager(config.Default(), f, nil).Devices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, devices)
	assert.Len(t, f.calls, 2)
}

func TestManager_UsesConfiguredBinary(t *testing.T) {
	cfg := config.Default()
	cfg.GoIOSPath = "/opt/go-ios/ios"
	f := &fakeExec{respond: func(args []string) ([]byte, error) { return nil, errors.New("nope") }}

	_, _ = NewManager(cfg, f, nil).Devices(context.Background())
	assert.Equal(t, "/opt/go-ios/ios version", f.last())
	assert.Equal(t, model.PlatformIOS, NewManager(cfg, f, nil).Platform())
}
