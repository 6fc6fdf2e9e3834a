package model

import (
	"fmt"
	"strings"
)

// Platform identifies which backend drives a device.
type Platform string

const (
	PlatformAndroid   Platform = "android"
	PlatformIOS       Platform = "ios"
	PlatformSimulator Platform = "simulator"
)

// Device is the backend-independent view of an enumerated device.
type Device struct {
	ID       string   `yaml:"id"              json:"id"`
	Name     string   `yaml:"name,omitempty"  json:"name,omitempty"`
	Platform Platform `yaml:"platform"        json:"platform"`
	Type     string   `yaml:"type,omitempty"  json:"type,omitempty"`  // "tv" or "mobile" on Android
	State    string   `yaml:"state,omitempty" json:"state,omitempty"` // simulator state, e.g. "Booted"
}

// Orientation is the device screen orientation.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// ParseOrientation converts a flag or tool argument into an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "portrait":
		return Portrait, nil
	case "landscape":
		return Landscape, nil
	default:
		return "", fmt.Errorf("unknown orientation: %q (expected portrait or landscape)", s)
	}
}

// Direction is a swipe direction.
type Direction string

const (
	SwipeUp   Direction = "up"
	SwipeDown Direction = "down"
)

// ParseDirection converts a flag or tool argument into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return SwipeUp, nil
	case "down":
		return SwipeDown, nil
	default:
		return "", fmt.Errorf("unknown swipe direction: %q (expected up or down)", s)
	}
}
