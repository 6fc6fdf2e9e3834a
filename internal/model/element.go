package model

// Rect is an on-screen rectangle in device points.
type Rect struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the midpoint of the rectangle, the natural tap target.
func (r Rect) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// ScreenElement is one interactive or textual node on screen, normalized
// from the backend's native accessibility representation.
type ScreenElement struct {
	Type       string `yaml:"type"                 json:"type"`
	Text       string `yaml:"text,omitempty"       json:"text,omitempty"`
	Label      string `yaml:"label"                json:"label"`
	Name       string `yaml:"name,omitempty"       json:"name,omitempty"`
	Value      string `yaml:"value,omitempty"      json:"value,omitempty"`
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	Rect       Rect   `yaml:"rect"                 json:"rect"`
	Focused    bool   `yaml:"focused,omitempty"    json:"focused,omitempty"` // only emitted when true
}

// ScreenSize is the logical screen size plus pixel density scale.
type ScreenSize struct {
	Width  int     `yaml:"width"  json:"width"`
	Height int     `yaml:"height" json:"height"`
	Scale  float64 `yaml:"scale"  json:"scale"`
}

// AppInfo describes an installed, launchable application.
type AppInfo struct {
	PackageName string `yaml:"packageName" json:"packageName"`
	AppName     string `yaml:"appName"     json:"appName"`
}
