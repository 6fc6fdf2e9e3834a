package model

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestScreenElement_JSONKeys(t *testing.T) {
	el := ScreenElement{
		Type:  "Button",
		Label: "OK",
		Rect:  Rect{X: 10, Y: 20, Width: 100, Height: 30},
	}
	data, err := json.Marshal(el)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"type", "label", "rect"} {
		if _, ok := m[key]; !ok {
			t.Errorf("expected key %q in JSON output", key)
		}
	}
}

func TestScreenElement_OmitEmpty(t *testing.T) {
	el := ScreenElement{
		Type: "android.widget.TextView",
		Rect: Rect{Width: 10, Height: 10},
	}
	data, err := json.Marshal(el)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"text", "name", "value", "identifier", "focused"} {
		if _, ok := m[key]; ok {
			t.Errorf("empty %s should be omitted", key)
		}
	}
	// Label is part of the canonical shape even when empty
	if _, ok := m["label"]; !ok {
		t.Error("label should always be present")
	}
}

func TestScreenElement_FocusedOnlyWhenTrue(t *testing.T) {
	el := ScreenElement{Type: "EditText", Focused: true, Rect: Rect{Width: 1, Height: 1}}
	data, err := yaml.Marshal(el)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m["focused"] != true {
		t.Errorf("expected focused=true in YAML, got %v", m["focused"])
	}
}

func TestRect_Empty(t *testing.T) {
	tests := []struct {
		rect Rect
		want bool
	}{
		{Rect{Width: 10, Height: 10}, false},
		{Rect{Width: 0, Height: 10}, true},
		{Rect{Width: 10, Height: 0}, true},
		{Rect{Width: -5, Height: 10}, true},
	}
	for _, tt := range tests {
		if got := tt.rect.Empty(); got != tt.want {
			t.Errorf("%+v.Empty() = %v, want %v", tt.rect, got, tt.want)
		}
	}
}

func TestRect_Center(t *testing.T) {
	x, y := Rect{X: 100, Y: 200, Width: 50, Height: 20}.Center()
	if x != 125 || y != 210 {
		t.Errorf("Center() = (%d,%d), want (125,210)", x, y)
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		input string
		want  Orientation
	}{
		{"portrait", Portrait},
		{"PORTRAIT", Portrait},
		{"landscape", Landscape},
		{"Landscape", Landscape},
	}
	for _, tt := range tests {
		got, err := ParseOrientation(tt.input)
		if err != nil {
			t.Errorf("ParseOrientation(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseOrientation(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
	if _, err := ParseOrientation("sideways"); err == nil {
		t.Error("ParseOrientation(\"sideways\") should fail")
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("UP"); err != nil || d != SwipeUp {
		t.Errorf("ParseDirection(\"UP\") = %q, %v", d, err)
	}
	if d, err := ParseDirection("down"); err != nil || d != SwipeDown {
		t.Errorf("ParseDirection(\"down\") = %q, %v", d, err)
	}
	if _, err := ParseDirection("left"); err == nil {
		t.Error("ParseDirection(\"left\") should fail")
	}
}
