package model

import "testing"

func sampleElements() []ScreenElement {
	return []ScreenElement{
		{Type: "Button", Label: "Sign In", Rect: Rect{X: 10, Y: 10, Width: 50, Height: 30}},
		{Type: "StaticText", Label: "Welcome back", Rect: Rect{X: 10, Y: 50, Width: 100, Height: 20}},
		{Type: "android.widget.Button", Text: "Cancel", Identifier: "com.app:id/cancel", Rect: Rect{X: 200, Y: 200, Width: 50, Height: 30}},
		{Type: "TextField", Name: "email", Value: "user@example.com", Rect: Rect{X: 90, Y: 90, Width: 50, Height: 30}},
	}
}

func TestFilterByText_Empty(t *testing.T) {
	result := FilterByText(sampleElements(), "")
	if len(result) != 4 {
		t.Errorf("expected 4 elements, got %d", len(result))
	}
}

func TestFilterByText_CaseInsensitive(t *testing.T) {
	result := FilterByText(sampleElements(), "sign in")
	if len(result) != 1 || result[0].Label != "Sign In" {
		t.Errorf("expected only Sign In, got %+v", result)
	}
}

func TestFilterByText_MatchesAllFields(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"cancel", 1},      // text + identifier
		{"example.com", 1}, // value
		{"email", 1},       // name
		{"welcome", 1},     // label
		{"nothing", 0},
	}
	for _, tt := range tests {
		if got := len(FilterByText(sampleElements(), tt.text)); got != tt.want {
			t.Errorf("FilterByText(%q) returned %d elements, want %d", tt.text, got, tt.want)
		}
	}
}

func TestFilterByType(t *testing.T) {
	result := FilterByType(sampleElements(), []string{"button"})
	if len(result) != 2 {
		t.Fatalf("expected 2 buttons (iOS + Android), got %d", len(result))
	}
	if result[0].Label != "Sign In" || result[1].Text != "Cancel" {
		t.Errorf("unexpected buttons: %+v", result)
	}
}

func TestFilterByType_NoTypes(t *testing.T) {
	if got := len(FilterByType(sampleElements(), nil)); got != 4 {
		t.Errorf("expected 4 elements, got %d", got)
	}
}

func TestFilterByBounds(t *testing.T) {
	bbox := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	result := FilterByBounds(sampleElements(), &bbox)
	if len(result) != 3 {
		t.Errorf("expected 3 elements (inside + overlapping), got %d", len(result))
	}
}

func TestParseRect_Valid(t *testing.T) {
	r, err := ParseRect("10, 20, 300, 400")
	if err != nil {
		t.Fatal(err)
	}
	if r.X != 10 || r.Y != 20 || r.Width != 300 || r.Height != 400 {
		t.Errorf("got %+v, want {10 20 300 400}", r)
	}
}

func TestParseRect_Invalid(t *testing.T) {
	for _, s := range []string{"", "10,20,300", "10,20,300,400,500", "a,b,c,d"} {
		if _, err := ParseRect(s); err == nil {
			t.Errorf("ParseRect(%q) should fail", s)
		}
	}
}
