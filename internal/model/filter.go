package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FilterByText returns the elements whose text, label, name, value or
// identifier contains the given text (case-insensitive). An empty text
// returns the input unchanged.
func FilterByText(elements []ScreenElement, text string) []ScreenElement {
	if text == "" {
		return elements
	}
	textLower := strings.ToLower(text)
	var result []ScreenElement
	for _, el := range elements {
		if textMatchesElement(el, textLower) {
			result = append(result, el)
		}
	}
	return result
}

func textMatchesElement(el ScreenElement, textLower string) bool {
	for _, field := range []string{el.Text, el.Label, el.Name, el.Value, el.Identifier} {
		if strings.Contains(strings.ToLower(field), textLower) {
			return true
		}
	}
	return false
}

// FilterByType keeps elements whose type matches one of types. Matching is
// case-insensitive and also accepts a suffix match, so "Button" selects
// both iOS "Button" and Android "android.widget.Button".
func FilterByType(elements []ScreenElement, types []string) []ScreenElement {
	if len(types) == 0 {
		return elements
	}
	var result []ScreenElement
	for _, el := range elements {
		elType := strings.ToLower(el.Type)
		for _, t := range types {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" {
				continue
			}
			if elType == t || strings.HasSuffix(elType, "."+t) {
				result = append(result, el)
				break
			}
		}
	}
	return result
}

// FilterByBounds keeps elements whose rect intersects bbox.
func FilterByBounds(elements []ScreenElement, bbox *Rect) []ScreenElement {
	if bbox == nil {
		return elements
	}
	var result []ScreenElement
	for _, el := range elements {
		if rectsIntersect(el.Rect, *bbox) {
			result = append(result, el)
		}
	}
	return result
}

// rectsIntersect checks if two rectangles overlap.
func rectsIntersect(a, b Rect) bool {
	ax1, ay1, ax2, ay2 := a.X, a.Y, a.X+a.Width, a.Y+a.Height
	bx1, by1, bx2, by2 := b.X, b.Y, b.X+b.Width, b.Y+b.Height
	return ax1 < bx2 && ax2 > bx1 && ay1 < by2 && ay2 > by1
}

// ParseRect parses a "x,y,w,h" string into a Rect.
func ParseRect(s string) (*Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid bbox %q: expected x,y,w,h", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		vals[i] = v
	}
	return &Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}
