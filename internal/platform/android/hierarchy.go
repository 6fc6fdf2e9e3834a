package android

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"

	"github.com/mj1618/mobile-cli/internal/model"
)

// uiNode is one <node> of a uiautomator dump.
type uiNode struct {
	Text        string   `xml:"text,attr"`
	ResourceID  string   `xml:"resource-id,attr"`
	Class       string   `xml:"class,attr"`
	ContentDesc string   `xml:"content-desc,attr"`
	Hint        string   `xml:"hint,attr"`
	Focused     string   `xml:"focused,attr"`
	Bounds      string   `xml:"bounds,attr"`
	Nodes       []uiNode `xml:"node"`
}

type uiHierarchy struct {
	XMLName xml.Name `xml:"hierarchy"`
	Nodes   []uiNode `xml:"node"`
}

var boundsPattern = regexp.MustCompile(`^\[(\d+),(\d+)\]\[(\d+),(\d+)\]$`)

// parseBounds converts "[left,top][right,bottom]" into a Rect.
func parseBounds(bounds string) (model.Rect, error) {
	m := boundsPattern.FindStringSubmatch(bounds)
	if m == nil {
		return model.Rect{}, fmt.Errorf("invalid bounds %q", bounds)
	}
	var v [4]int
	for i := range v {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return model.Rect{}, fmt.Errorf("invalid bounds %q: %w", bounds, err)
		}
		v[i] = n
	}
	return model.Rect{X: v[0], Y: v[1], Width: v[2] - v[0], Height: v[3] - v[1]}, nil
}

// parseHierarchy decodes a uiautomator dump and normalizes it. Text after
// the closing </hierarchy> tag, such as the dump's status line, is ignored.
func parseHierarchy(dump []byte) ([]model.ScreenElement, error) {
	var h uiHierarchy
	if err := xml.Unmarshal(dump, &h); err != nil {
		return nil, fmt.Errorf("parsing uiautomator dump: %w", err)
	}

	var out []model.ScreenElement
	for i := range h.Nodes {
		if err := collectElements(&h.Nodes[i], &out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// collectElements appends the qualifying descendants of n, then n itself.
// A node qualifies when it carries text, a content description or a hint
// and has a positive area.
func collectElements(n *uiNode, out *[]model.ScreenElement) error {
	for i := range n.Nodes {
		if err := collectElements(&n.Nodes[i], out); err != nil {
			return err
		}
	}

	if n.Text == "" && n.ContentDesc == "" && n.Hint == "" {
		return nil
	}

	rect, err := parseBounds(n.Bounds)
	if err != nil {
		return err
	}

	el := model.ScreenElement{
		Type:       n.Class,
		Text:       n.Text,
		Label:      n.ContentDesc,
		Identifier: n.ResourceID,
		Rect:       rect,
		Focused:    n.Focused == "true",
	}
	if el.Type == "" {
		el.Type = "text"
	}
	if el.Label == "" {
		el.Label = n.Hint
	}

	if !rect.Empty() {
		*out = append(*out, el)
	}
	return nil
}
