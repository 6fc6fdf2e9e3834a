package wda

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/platform"
)

// pointerStep is one W3C pointer action.
type pointerStep struct {
	Type     string `json:"type"`
	Duration int    `json:"duration,omitempty"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Button   int    `json:"button"`
}

type pointerParameters struct {
	PointerType string `json:"pointerType"`
}

type pointerSource struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Parameters pointerParameters `json:"parameters"`
	Actions    []pointerStep     `json:"actions"`
}

type pointerActions struct {
	Actions []pointerSource `json:"actions"`
}

func touch(steps ...pointerStep) pointerActions {
	return pointerActions{Actions: []pointerSource{{
		Type:       "pointer",
		ID:         "finger1",
		Parameters: pointerParameters{PointerType: "touch"},
		Actions:    steps,
	}}}
}

// Fixed swipe endpoints in device points.
const (
	swipeX      = 200
	swipeTopY   = 200
	swipeLowerY = 600
)

var buttonNames = map[string]string{
	"HOME":        "home",
	"VOLUME_UP":   "volumeup",
	"VOLUME_DOWN": "volumedown",
}

// GetScreenSize returns the screen size in points and the pixel scale.
// Scale defaults to 1 when the agent omits it.
func (c *Client) GetScreenSize(ctx context.Context) (model.ScreenSize, error) {
	var size model.ScreenSize
	err := c.withinSession(ctx, func(session string) error {
		res, err := c.do(ctx, http.MethodGet, session+"/wda/screen", nil)
		if err != nil {
			return err
		}
		value := res.Get("value")
		size.Width = int(value.Get("screenSize.width").Int())
		size.Height = int(value.Get("screenSize.height").Int())
		size.Scale = value.Get("scale").Float()
		if size.Scale == 0 {
			size.Scale = 1
		}
		return nil
	})
	return size, err
}

// SendKeys types text into the focused element.
func (c *Client) SendKeys(ctx context.Context, text string) error {
	return c.withinSession(ctx, func(session string) error {
		_, err := c.do(ctx, http.MethodPost, session+"/wda/keys", map[string]any{
			"value": []string{text},
		})
		return err
	})
}

// PressButton presses HOME, VOLUME_UP or VOLUME_DOWN. ENTER is sent as a
// newline key press.
func (c *Client) PressButton(ctx context.Context, button string) error {
	if button == "ENTER" {
		return c.SendKeys(ctx, "\n")
	}

	name, ok := buttonNames[button]
	if !ok {
		return platform.Actionable("Button %q is not supported by WebDriverAgent. Supported buttons: HOME, VOLUME_UP, VOLUME_DOWN, ENTER", button)
	}

	return c.withinSession(ctx, func(session string) error {
		_, err := c.do(ctx, http.MethodPost, session+"/wda/pressButton", map[string]any{
			"name": name,
		})
		return err
	})
}

// Tap touches (x, y) for 100ms.
func (c *Client) Tap(ctx context.Context, x, y int) error {
	actions := touch(
		pointerStep{Type: "pointerMove", X: x, Y: y},
		pointerStep{Type: "pointerDown"},
		pointerStep{Type: "pause", Duration: 100},
		pointerStep{Type: "pointerUp"},
	)
	return c.withinSession(ctx, func(session string) error {
		_, err := c.do(ctx, http.MethodPost, session+"/actions", actions)
		return err
	})
}

// Swipe drags vertically between two fixed points. "down" moves from
// the lower point to the upper one and "up" reverses it.
func (c *Client) Swipe(ctx context.Context, direction model.Direction) error {
	y0, y1 := swipeLowerY, swipeTopY
	switch direction {
	case model.SwipeDown:
	case model.SwipeUp:
		y0, y1 = y1, y0
	default:
		return platform.Actionable("Swipe direction %q is not supported by WebDriverAgent", direction)
	}

	actions := touch(
		pointerStep{Type: "pointerMove", X: swipeX, Y: y0},
		pointerStep{Type: "pointerDown"},
		pointerStep{Type: "pointerMove", X: swipeX, Y: y1},
		pointerStep{Type: "pause", Duration: 1000},
		pointerStep{Type: "pointerUp"},
	)
	return c.withinSession(ctx, func(session string) error {
		_, err := c.do(ctx, http.MethodPost, session+"/actions", actions)
		return err
	})
}

// SetOrientation rotates the screen. The agent expects upper case.
func (c *Client) SetOrientation(ctx context.Context, orientation model.Orientation) error {
	return c.withinSession(ctx, func(session string) error {
		_, err := c.do(ctx, http.MethodPost, session+"/orientation", map[string]any{
			"orientation": strings.ToUpper(string(orientation)),
		})
		return err
	})
}

// GetOrientation returns the current orientation in lower case.
func (c *Client) GetOrientation(ctx context.Context) (model.Orientation, error) {
	var orientation model.Orientation
	err := c.withinSession(ctx, func(session string) error {
		res, err := c.do(ctx, http.MethodGet, session+"/orientation", nil)
		if err != nil {
			return err
		}
		value := strings.ToLower(res.Get("value").String())
		if value == "" {
			return fmt.Errorf("WebDriverAgent returned no orientation")
		}
		orientation = model.Orientation(value)
		return nil
	})
	return orientation, err
}

// OpenURL asks the agent to open url with the system handler.
func (c *Client) OpenURL(ctx context.Context, url string) error {
	return c.withinSession(ctx, func(session string) error {
		_, err := c.do(ctx, http.MethodPost, session+"/url", map[string]any{
			"url": url,
		})
		return err
	})
}
