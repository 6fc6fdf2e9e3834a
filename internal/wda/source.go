package wda

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/mj1618/mobile-cli/internal/model"
)

// acceptedTypes lists the accessibility node types reported as elements.
var acceptedTypes = map[string]bool{
	"TextField":   true,
	"Button":      true,
	"Switch":      true,
	"Icon":        true,
	"SearchField": true,
	"StaticText":  true,
	"Image":       true,
}

// GetPageSource fetches the full accessibility tree. It is not session scoped.
func (c *Client) GetPageSource(ctx context.Context) (gjson.Result, error) {
	res, err := c.do(ctx, http.MethodGet, "/source/?format=json", nil)
	if err != nil {
		return gjson.Result{}, err
	}
	value := res.Get("value")
	if !value.IsObject() {
		return gjson.Result{}, fmt.Errorf("WebDriverAgent page source has no tree")
	}
	return value, nil
}

// GetElementsOnScreen returns the visible elements of the page source.
func (c *Client) GetElementsOnScreen(ctx context.Context) ([]model.ScreenElement, error) {
	source, err := c.GetPageSource(ctx)
	if err != nil {
		return nil, err
	}
	return FilterSourceElements(source), nil
}

// FilterSourceElements walks a JSON accessibility tree depth first and
// keeps the nodes of an accepted type that are visible, lie at
// non-negative coordinates and carry a label, name or identifier.
// Children are visited whether or not their parent qualified.
func FilterSourceElements(root gjson.Result) []model.ScreenElement {
	var out []model.ScreenElement
	collectSourceElements(root, &out)
	return out
}

func collectSourceElements(node gjson.Result, out *[]model.ScreenElement) {
	if qualifies(node) {
		*out = append(*out, model.ScreenElement{
			Type:       node.Get("type").String(),
			Label:      node.Get("label").String(),
			Name:       node.Get("name").String(),
			Value:      node.Get("value").String(),
			Identifier: node.Get("rawIdentifier").String(),
			Rect: model.Rect{
				X:      int(node.Get("rect.x").Int()),
				Y:      int(node.Get("rect.y").Int()),
				Width:  int(node.Get("rect.width").Int()),
				Height: int(node.Get("rect.height").Int()),
			},
		})
	}

	node.Get("children").ForEach(func(_, child gjson.Result) bool {
		collectSourceElements(child, out)
		return true
	})
}

func qualifies(node gjson.Result) bool {
	if !acceptedTypes[node.Get("type").String()] {
		return false
	}
	if !node.Get("isVisible").Bool() {
		return false
	}
	if node.Get("rect.x").Float() < 0 || node.Get("rect.y").Float() < 0 {
		return false
	}
	return present(node.Get("label")) || present(node.Get("name")) || present(node.Get("rawIdentifier"))
}

func present(v gjson.Result) bool {
	return v.Exists() && v.Type != gjson.Null
}
