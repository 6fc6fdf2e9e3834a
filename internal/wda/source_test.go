package wda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestFilterSourceElements_VisitsChildrenOfRejectedParent(t *testing.T) {
	tree := gjson.Parse(`{
		"type": "Other", "isVisible": "1", "label": "container",
		"rect": {"x": 0, "y": 0, "width": 390, "height": 844},
		"children": [{
			"type": "Window", "isVisible": "1",
			"rect": {"x": 0, "y": 0, "width": 390, "height": 844},
			"children": [{
				"type": "StaticText", "isVisible": "1", "label": "Welcome", "value": "Welcome",
				"rect": {"x": 16, "y": 100, "width": 200, "height": 24}
			}]
		}]
	}`)

	elements := FilterSourceElements(tree)
	require.Len(t, elements, 1)
	assert.Equal(t, "StaticText", elements[0].Type)
	assert.Equal(t, "Welcome", elements[0].Label)
	assert.Equal(t, "Welcome", elements[0].Value)
}

func TestFilterSourceElements_Rejections(t *testing.T) {
	tests := []struct {
		name string
		node string
	}{
		{"invisible", `{"type":"Button","isVisible":"0","label":"Hidden","rect":{"x":1,"y":1,"width":10,"height":10}}`},
		{"negative x", `{"type":"Button","isVisible":"1","label":"Off","rect":{"x":-5,"y":1,"width":10,"height":10}}`},
		{"negative y", `{"type":"Button","isVisible":"1","label":"Off","rect":{"x":1,"y":-1,"width":10,"height":10}}`},
		{"no label name or identifier", `{"type":"Button","isVisible":"1","rect":{"x":1,"y":1,"width":10,"height":10}}`},
		{"null label", `{"type":"Button","isVisible":"1","label":null,"name":null,"rect":{"x":1,"y":1,"width":10,"height":10}}`},
		{"unaccepted type", `{"type":"Cell","isVisible":"1","label":"Row","rect":{"x":1,"y":1,"width":10,"height":10}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, FilterSourceElements(gjson.Parse(tt.node)))
		})
	}
}

func TestFilterSourceElements_IdentifierOnly(t *testing.T) {
	node := gjson.Parse(`{"type":"Switch","isVisible":true,"rawIdentifier":"wifi-toggle","value":"1",
		"rect":{"x":300,"y":120,"width":51,"height":31}}`)

	elements := FilterSourceElements(node)
	require.Len(t, elements, 1)
	assert.Equal(t, "wifi-toggle", elements[0].Identifier)
	assert.Equal(t, "", elements[0].Label)
}

func TestFilterSourceElements_DepthFirstOrder(t *testing.T) {
	tree := gjson.Parse(`{"type":"Application","children":[
		{"type":"Button","isVisible":"1","label":"A","rect":{"x":0,"y":0,"width":1,"height":1},
		 "children":[{"type":"Image","isVisible":"1","name":"B","rect":{"x":0,"y":0,"width":1,"height":1}}]},
		{"type":"TextField","isVisible":"1","label":"C","rect":{"x":0,"y":0,"width":1,"height":1}}
	]}`)

	elements := FilterSourceElements(tree)
	require.Len(t, elements, 3)
	assert.Equal(t, "A", elements[0].Label)
	assert.Equal(t, "B", elements[1].Name)
	assert.Equal(t, "C", elements[2].Label)
}
