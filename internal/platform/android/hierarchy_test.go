package android

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/mobile-cli/internal/model"
)

func TestParseBounds(t *testing.T) {
	tests := []struct {
		bounds string
		want   model.Rect
	}{
		{"[0,0][1080,2400]", model.Rect{X: 0, Y: 0, Width: 1080, Height: 2400}},
		{"[42,210][1038,338]", model.Rect{X: 42, Y: 210, Width: 996, Height: 128}},
		{"[5,5][5,9]", model.Rect{X: 5, Y: 5, Width: 0, Height: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.bounds, func(t *testing.T) {
			got, err := parseBounds(tt.bounds)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBounds_Malformed(t *testing.T) {
	for _, bounds := range []string{"", "[0,0]", "[a,b][c,d]", "[0,0][10,10] ", "[-1,0][10,10]", "0,0,10,10"} {
		_, err := parseBounds(bounds)
		assert.Error(t, err, "bounds %q", bounds)
	}
}

const sampleDump = `<?xml version='1.0' encoding='UTF-8' standalone='yes' ?>
<hierarchy rotation="0">
  <node index="0" text="" resource-id="" class="android.widget.FrameLayout" content-desc="" focused="false" bounds="[0,0][1080,2400]">
    <node index="0" text="" resource-id="" class="android.view.ViewGroup" content-desc="" bounds="[0,0][1080,2400]">
      <node index="0" text="Sign in" resource-id="com.example:id/title" class="android.widget.TextView" content-desc="" focused="false" bounds="[42,210][1038,338]" />
      <node index="1" text="" resource-id="com.example:id/email" class="android.widget.EditText" content-desc="" hint="Email" focused="true" bounds="[42,400][1038,520]" />
      <node index="2" text="" resource-id="" class="android.widget.ImageButton" content-desc="Close" focused="false" bounds="[960,60][1040,140]" />
      <node index="3" text="Ghost" resource-id="" class="android.widget.TextView" content-desc="" bounds="[100,100][100,200]" />
      <node index="4" text="" resource-id="" class="android.view.View" content-desc="" bounds="[0,0][10,10]" />
    </node>
  </node>
</hierarchy>
UI hierchary dumped to: /dev/tty`

func TestParseHierarchy(t *testing.T) {
	elements, err := parseHierarchy([]byte(sampleDump))
	require.NoError(t, err)
	require.Len(t, elements, 3)

	assert.Equal(t, model.ScreenElement{
		Type:       "android.widget.TextView",
		Text:       "Sign in",
		Label:      "",
		Identifier: "com.example:id/title",
		Rect:       model.Rect{X: 42, Y: 210, Width: 996, Height: 128},
	}, elements[0])

	assert.Equal(t, "Email", elements[1].Label, "hint is the label fallback")
	assert.True(t, elements[1].Focused)
	assert.Equal(t, "com.example:id/email", elements[1].Identifier)

	assert.Equal(t, "Close", elements[2].Label)
	assert.False(t, elements[2].Focused)
	assert.Empty(t, elements[2].Identifier)
}

func TestParseHierarchy_ChildrenBeforeParent(t *testing.T) {
	dump := `<hierarchy rotation="0">
  <node text="Parent" class="android.widget.LinearLayout" bounds="[0,0][500,500]">
    <node text="Child" class="android.widget.TextView" bounds="[10,10][100,50]" />
  </node>
</hierarchy>`

	elements, err := parseHierarchy([]byte(dump))
	require.NoError(t, err)
	require.Len(t, elements, 2)
	assert.Equal(t, "Child", elements[0].Text)
	assert.Equal(t, "Parent", elements[1].Text)
}

func TestParseHierarchy_DefaultType(t *testing.T) {
	dump := `<hierarchy><node text="Hello" bounds="[0,0][10,10]" /></hierarchy>`

	elements, err := parseHierarchy([]byte(dump))
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "text", elements[0].Type)
}

func TestParseHierarchy_MalformedBoundsFailsRead(t *testing.T) {
	dump := `<hierarchy><node><node text="Broken" bounds="[0,0]" /></node></hierarchy>`

	_, err := parseHierarchy([]byte(dump))
	assert.Error(t, err)
}

func TestParseHierarchy_NonQualifyingNodeIgnoresBounds(t *testing.T) {
	dump := `<hierarchy><node text="" content-desc="" bounds="garbage"><node text="Ok" bounds="[0,0][10,10]" /></node></hierarchy>`

	elements, err := parseHierarchy([]byte(dump))
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "Ok", elements[0].Text)
}
