package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppList_SkipsNestedBlock(t *testing.T) {
	input := "\"com.a.b\" = {\n  CFBundleDisplayName = \"App A\";\n  Nested = {\n    X = 1;\n  };\n};"

	apps := parseAppList(input)
	require.Len(t, apps, 1)
	assert.Equal(t, map[string]string{
		"CFBundleIdentifier":  "com.a.b",
		"CFBundleDisplayName": "App A",
	}, apps[0])
}

func TestParseAppList_MultipleApps(t *testing.T) {
	input := `{
    "com.apple.mobilesafari" =     {
        ApplicationType = System;
        Bundle = "file:///Applications/MobileSafari.app/";
        CFBundleDisplayName = Safari;
        CFBundleExecutable = MobileSafari;
        CFBundleIdentifier = "com.apple.mobilesafari";
        GroupContainers =         {
            "group.com.apple.mobilesafari" = "file:///data/Containers/Shared/AppGroup/1/";
        };
        SBAppTags =         (
        );
    };
    "com.example.todo" =     {
        ApplicationType = User;
        CFBundleDisplayName = "Todo List";
        CFBundleIdentifier = "com.example.todo";
    };
}`

	apps := parseAppList(input)
	require.Len(t, apps, 2)
	assert.Equal(t, "com.apple.mobilesafari", apps[0]["CFBundleIdentifier"])
	assert.Equal(t, "Safari", apps[0]["CFBundleDisplayName"])
	assert.Equal(t, "System", apps[0]["ApplicationType"])
	assert.NotContains(t, apps[0], "GroupContainers")
	assert.NotContains(t, apps[0], "group.com.apple.mobilesafari")

	assert.Equal(t, "com.example.todo", apps[1]["CFBundleIdentifier"])
	assert.Equal(t, "Todo List", apps[1]["CFBundleDisplayName"])
}

func TestParseAppList_DeeplyNestedBlock(t *testing.T) {
	input := `"com.a.b" = {
  Outer = {
    Inner = {
      X = 1;
    };
    Y = 2;
  };
  CFBundleDisplayName = "After";
};`

	apps := parseAppList(input)
	require.Len(t, apps, 1)
	assert.Equal(t, "After", apps[0]["CFBundleDisplayName"])
	assert.NotContains(t, apps[0], "Y")
}

func TestParseAppList_Unterminated(t *testing.T) {
	input := `"com.done" = {
  CFBundleDisplayName = Done;
};
"com.partial" = {
  CFBundleDisplayName = Partial;`

	apps := parseAppList(input)
	require.Len(t, apps, 1)
	assert.Equal(t, "com.done", apps[0]["CFBundleIdentifier"])
}

func TestParseAppList_Empty(t *testing.T) {
	assert.Empty(t, parseAppList(""))
	assert.Empty(t, parseAppList("garbage\nmore garbage"))
}
