package simulator

import (
	"regexp"
	"strings"
)

// parseState is the position of the app-list parser.
type parseState int

const (
	// lookingForApp scans for an opening `"bundle.id" = {` line.
	lookingForApp parseState = iota
	// inApp collects `Key = Value;` lines of the current app.
	inApp
	// inProperty skips a nested block until its closing line.
	inProperty
)

var (
	appOpenPattern  = regexp.MustCompile(`^"?([^"=]+)"?\s*=\s*\{`)
	propertyPattern = regexp.MustCompile(`^([^=]+)\s*=\s*(.+?);\s*$`)
)

// parseAppList converts `simctl listapps` output into one property map
// per app, keyed by plist key. CFBundleIdentifier is always set. Only
// top-level scalar properties are kept; nested blocks are skipped. An
// unterminated app at end of input is dropped.
func parseAppList(text string) []map[string]string {
	var (
		apps    []map[string]string
		current map[string]string
		state   = lookingForApp
		depth   int
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch state {
		case lookingForApp:
			if m := appOpenPattern.FindStringSubmatch(line); m != nil {
				current = map[string]string{"CFBundleIdentifier": strings.TrimSpace(m[1])}
				state = inApp
			}

		case inApp:
			if line == "};" {
				apps = append(apps, current)
				current = nil
				state = lookingForApp
				continue
			}
			if m := propertyPattern.FindStringSubmatch(line); m != nil {
				current[strings.TrimSpace(m[1])] = unquote(strings.TrimSpace(m[2]))
			} else if strings.HasSuffix(line, "{") {
				state = inProperty
				depth = 1
			}

		case inProperty:
			switch {
			case strings.HasSuffix(line, "{"):
				depth++
			case line == "};" || line == "}":
				depth--
				if depth == 0 {
					state = inApp
				}
			}
		}
	}
	return apps
}

func unquote(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return v[1 : len(v)-1]
	}
	return v
}
