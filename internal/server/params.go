package server

// stringParam extracts a string parameter from MCP tool arguments.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// intParam extracts an integer parameter. JSON numbers arrive as float64.
func intParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

func hasParam(params map[string]interface{}, key string) bool {
	_, ok := params[key]
	return ok
}
