package handlers

import (
	"fmt"
	"strings"
)

// stringArg returns args[key] as a string. Missing keys yield "" unless required.
func stringArg(args map[string]any, key string, required bool) (string, error) {
	val, exists := args[key]
	if !exists || val == nil {
		if required {
			return "", fmt.Errorf("missing required parameter '%s'", key)
		}
		return "", nil
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("parameter '%s' must be a string (received %T)", key, val)
	}
	s = strings.TrimSpace(s)
	if required && s == "" {
		return "", fmt.Errorf("parameter '%s' cannot be empty", key)
	}
	return s, nil
}

// numberArg returns args[key] as an int. JSON numbers arrive as float64.
func numberArg(args map[string]any, key string, fallback int) (int, error) {
	val, exists := args[key]
	if !exists || val == nil {
		return fallback, nil
	}
	switch n := val.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, fmt.Errorf("parameter '%s' must be a number (received %T)", key, val)
}
