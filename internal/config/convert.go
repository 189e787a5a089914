package config

import (
	"fmt"
	"time"
)

func mismatch(path, want string, v any) error {
	return &TypeError{Path: path, Expected: want, Actual: typeName(v)}
}

func asString(path string, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", mismatch(path, "string", v)
}

// asInt accepts any integer the decoders produce, including whole floats.
func asInt(path string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, mismatch(path, "int", v)
}

func asBool(path string, v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, mismatch(path, "bool", v)
}

// asDuration parses strings with time.ParseDuration and takes integers
// as milliseconds.
func asDuration(path string, v any) (time.Duration, error) {
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case int:
		return time.Duration(d) * time.Millisecond, nil
	case int64:
		return time.Duration(d) * time.Millisecond, nil
	case string:
		if parsed, err := time.ParseDuration(d); err == nil {
			return parsed, nil
		}
		return 0, &TypeError{Path: path, Expected: "duration", Actual: fmt.Sprintf("%q", d)}
	}
	return 0, mismatch(path, "duration", v)
}

// asStringSlice returns a fresh slice. A lone string becomes a
// one-element list.
func asStringSlice(path string, v any) ([]string, error) {
	switch list := v.(type) {
	case string:
		return []string{list}, nil
	case []string:
		return append([]string(nil), list...), nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, mismatch(path, "[]string", v)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, mismatch(path, "[]string", v)
}

// typeName describes v in TypeError messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case int, int64:
		return "int"
	case map[string]any:
		return "table"
	case []any:
		return "list"
	case time.Duration:
		return "duration"
	}
	return fmt.Sprintf("%T", v)
}
