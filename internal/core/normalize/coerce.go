package normalize

import (
	"strconv"
	"strings"
	"time"
)

// Coercion policy: a raw field either yields a validly-typed value or the
// attribute's null/false default. Nothing here ever fails and a failed parse
// never silently becomes zero.

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case []byte:
		return strings.TrimSpace(string(s))
	default:
		return ""
	}
}

func coerceFloatPtr(v any) *float64 {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int32:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func coerceIntPtr(v any) *int {
	switch n := v.(type) {
	case nil:
		return nil
	case int:
		return &n
	case int16:
		i := int(n)
		return &i
	case int32:
		i := int(n)
		return &i
	case int64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		return &i
	default:
		return nil
	}
}

// coerceBool treats true, "true" and "1" as true; everything else, including
// an absent field, is false.
func coerceBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		s := strings.TrimSpace(b)
		return s == "true" || s == "1"
	default:
		return false
	}
}

func coerceTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(t)); err == nil {
			return parsed
		}
		return time.Time{}
	default:
		return time.Time{}
	}
}

// isMediaURL accepts only non-empty strings carrying a recognized URL scheme.
func isMediaURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
