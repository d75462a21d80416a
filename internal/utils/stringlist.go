package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StringList normalizes a value that may arrive either as a real JSON
// array or as a JSON-encoded string of one (legacy clients send both
// for academic_year_levels / academic_sections). Nil yields an empty
// slice, not an error.
func StringList(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return t, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("list element is not a string: %v", e)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, nil
		}
		var out []string
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return nil, fmt.Errorf("parse string list %q: %w", t, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported list type %T", v)
	}
}
