package dbutil

import (
	"fmt"
	"strings"
	"time"
)

// ParamSummary returns a privacy-conscious summary of a value for logging.
// Connection URIs and other credentials must never reach a log line, so strings
// are reported by length only.
//
// Rules:
// - name=null for nil
// - name=empty for empty strings
// - name=len=N for non-empty strings
// - name=V for integers and booleans
// - name=zero-time or name=non-zero-time for time.Time
func ParamSummary(name string, v any) string {
	switch x := v.(type) {
	case nil:
		return name + "=null"
	case string:
		if x == "" {
			return name + "=empty"
		}
		return fmt.Sprintf("%s=len=%d", name, len(x))
	case bool:
		return fmt.Sprintf("%s=%t", name, x)
	case int:
		return fmt.Sprintf("%s=%d", name, x)
	case int64:
		return fmt.Sprintf("%s=%d", name, x)
	case time.Duration:
		return fmt.Sprintf("%s=%s", name, x)
	case time.Time:
		if x.IsZero() {
			return name + "=zero-time"
		}
		return name + "=non-zero-time"
	default:
		return fmt.Sprintf("%s=%T", name, v)
	}
}

// ErrWrap returns a formatted error with an operation label and optional summaries.
// Example: ErrWrap("schema.ensure", err, ParamSummary("url", url))
func ErrWrap(op string, err error, parts ...string) error {
	if err == nil {
		return nil
	}
	if len(parts) == 0 {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w; %s", op, err, strings.Join(parts, ","))
}
