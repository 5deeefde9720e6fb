package core

import (
	"regexp"
	"strings"
	"time"
)

// Schematics timestamps are RFC 3339 with up to nanosecond precision, e.g.
// 2024-01-15T10:30:00.123456789Z. Date-only values appear in a few KMS payloads.
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d{1,9})?(Z|[+-]\d{2}:\d{2})?)?$`)

// timestampSuffixes are the key suffixes the service uses for server-managed
// timestamps (created_at, updated_at, locked_time, status_time, ...).
var timestampSuffixes = []string{"_at", "_time", "_on"}

// IsTimestampString checks if a string looks like a Schematics timestamp.
func IsTimestampString(value string) bool {
	return timestampPattern.MatchString(value)
}

// IsTimestampKey reports whether a JSON key names a server-managed timestamp.
func IsTimestampKey(key string) bool {
	for _, suffix := range timestampSuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return false
}

// ParseTimestamp parses a Schematics timestamp string to time.Time.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &time.ParseError{Value: value, Message: "not a valid timestamp"}
}

// ConvertTimestamps walks a decoded JSON value and replaces timestamp strings
// held under timestamp keys with time.Time. Other strings are left alone, so
// template variable values that merely look like dates survive untouched.
// Maps and slices are modified in place; the (possibly new) value is returned.
func ConvertTimestamps(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			if s, ok := item.(string); ok && IsTimestampKey(key) && IsTimestampString(s) {
				if t, err := ParseTimestamp(s); err == nil {
					v[key] = t
				}
				continue
			}
			v[key] = ConvertTimestamps(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = ConvertTimestamps(item)
		}
		return v
	default:
		return v
	}
}
