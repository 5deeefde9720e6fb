package core

import (
	"testing"
	"time"
)

func TestIsTimestampString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"date only", "2024-01-15", true},
		{"datetime with Z", "2024-01-15T10:30:00Z", true},
		{"datetime with micros", "2024-01-15T10:30:00.123456Z", true},
		{"datetime with nanos", "2024-01-15T10:30:00.123456789Z", true},
		{"datetime with offset", "2024-01-15T10:30:00-05:00", true},
		{"datetime without zone", "2024-01-15T10:30:00", true},

		{"plain text", "hello world", false},
		{"year-month only", "2024-01", false},
		{"offset without colon", "2024-01-15T10:30:00+0530", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimestampString(tt.input); got != tt.expected {
				t.Errorf("IsTimestampString(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsTimestampKey(t *testing.T) {
	for key, want := range map[string]bool{
		"created_at":  true,
		"updated_at":  true,
		"locked_time": true,
		"status_time": true,
		"name":        false,
		"value":       false,
		"at":          false,
	} {
		if got := IsTimestampKey(key); got != want {
			t.Errorf("IsTimestampKey(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2024-03-20T14:45:00.5Z")
	if err != nil {
		t.Fatalf("ParseTimestamp() error = %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 20 {
		t.Errorf("ParseTimestamp() = %v", got)
	}

	if _, err := ParseTimestamp("not-a-date"); err == nil {
		t.Error("ParseTimestamp(\"not-a-date\") expected error")
	}
}

func TestConvertTimestamps(t *testing.T) {
	result := map[string]any{
		"id":         "us-south.workspace.demo.1a2b",
		"created_at": "2024-01-15T10:30:00.123456Z",
		"template_data": []any{
			map[string]any{
				"updated_at": "2024-01-16T08:00:00Z",
				"variablestore": []any{
					map[string]any{"name": "release_date", "value": "2024-02-01"},
				},
			},
		},
		"workspace_status": map[string]any{
			"locked":      false,
			"locked_time": "2024-01-17T00:00:00Z",
		},
	}

	ConvertTimestamps(result)

	if _, ok := result["created_at"].(time.Time); !ok {
		t.Errorf("created_at = %T, want time.Time", result["created_at"])
	}
	if result["id"] != "us-south.workspace.demo.1a2b" {
		t.Errorf("id changed: %v", result["id"])
	}

	td := result["template_data"].([]any)[0].(map[string]any)
	if _, ok := td["updated_at"].(time.Time); !ok {
		t.Errorf("template_data[0].updated_at = %T, want time.Time", td["updated_at"])
	}
	variable := td["variablestore"].([]any)[0].(map[string]any)
	if variable["value"] != "2024-02-01" {
		t.Errorf("variable value converted: %v", variable["value"])
	}

	status := result["workspace_status"].(map[string]any)
	if _, ok := status["locked_time"].(time.Time); !ok {
		t.Errorf("locked_time = %T, want time.Time", status["locked_time"])
	}
}

func TestConvertTimestamps_NonContainer(t *testing.T) {
	if got := ConvertTimestamps("2024-01-15"); got != "2024-01-15" {
		t.Errorf("ConvertTimestamps(string) = %v", got)
	}
	if got := ConvertTimestamps(nil); got != nil {
		t.Errorf("ConvertTimestamps(nil) = %v", got)
	}
}
