package utils

import "testing"

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain name untouched",
			input:    "Downtown2025",
			expected: "Downtown2025",
		},
		{
			name:     "spaces become underscores",
			input:    "Downtown AM Peak",
			expected: "Downtown_AM_Peak",
		},
		{
			name:     "path separators removed",
			input:    "../etc/passwd",
			expected: "etc_passwd",
		},
		{
			name:     "unsafe characters stripped",
			input:    "rush:hour*2025?",
			expected: "rushhour2025",
		},
		{
			name:     "dots and underscores trimmed at ends",
			input:    "._scenario_.",
			expected: "scenario",
		},
		{
			name:     "whitespace runs collapse",
			input:    "a \t b",
			expected: "a_b",
		},
		{
			name:     "empty falls back",
			input:    "",
			expected: "scenario",
		},
		{
			name:     "only unsafe characters falls back",
			input:    "???",
			expected: "scenario",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.input); got != tt.expected {
				t.Errorf("SanitizeName(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
