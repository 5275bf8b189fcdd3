package entity

import "testing"

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
	}{
		{"minor", SeverityMinor},
		{"medium", SeverityMedium},
		{"major", SeverityMajor},
		{"MAJOR", SeverityMajor},
		{" medium ", SeverityMedium},
		{"critical", SeverityMinor}, // unrecognized falls back to minor
		{"", SeverityMinor},
		{"unknown", SeverityMinor},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseSeverity(tt.input); got != tt.want {
				t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
