package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback time.Duration
		want     time.Duration
	}{
		{"hours", "2h", time.Minute, 2 * time.Hour},
		{"compound", "1h30m", time.Minute, 90 * time.Minute},
		{"invalid falls back", "notaduration", 15 * time.Minute, 15 * time.Minute},
		{"empty falls back", "", time.Hour, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDuration(tt.input, tt.fallback); got != tt.want {
				t.Fatalf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
