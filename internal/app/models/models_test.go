package models

import "testing"

func TestJobStatusValid(t *testing.T) {
	tests := []struct {
		status JobStatus
		want   bool
	}{
		{JobStatusPublished, true},
		{JobStatusDrafted, true},
		{JobStatusClosed, true},
		{JobStatus("open"), false},
		{JobStatus(""), false},
		{JobStatus("Published"), false},
	}

	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
