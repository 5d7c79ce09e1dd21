package models

import "testing"

func TestApplicationStatusValid(t *testing.T) {
	tests := []struct {
		status ApplicationStatus
		want   bool
	}{
		{ApplicationPending, true},
		{ApplicationShortlisted, true},
		{ApplicationRejected, true},
		{ApplicationHired, true},
		{ApplicationStatus("archived"), false},
		{ApplicationStatus(""), false},
		{ApplicationStatus("PENDING"), false},
	}

	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestApplicationStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from ApplicationStatus
		to   ApplicationStatus
		want bool
	}{
		{"pending to shortlisted", ApplicationPending, ApplicationShortlisted, true},
		{"pending to rejected", ApplicationPending, ApplicationRejected, true},
		{"pending to hired skips shortlist", ApplicationPending, ApplicationHired, false},
		{"shortlisted to hired", ApplicationShortlisted, ApplicationHired, true},
		{"shortlisted to rejected", ApplicationShortlisted, ApplicationRejected, true},
		{"shortlisted back to pending", ApplicationShortlisted, ApplicationPending, false},
		{"hired is terminal", ApplicationHired, ApplicationRejected, false},
		{"rejected is terminal", ApplicationRejected, ApplicationShortlisted, false},
		{"rejected cannot be rehired", ApplicationRejected, ApplicationHired, false},
		{"no self transition", ApplicationPending, ApplicationPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Fatalf("CanTransitionTo(%q -> %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
