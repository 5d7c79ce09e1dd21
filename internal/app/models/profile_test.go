package models

import "testing"

func strPtr(s string) *string { return &s }

func TestHasResume(t *testing.T) {
	tests := []struct {
		name    string
		profile *CandidateProfile
		want    bool
	}{
		{"nil profile", nil, false},
		{"no resume", &CandidateProfile{}, false},
		{"empty resume url", &CandidateProfile{ResumeURL: strPtr("")}, false},
		{"resume on file", &CandidateProfile{ResumeURL: strPtr("/uploads/resumes/abc.pdf")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.HasResume(); got != tt.want {
				t.Fatalf("HasResume() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompletionPercentage(t *testing.T) {
	full := &CandidateProfile{
		User:      &User{FullName: "Jane Banda"},
		Skills:    []string{"Go"},
		ResumeURL: strPtr("/uploads/resumes/abc.pdf"),
		Location:  strPtr("Lusaka"),
		Bio:       strPtr("Backend engineer"),
	}

	tests := []struct {
		name    string
		profile *CandidateProfile
		want    int
	}{
		{"nil profile keeps base", nil, 20},
		{"empty profile keeps base", &CandidateProfile{}, 20},
		{"name only", &CandidateProfile{User: &User{FullName: "Jane"}}, 40},
		{"skills and resume", &CandidateProfile{
			Skills:    []string{"Go", "SQL"},
			ResumeURL: strPtr("/uploads/resumes/abc.pdf"),
		}, 60},
		{"everything filled", full, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.CompletionPercentage(); got != tt.want {
				t.Fatalf("CompletionPercentage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCanPublish(t *testing.T) {
	tests := []struct {
		name    string
		profile *RecruiterProfile
		want    bool
	}{
		{"nil profile", nil, false},
		{"unapproved", &RecruiterProfile{}, false},
		{"approved", &RecruiterProfile{IsApproved: true}, true},
		{"approved but suspended", &RecruiterProfile{IsApproved: true, IsSuspended: true}, false},
		{"suspended only", &RecruiterProfile{IsSuspended: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.CanPublish(); got != tt.want {
				t.Fatalf("CanPublish() = %v, want %v", got, tt.want)
			}
		})
	}
}
