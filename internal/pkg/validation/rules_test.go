package validation

import "testing"

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane@example.com", true},
		{"jane.banda+tag@sub.example.co", true},
		{"JANE@EXAMPLE.COM", true},
		{"jane@example", false},
		{"jane example@example.com", false},
		{"@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"letters and digits", "password1", true},
		{"mixed case with digit", "Str0ngPassword", true},
		{"too short", "pass1", false},
		{"no digit", "passwords", false},
		{"no letter", "12345678", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPassword(tt.password); got != tt.want {
				t.Fatalf("ValidPassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}
