package utils

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"a", false},
		{"  a  ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.in); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsValidContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"nine chars", "123456789", false},
		{"ten chars", "0123456789", true},
		{"padding does not count", "   1234567   ", false},
		{"long enough", "this is plenty of content", true},
		{"runes not bytes", "áéíóúüñçßø", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidContent(tt.in); got != tt.want {
				t.Errorf("IsValidContent(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, valid := range []string{"draft", "published"} {
		if !IsValidStatus(valid) {
			t.Errorf("expected %q to be a valid status", valid)
		}
	}
	for _, invalid := range []string{"", "Draft", "archived"} {
		if IsValidStatus(invalid) {
			t.Errorf("expected %q to be rejected", invalid)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"user@", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.in); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
