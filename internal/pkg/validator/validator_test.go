package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	valid := []string{"password1", "Abcdef12", "1234abcd"}
	invalid := []string{"short1", "password", "12345678", ""}
	for _, p := range valid {
		if !IsValidPassword(p) {
			t.Errorf("IsValidPassword(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPassword(p) {
			t.Errorf("IsValidPassword(%q) = true, want false", p)
		}
	}
}

func TestIsValidInterval(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	if !IsValidInterval(start, start.Add(time.Hour)) {
		t.Error("IsValidInterval(start, start+1h) = false, want true")
	}
	if IsValidInterval(start, start) {
		t.Error("IsValidInterval(start, start) = true, want false")
	}
	if IsValidInterval(start, start.Add(-time.Minute)) {
		t.Error("IsValidInterval(start, start-1m) = true, want false")
	}
}
