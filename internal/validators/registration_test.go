package validators

import (
	"strings"
	"testing"
)

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "student_42", "ABC_def_99", strings.Repeat("a", 30)}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}

	invalid := []string{"", "ab", strings.Repeat("a", 31), "with space", "dash-ed", "dot.ted"}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("jane@example.edu") {
		t.Error("rejected a plain valid email")
	}
	for _, e := range []string{"", "no-at.example.com", "jane@nodot", "spaces in@example.com"} {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true, want false", e)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	valid := []string{"abc123", "Passw0rd", "1a2b3c"}
	for _, p := range valid {
		if !IsValidPassword(p) {
			t.Errorf("IsValidPassword(%q) = false, want true", p)
		}
	}

	invalid := []string{"", "abc12", "onlyletters", "123456", "ab12"}
	for _, p := range invalid {
		if IsValidPassword(p) {
			t.Errorf("IsValidPassword(%q) = true, want false", p)
		}
	}
}

func TestIsValidFullName(t *testing.T) {
	if !IsValidFullName("Jo") || !IsValidFullName("Jane Q. Doe") {
		t.Error("rejected a valid full name")
	}
	if IsValidFullName("J") || IsValidFullName(strings.Repeat("a", 101)) {
		t.Error("accepted an invalid full name")
	}
}

func TestIsValidRole(t *testing.T) {
	if !IsValidRole("student") || !IsValidRole("professor") {
		t.Error("rejected a valid role")
	}
	if IsValidRole("admin") || IsValidRole("") {
		t.Error("accepted an invalid role")
	}
}
