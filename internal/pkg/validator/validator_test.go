package validator

import (
	"testing"
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
	invalid := []string{"test@", "@example.com", "test@com", "test@domain", " ", ""}
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

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-02-28"); !ok {
		t.Error(`IsValidDate("2026-02-28") = false, want true`)
	}
	for _, s := range []string{"2026-13-01", "2026-02-30", "28-02-2026", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP001", "e", "A-17_b", "12345678901234567890"}
	invalid := []string{"", "EMP 001", "123456789012345678901", "tab\tcode"}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	allowed := []string{"CASUAL", "SICK", "EARNED", "UNPAID"}
	if !IsInSlice("SICK", allowed) {
		t.Error(`IsInSlice("SICK") = false, want true`)
	}
	if IsInSlice("sick", allowed) {
		t.Error(`IsInSlice("sick") = true, want false`)
	}
	if IsInSlice("", allowed) {
		t.Error(`IsInSlice("") = true, want false`)
	}
}

func TestIsValidMonth(t *testing.T) {
	for _, m := range []int{1, 6, 12} {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = false, want true", m)
		}
	}
	for _, m := range []int{0, 13, -1} {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = true, want false", m)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	for _, y := range []int{2000, 2026, 2200} {
		if !IsValidYear(y) {
			t.Errorf("IsValidYear(%d) = false, want true", y)
		}
	}
	for _, y := range []int{1999, 2201, 0} {
		if IsValidYear(y) {
			t.Errorf("IsValidYear(%d) = true, want false", y)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "email must be a valid email address"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["name"] != "name is required" {
		t.Errorf("ToMap()[name] = %q", m["name"])
	}
	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
