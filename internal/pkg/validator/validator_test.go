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
		{"\t\n", true},
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
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
	}
	invalid := []string{
		"123e4567e89b12d3a456426614174000",
		"g23e4567-e89b-12d3-a456-426614174000",
		"123e4567-e89b-12d3-a456-42661417400",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDNI(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"12345678", true},
		{"00000001", true},
		{"1234567", false},
		{"123456789", false},
		{"1234567a", false},
		{"", false},
	}
	for _, c := range cases {
		got := IsValidDNI(c.input)
		if got != c.want {
			t.Errorf("IsValidDNI(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidRUC(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"20123456789", true},
		{"10987654321", true},
		{"2012345678", false},
		{"201234567890", false},
		{"2012345678a", false},
	}
	for _, c := range cases {
		got := IsValidRUC(c.input)
		if got != c.want {
			t.Errorf("IsValidRUC(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"987654321", true},
		{"+51 987 654 321", true},
		{"01-234-5678", true},
		{"123456", false},
		{"1234567890123456", false},
		{"98765432a", false},
	}
	for _, c := range cases {
		got := IsValidPhoneNumber(c.input)
		if got != c.want {
			t.Errorf("IsValidPhoneNumber(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-07-28"); !ok {
		t.Error("IsValidDate(2025-07-28) = false, want true")
	}
	for _, input := range []string{"2025-13-01", "28-07-2025", "2025/07/28", "not-a-date", ""} {
		if _, ok := IsValidDate(input); ok {
			t.Errorf("IsValidDate(%q) = true, want false", input)
		}
	}
}

func TestIsValidCode(t *testing.T) {
	valid := []string{"RRHH", "IT-01", "dev_backend", "a.b.c", "X"}
	invalid := []string{"", "has space", "ñandu", "this-code-is-way-too-long-for-a-reference"}
	for _, code := range valid {
		if !IsValidCode(code) {
			t.Errorf("IsValidCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidCode(code) {
			t.Errorf("IsValidCode(%q) = true, want false", code)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "dni", Message: "dni must be exactly 8 digits"},
		{Field: "email", Message: "invalid email format"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["dni"] != "dni must be exactly 8 digits" {
		t.Errorf("ToMap()[dni] = %q", m["dni"])
	}
	if errs.Error() == "" {
		t.Error("Error() returned empty string")
	}
}
