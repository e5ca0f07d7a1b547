package validators

import "testing"

func TestIsEmailFormatValid(t *testing.T) {
	valid := []string{
		"nimal@example.com",
		"a.b+tag@clinic.lk",
	}
	for _, e := range valid {
		if !IsEmailFormatValid(e) {
			t.Errorf("expected %q to be valid", e)
		}
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@domain",
		"@example.com",
	}
	for _, e := range invalid {
		if IsEmailFormatValid(e) {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}
