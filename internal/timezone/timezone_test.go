package timezone

import "testing"

func TestIsValid(t *testing.T) {
	if !IsValid("Asia/Colombo") {
		t.Error("expected Asia/Colombo to be valid")
	}
	if IsValid("") || IsValid("Mars/Olympus") {
		t.Error("expected invalid timezones to be rejected")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Year() != 2026 || d.Month() != 9 || d.Day() != 15 {
		t.Fatalf("unexpected date %v", d)
	}
	if d.Location().String() != DefaultTimezone {
		t.Fatalf("expected clinic timezone, got %s", d.Location())
	}

	for _, bad := range []string{"", "15-09-2026", "2026/09/15"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected %q to fail", bad)
		}
	}
}
