package validate

import "testing"

func TestEmail(t *testing.T) {
	valid := []string{"jane@example.com", "a.b+tag@sub.domain.org", "  padded@example.com  "}
	for _, v := range valid {
		if !Email(v) {
			t.Fatalf("%q should be valid", v)
		}
	}
	invalid := []string{"", "nope", "missing@tld", "@example.com", "two@@example.com"}
	for _, v := range invalid {
		if Email(v) {
			t.Fatalf("%q should be invalid", v)
		}
	}
}

func TestPhone(t *testing.T) {
	valid := []string{"+1 (555) 123-4567", "5551234567", "01234 567 890"}
	for _, v := range valid {
		if !Phone(v) {
			t.Fatalf("%q should be valid", v)
		}
	}
	invalid := []string{"", "12345", "555-CALL-NOW", "123456789012345678"}
	for _, v := range invalid {
		if Phone(v) {
			t.Fatalf("%q should be invalid", v)
		}
	}
}

func TestMissing(t *testing.T) {
	got := Missing([]string{"customer", "date", "time"}, map[string]string{
		"customer": "Jane",
		"date":     "  ",
	})
	if len(got) != 2 || got[0] != "date" || got[1] != "time" {
		t.Fatalf("got %v", got)
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize("  <b>Jane</b>  "); got != "bJane/b" {
		t.Fatalf("got %q", got)
	}
	if got := Sanitize("Room 4, 2nd floor"); got != "Room 4, 2nd floor" {
		t.Fatalf("plain text changed: %q", got)
	}
}
