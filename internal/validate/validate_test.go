package validate

import "testing"

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"fighter@example.com", true},
		{"a.b-c@d.e.com", true},
		{"first_last%tag+box@sub.domain-name.org", true},
		{"UPPER@EXAMPLE.COM", true},
		{"no-at-sign.example.com", false},
		{"short-tld@example.c", false},
		{"", false},
		{"two@@example.com", false},
		{"@example.com", false},
		{"user@", false},
		{"user@domain", false},
		{"spaces in@example.com", false},
		{"trailing@example.com ", false},
	}
	for _, c := range cases {
		if got := Email(c.in); got != c.want {
			t.Errorf("Email(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"5125550187", true},
		{"(123) 456-7890", true},
		{"123.456.7890", true},
		{"123-456-7890 ", true},
		{"12345", false},
		{"123-456-78901", false},
		{"", false},
		{"phone number", false},
		{"1-800-555-0187", false}, // 11 digits
		{"++512...555++0187--", true},
	}
	for _, c := range cases {
		if got := Phone(c.in); got != c.want {
			t.Errorf("Phone(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
