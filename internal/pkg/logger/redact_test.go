package logger

import "testing"

func TestRedactEmail(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"john.doe@example.com", "jo***@example.com"},
		{"ab@example.com", "***@example.com"},
		{"a@example.com", "***@example.com"},
		{"not-an-email", "***@***"},
		{"two@ats@bad", "***@***"},
	}
	for _, c := range cases {
		if got := RedactEmail(c.in); got != c.want {
			t.Errorf("RedactEmail(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRedactPhone(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"(512) 555-0187", "***87"},
		{"5125550187", "***87"},
		{"x", "***"},
		{"7", "***"},
	}
	for _, c := range cases {
		if got := RedactPhone(c.in); got != c.want {
			t.Errorf("RedactPhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
