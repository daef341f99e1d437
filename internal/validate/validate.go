// Package validate holds the pure format checks applied to form input.
// Both functions are total: any string in, true or false out.
package validate

import "regexp"

// Anchored shape check only: local@domain.tld with a 2+ letter TLD.
// No DNS lookup, no deliverability probe.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email reports whether s looks like a deliverable email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Phone reports whether s contains exactly 10 digits once every non-digit
// character is stripped. "(512) 555-0187" passes; formatting never matters.
func Phone(s string) bool {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n == 10
}
