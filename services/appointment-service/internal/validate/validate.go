// Package validate holds the field checks applied at the API
// boundary before rows are stored.
package validate

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func Email(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}

// Phone accepts 10 to 15 digits, ignoring common separators and a
// leading plus.
func Phone(value string) bool {
	digits := 0
	for _, r := range strings.TrimSpace(value) {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+' || r == '.':
		default:
			return false
		}
	}
	return digits >= 10 && digits <= 15
}

// Missing returns the names of required fields whose value is blank,
// in the order given.
func Missing(fields []string, values map[string]string) []string {
	var missing []string
	for _, name := range fields {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Sanitize trims the value and drops characters that have no place in
// a stored CRM field.
func Sanitize(value string) string {
	value = strings.TrimSpace(value)
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '\x00':
			return -1
		}
		return r
	}, value)
}
