package utils

import "strings"

// FormatPhone renders a 10-digit US number as (XXX) XXX-XXXX.
// Anything else is returned unchanged.
func FormatPhone(phone string) string {
	if phone == "" {
		return ""
	}

	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 10 {
		return phone
	}
	return "(" + d[0:3] + ") " + d[3:6] + "-" + d[6:10]
}
