package format

import "strings"

// FormatPhone normalizes a North-American phone number to "(AAA) BBB-CCCC".
// Input with anything other than 10 digits (optionally prefixed with a
// leading 1) is returned unchanged.
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
	if len(d) == 11 && d[0] == '1' {
		d = d[1:]
	}
	if len(d) != 10 {
		return phone
	}

	return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
}
