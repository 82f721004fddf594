package domain

import (
	"fmt"
	"strings"
)

// ParseAmount converts a decimal cedi amount such as "5", "5.5" or
// "5.00" into pesewas (minor units). Amounts are integer math end to
// end; floats never touch stored values.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &FieldError{Field: "amount", Reason: "is required"}
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, &FieldError{Field: "amount", Reason: "has more than 2 decimal places"}
	}
	for len(frac) < 2 {
		frac += "0"
	}
	var cents int64
	for _, part := range []string{whole, frac} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return 0, &FieldError{Field: "amount", Reason: "is not a valid amount"}
			}
			cents = cents*10 + int64(r-'0')
		}
	}
	if cents <= 0 {
		return 0, &FieldError{Field: "amount", Reason: "must be greater than 0"}
	}
	return cents, nil
}

// FormatAmount renders pesewas as a cedi string, e.g. 500 -> "GHS 5.00".
func FormatAmount(cents int64) string {
	return fmt.Sprintf("GHS %d.%02d", cents/100, cents%100)
}
