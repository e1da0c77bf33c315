package orcid

import (
	"regexp"
	"strings"
)

const DefaultURLPrefix = "https://orcid.org/"

var formatRegex = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

// IsValidFormat checks the dashed 16 character form, e.g. 0000-0002-1825-0097.
func IsValidFormat(orcid string) bool {
	return formatRegex.MatchString(orcid)
}

// Check validates the ISO 7064 11,2 check digit of the identifier.
// The last character may be X, standing for 10.
func Check(orcid string) bool {
	digits := make([]int, 0, 16)
	for _, char := range strings.ReplaceAll(orcid, "-", "") {
		switch {
		case char == 'X' || char == 'x':
			digits = append(digits, 10)
		case char >= '0' && char <= '9':
			digits = append(digits, int(char-'0'))
		default:
			return false
		}
	}
	if len(digits) < 2 {
		return false
	}
	total := 0
	for _, digit := range digits[:len(digits)-1] {
		total = (total + digit) * 2
	}
	return (12-total%11)%11 == digits[len(digits)-1]
}

func URL(prefix, orcid string) string {
	if prefix == "" {
		prefix = DefaultURLPrefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + orcid
}
