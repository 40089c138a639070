package id

import (
	"regexp"
	"strings"
)

// moPattern matches a Macau resident identity card number after parenthesis
// removal: a leading 1, 5, or 7, six digits, and a trailing digit or letter.
var moPattern = regexp.MustCompile(`^[157][0-9]{6}[0-9A-Z]$`)

// checkMO validates a Macau resident identity card number.
//
// Macau validation is a structural check only: the public verification-digit
// algorithm is not published, so the trailing character is accepted as any
// digit or letter and no checksum is computed.
func checkMO(number string) error {
	number = strings.ReplaceAll(strings.ReplaceAll(number, "(", ""), ")", "")
	number = normalizeUpper(number)
	if len(number) != 8 || !moPattern.MatchString(number) {
		return ErrUnrecognizedFormat
	}
	return nil
}
