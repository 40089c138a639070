package id

import (
	"regexp"
	"strings"
)

// hkPattern matches a Hong Kong Identity Card number: one or two uppercase
// prefix letters, six digits, and a check character that may be wrapped in
// parentheses. The pattern is matched before uppercasing, so a lowercase
// check character such as "G123456(a)" is rejected.
var hkPattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9]{6}\(?[0-9A]\)?$`)

// hkLetterValue returns the checksum value of a prefix letter, 'A' = 10
// through 'Z' = 35. The closed form covers every letter; no prefix letter is
// rejected outright, only by the checksum.
func hkLetterValue(c byte) int {
	return int(c) - 55
}

// checkHK validates a Hong Kong Identity Card number.
//
// The weighted sum runs over nine values: two prefix-letter values (a
// one-letter number uses a fixed base of 522, the two-space-padded prefix)
// with weights 9 and 8, the six digits with weights 7 down to 2, and the
// check character, where 'A' is worth 10. The number is valid when the sum
// is divisible by 11.
func checkHK(number string) error {
	if !hkPattern.MatchString(number) {
		return ErrUnrecognizedFormat
	}
	number = strings.ToUpper(strings.ReplaceAll(strings.ReplaceAll(number, "(", ""), ")", ""))

	var sum int
	card := number
	if len(number) == 9 {
		sum = hkLetterValue(number[0])*9 + hkLetterValue(number[1])*8
		card = number[1:9]
	} else {
		sum = 522 + hkLetterValue(number[0])*8
	}

	weight := 7
	for i := 1; i < 7; i++ {
		d := card[i]
		if d < '0' || d > '9' {
			return ErrNonDigit
		}
		sum += int(d-'0') * weight
		weight--
	}

	switch end := card[7]; {
	case end == 'A':
		sum += 10
	case end >= '0' && end <= '9':
		sum += int(end - '0')
	default:
		return ErrNonDigit
	}

	if sum%11 != 0 {
		return ErrChecksumMismatch
	}
	return nil
}
