package id

// Digits converts a numeric string into its ordered digit values.
// It returns ErrNonDigit if any character is not an ASCII digit and
// ErrEmptyNumber for the empty string.
//
// The 'X' check symbol that may terminate a CN-18 number is not a digit;
// callers slice it off and compare it against CheckSymbol separately.
func Digits(s string) ([]int, error) {
	if s == "" {
		return nil, ErrEmptyNumber
	}
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, ErrNonDigit
		}
		digits[i] = int(c - '0')
	}
	return digits, nil
}

// IsDigits reports whether s is non-empty and consists only of ASCII digits.
func IsDigits(s string) bool {
	_, err := Digits(s)
	return err == nil
}
