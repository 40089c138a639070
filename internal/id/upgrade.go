package id

import "fmt"

// Upgrade converts a legacy 15-digit number to the modern 18-digit form.
// It inserts the literal "19" century prefix between the region code and the
// six-digit birth-date tail, then recomputes and appends the check symbol
// over the resulting 17 digits.
//
// The transform is one-way: the legacy form carries no century digit, so
// "19" is the only century it can express. Province-table membership is not
// re-verified here; that belongs to validation.
//
// Upgrade returns ErrUpgrade (wrapping the specific cause) when the input is
// not 15 digits or the embedded date does not parse.
func Upgrade(number string) (string, error) {
	number = normalizeUpper(number)
	if len(number) != cn15Length {
		return "", fmt.Errorf("%w: expected %d digits, got %d characters", ErrUpgrade, cn15Length, len(number))
	}
	if !IsDigits(number) {
		return "", fmt.Errorf("%w: %w", ErrUpgrade, ErrNonDigit)
	}
	if !validBirthDate("19" + number[6:12]) {
		return "", fmt.Errorf("%w: %w", ErrUpgrade, ErrInvalidDate)
	}

	upgraded := number[0:6] + "19" + number[6:]
	digits, err := Digits(upgraded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpgrade, err)
	}
	check, err := cn18CheckSymbol(digits)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpgrade, err)
	}
	return upgraded + string(check), nil
}
