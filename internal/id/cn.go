package id

import (
	"fmt"

	"github.com/nao1215/idcard/internal/region"
)

// checkCN15 validates a legacy 15-digit number: all digits, a two-digit
// prefix present in the province table, and "19" + the middle six digits
// parsing as a real calendar date.
//
// The province-table requirement is unique to the legacy path. The 15-digit
// form has no checksum, so the table membership is the only structural
// defense it has against arbitrary digit strings.
func checkCN15(number string) error {
	if !IsDigits(number) {
		return ErrNonDigit
	}
	if !region.ProvinceExists(number[0:2]) {
		return fmt.Errorf("%w: %s", ErrUnknownRegion, number[0:2])
	}
	if !validBirthDate("19" + number[6:12]) {
		return ErrInvalidDate
	}
	return nil
}

// checkCN18 validates a modern 18-digit number: a real embedded calendar
// date, 17 leading digits, and a matching check symbol. Registry membership
// is deliberately not required; validity depends only on digit and date
// well-formedness and the checksum.
func checkCN18(number string) error {
	if !validBirthDate(number[birthStart:birthEnd]) {
		return ErrInvalidDate
	}
	digits, err := Digits(number[:checkPos])
	if err != nil {
		return err
	}
	check, err := cn18CheckSymbol(digits)
	if err != nil {
		return err
	}
	// The stored number is already uppercased, so 'x' compares equal to 'X'.
	if number[checkPos] != check {
		return ErrChecksumMismatch
	}
	return nil
}
