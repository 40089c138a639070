package id

import "errors"

// Validation and transform errors.
// These are returned by Check, Upgrade, and the checksum engine and provide
// specific information about why a number was rejected.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances at each failure site. This allows callers to use
// errors.Is() for programmatic handling while still providing human-readable
// messages. Validate() collapses all of them to false; Check() surfaces them.
var (
	// ErrEmptyNumber is returned when the input is empty after normalization.
	ErrEmptyNumber = errors.New("id number cannot be empty")

	// ErrNonDigit is returned when a position that must hold an ASCII digit
	// holds something else. The trailing 'X' check symbol of a CN-18 number
	// is consumed separately and never triggers this error.
	ErrNonDigit = errors.New("id number contains a non-digit character")

	// ErrLengthMismatch is returned by WeightedSum when the digit and weight
	// slices differ in length. A mismatched length must never produce a sum
	// that validates by coincidence.
	ErrLengthMismatch = errors.New("digit and weight lengths differ")

	// ErrInvalidDate is returned when the embedded birth-date field does not
	// parse as a real Gregorian calendar date.
	ErrInvalidDate = errors.New("id number embeds an invalid calendar date")

	// ErrUnknownRegion is returned by the CN-15 path when the two-digit
	// province prefix is not in the province table, and by the TW path when
	// the prefix letter is not a defined household-registration code.
	ErrUnknownRegion = errors.New("unknown region code")

	// ErrChecksumMismatch is returned when the recomputed check symbol does
	// not match the one carried by the number.
	ErrChecksumMismatch = errors.New("check digit mismatch")

	// ErrUnrecognizedFormat is returned when the input matches no known
	// jurisdiction shape (wrong length and no pattern match).
	ErrUnrecognizedFormat = errors.New("unrecognized id number format")

	// ErrUpgrade is returned by Upgrade when the input is not a structurally
	// valid 15-digit number.
	ErrUpgrade = errors.New("cannot upgrade id number to 18-digit form")
)
