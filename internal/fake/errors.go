package fake

import "errors"

// Generation constraint errors.
// These are returned before any sampling happens, when the supplied options
// are mutually inconsistent or reference an unknown region.
var (
	// ErrRegionLength is returned by New when the region code is not exactly
	// six digits.
	ErrRegionLength = errors.New("region code must be 6 digits")

	// ErrInvalidBirthDate is returned by New when the year, month, and day
	// do not form a real calendar date.
	ErrInvalidBirthDate = errors.New("invalid date of birth")

	// ErrMaxYearInFuture is returned when the maximum year is after the
	// current year.
	ErrMaxYearInFuture = errors.New("max year must be less than or equal to the current year")

	// ErrMinYearInFuture is returned when the minimum year is after the
	// current year.
	ErrMinYearInFuture = errors.New("min year must be less than or equal to the current year")

	// ErrYearOrder is returned when the maximum year precedes the minimum
	// year.
	ErrYearOrder = errors.New("max year must be greater than or equal to min year")

	// ErrInvalidRegion is returned when the region constraint matches no
	// registered division code.
	ErrInvalidRegion = errors.New("invalid region code")
)
