package id

import "time"

// birthDateLayout is the embedded birth-date layout (YYYYMMDD).
const birthDateLayout = "20060102"

// parseBirthDate parses an 8-character YYYYMMDD substring as a real
// Gregorian calendar date. time.Parse rejects out-of-range components, so
// Feb 29 on non-leap years, month 13, and day 32 all fail here.
func parseBirthDate(s string) (time.Time, error) {
	t, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// validBirthDate reports whether the YYYYMMDD substring is a real date.
func validBirthDate(s string) bool {
	_, err := parseBirthDate(s)
	return err == nil
}
