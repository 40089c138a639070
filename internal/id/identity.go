package id

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nao1215/idcard/internal/region"
)

// Lengths of the two Mainland China formats.
const (
	// cn15Length is the length of the legacy 15-digit format.
	cn15Length = 15
	// cn18Length is the length of the modern 18-digit format.
	cn18Length = 18
)

// Fixed field layout of a CN-18 number.
const (
	regionStart = 0
	regionEnd   = 6
	birthStart  = 6
	birthEnd    = 14
	seqStart    = 14
	seqEnd      = 17
	checkPos    = 17
)

// Identity is an immutable value object representing a Mainland China ID
// number. It holds the canonical uppercased number and a validity flag;
// all derived fields are computed lazily from slices of the number and are
// absent when the number is invalid.
//
// A 15-digit input is upgraded to the 18-digit form during construction, so
// the stored number is always 18 characters when valid.
type Identity struct {
	number string // Normalized, uppercased number
	valid  bool   // Result of the construction-time validation
}

// NewIdentity creates an Identity from a raw string.
// The input is normalized (full-width folding, trim, uppercase); a 15-digit
// number is upgraded in place, an 18-digit number is checksum-validated,
// and anything else is invalid. Construction never fails: an invalid input
// yields an Identity whose IsValid reports false and whose accessors report
// absence.
func NewIdentity(number string) Identity {
	id := Identity{number: normalizeUpper(number)}
	switch len(id.number) {
	case cn15Length:
		if upgraded, err := Upgrade(id.number); err == nil {
			id.number = upgraded
			id.valid = true
		}
	case cn18Length:
		id.valid = checkCN18(id.number) == nil
	}
	return id
}

// MustNewIdentity creates an Identity or panics if the number is invalid.
// Use only for known-valid numbers in tests or fixtures.
func MustNewIdentity(number string) Identity {
	id := NewIdentity(number)
	if !id.valid {
		panic(fmt.Sprintf("invalid id number: %q", number))
	}
	return id
}

// Number returns the canonical number. For a valid identity built from a
// 15-digit input this is the upgraded 18-digit form.
func (i Identity) Number() string {
	return i.number
}

// IsValid reports whether the number passed validation.
func (i Identity) IsValid() bool {
	return i.valid
}

// IsEmpty reports whether the normalized number is empty.
func (i Identity) IsEmpty() bool {
	return i.number == ""
}

// Len returns the length of the canonical number.
func (i Identity) Len() int {
	return len(i.number)
}

// Equal reports whether two identities hold the same canonical number and
// validity. A 15-digit number and its upgraded 18-digit form compare equal
// because both canonicalize to the same 18-digit string.
func (i Identity) Equal(other Identity) bool {
	return i.number == other.number && i.valid == other.valid
}

// RegionCode returns the six-digit administrative-division code.
func (i Identity) RegionCode() (string, bool) {
	if !i.valid {
		return "", false
	}
	return i.number[regionStart:regionEnd], true
}

// BirthDate returns the birth date formatted as YYYY-MM-DD.
func (i Identity) BirthDate() (string, bool) {
	if !i.valid {
		return "", false
	}
	birth := i.number[birthStart:birthEnd]
	return birth[0:4] + "-" + birth[4:6] + "-" + birth[6:8], true
}

// Year returns the four-digit birth year.
func (i Identity) Year() (int, bool) {
	return i.field(6, 10)
}

// Month returns the birth month (1-12).
func (i Identity) Month() (int, bool) {
	return i.field(10, 12)
}

// Day returns the birth day of month.
func (i Identity) Day() (int, bool) {
	return i.field(12, 14)
}

// Age returns the holder's age in the current year, computed as the plain
// year difference. It reports absence when the current year precedes the
// birth year rather than returning a negative age.
func (i Identity) Age() (int, bool) {
	return i.AgeInYear(time.Now().Year())
}

// AgeInYear returns the holder's age in the given year, with the same
// absence rule as Age.
func (i Identity) AgeInYear(year int) (int, bool) {
	birthYear, ok := i.Year()
	if !ok || year < birthYear {
		return 0, false
	}
	return year - birthYear, true
}

// Gender returns the gender encoded in the parity of the 17th digit
// (odd = male, even = female).
func (i Identity) Gender() (Gender, bool) {
	seq, ok := i.field(16, 17)
	if !ok {
		return GenderUnknown, false
	}
	if seq%2 != 0 {
		return GenderMale, true
	}
	return GenderFemale, true
}

// Province returns the province name for the two-digit prefix.
// A valid number may carry a prefix outside the table; that reports absence
// here without affecting validity.
func (i Identity) Province() (string, bool) {
	if !i.valid {
		return "", false
	}
	return region.ProvinceName(i.number[0:2])
}

// Region returns the place name for the six-digit division code, looked up
// in the embedded registry. An unknown code reports absence; validity of the
// number never depends on registry membership.
func (i Identity) Region() (string, bool) {
	return i.RegionIn(region.Embedded())
}

// RegionIn is like Region but looks the code up in the supplied registry,
// e.g. the SQLite-backed full county table.
func (i Identity) RegionIn(reg region.Registry) (string, bool) {
	code, ok := i.RegionCode()
	if !ok {
		return "", false
	}
	return reg.Lookup(code)
}

// field parses the digit substring [start:end) of a valid number.
func (i Identity) field(start, end int) (int, bool) {
	if !i.valid {
		return 0, false
	}
	n, err := strconv.Atoi(i.number[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
