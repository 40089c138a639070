package id

import "strings"

// Jurisdiction identifies which ID-number scheme a string is shaped like.
//
// Design decision: We use a closed iota-based enum with shape detection
// rather than free-standing per-jurisdiction validate functions. Dispatch is
// by shape only; detection never proves validity, it just picks which
// validator gets to reject the input.
type Jurisdiction int

const (
	// JurisdictionUnknown indicates no known scheme matched.
	JurisdictionUnknown Jurisdiction = iota
	// JurisdictionCN15 is the legacy 15-digit Mainland China format.
	JurisdictionCN15
	// JurisdictionCN18 is the modern 18-digit Mainland China format.
	JurisdictionCN18
	// JurisdictionHK is the Hong Kong Identity Card format.
	JurisdictionHK
	// JurisdictionMO is the Macau resident identity card format.
	JurisdictionMO
	// JurisdictionTW is the Taiwan ID format.
	JurisdictionTW
)

// String returns a human-readable representation of the jurisdiction.
func (j Jurisdiction) String() string {
	switch j {
	case JurisdictionCN15:
		return "CN-15"
	case JurisdictionCN18:
		return "CN-18"
	case JurisdictionHK:
		return "HK"
	case JurisdictionMO:
		return "MO"
	case JurisdictionTW:
		return "TW"
	default:
		return "unknown"
	}
}

// Detect determines the jurisdiction a raw string is shaped like.
//
// Hong Kong is tried first because its bracket-tolerant pattern is
// independent of plain length and case-sensitive; the remaining schemes are
// disambiguated on the uppercased form by length and pattern. An 8-character
// Macau number cannot collide with a one-letter Hong Kong number because
// Macau numbers start with a digit.
func Detect(number string) Jurisdiction {
	s := Normalize(number)
	if s == "" {
		return JurisdictionUnknown
	}
	if hkPattern.MatchString(s) {
		return JurisdictionHK
	}

	u := strings.ToUpper(s)
	switch len(u) {
	case cn15Length:
		return JurisdictionCN15
	case cn18Length:
		return JurisdictionCN18
	}

	stripped := strings.ReplaceAll(strings.ReplaceAll(u, "(", ""), ")", "")
	if len(stripped) == 8 && moPattern.MatchString(stripped) {
		return JurisdictionMO
	}
	if len(u) == 10 && twPattern.MatchString(u) {
		return JurisdictionTW
	}
	return JurisdictionUnknown
}

// Check validates a raw string against the jurisdiction its shape selects
// and returns a typed error describing the first failure, or nil when the
// number is valid. It is total: any string yields a verdict.
func Check(number string) error {
	s := Normalize(number)
	if s == "" {
		return ErrEmptyNumber
	}
	switch Detect(s) {
	case JurisdictionCN15:
		return checkCN15(strings.ToUpper(s))
	case JurisdictionCN18:
		return checkCN18(strings.ToUpper(s))
	case JurisdictionHK:
		return checkHK(s)
	case JurisdictionMO:
		return checkMO(s)
	case JurisdictionTW:
		return checkTW(s)
	default:
		return ErrUnrecognizedFormat
	}
}

// Validate reports whether a raw string is a valid ID number in any
// supported jurisdiction.
func Validate(number string) bool {
	return Check(number) == nil
}
