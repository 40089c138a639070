// Package fake synthesizes Mainland China ID numbers that pass validation.
//
// The generator exists for test fixtures and demo data: it assembles the 17
// significant digits from a region code, a birth date, and a parity-forced
// sequence number, then appends the real check symbol. Constraints (region
// prefix, year range, gender) are validated before any sampling so that
// inconsistent options fail fast with a descriptive error.
//
// Only the sequence digits are random once the constraints are fixed; the
// region code, birth fields, and gender of the output always match the
// request exactly.
package fake
