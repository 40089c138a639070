package id

import (
	"errors"
	"testing"
)

func TestCheckTW(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number string
		expect error
	}{
		{name: "taipei male", number: "A123456789", expect: nil},
		{name: "taichung male", number: "B142610160", expect: nil},
		{name: "chiayi county female", number: "Q155304682", expect: nil},
		{name: "lowercase input is folded", number: "a123456789", expect: nil},
		{name: "bad check digit", number: "Q155304680", expect: ErrChecksumMismatch},
		{name: "gender marker out of range", number: "A323456789", expect: ErrUnrecognizedFormat},
		{name: "too short", number: "A12345678", expect: ErrUnrecognizedFormat},
		{name: "digit prefix", number: "1123456789", expect: ErrUnrecognizedFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := checkTW(tc.number)
			if tc.expect == nil {
				if err != nil {
					t.Errorf("checkTW(%q) = %v, expected nil", tc.number, err)
				}
				return
			}
			if !errors.Is(err, tc.expect) {
				t.Errorf("checkTW(%q) = %v, expected %v", tc.number, err, tc.expect)
			}
		})
	}
}

func TestTWGender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number string
		gender Gender
		ok     bool
	}{
		{name: "male", number: "Q155304682", gender: GenderMale, ok: true},
		{name: "female", number: "A225376624", gender: GenderFemale, ok: true},
		{name: "invalid number", number: "Q155304680", gender: GenderUnknown, ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gender, ok := TWGender(tc.number)
			if gender != tc.gender || ok != tc.ok {
				t.Errorf("TWGender(%q) = %v, %v; expected %v, %v", tc.number, gender, ok, tc.gender, tc.ok)
			}
		})
	}
}

func TestTWRegion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number string
		place  string
		ok     bool
	}{
		{name: "taichung", number: "B142610160", place: "台中市", ok: true},
		{name: "taipei", number: "A123456789", place: "台北市", ok: true},
		{name: "invalid number", number: "Q155304680", place: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			place, ok := TWRegion(tc.number)
			if place != tc.place || ok != tc.ok {
				t.Errorf("TWRegion(%q) = %q, %v; expected %q, %v", tc.number, place, ok, tc.place, tc.ok)
			}
		})
	}
}
