package report

import (
	"strconv"

	"github.com/nao1215/idcard/internal/id"
	"github.com/nao1215/idcard/internal/region"
)

// Report is the flattened view of one validated number.
// Decoded fields are populated only for valid Mainland China numbers; for a
// valid Taiwan number only Gender and Region are set. Absent fields stay
// empty and are omitted from JSON.
type Report struct {
	// Number is the canonical (normalized, possibly upgraded) number.
	Number string `json:"number"`

	// Jurisdiction names the scheme the number was validated against.
	Jurisdiction string `json:"jurisdiction"`

	// Valid reports whether the number passed validation.
	Valid bool `json:"valid"`

	// Error is the validation failure, empty when Valid is true.
	Error string `json:"error,omitempty"`

	// Decoded fields, CN only (Gender and Region also for TW).
	BirthDate     string `json:"birth_date,omitempty"`
	Age           string `json:"age,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Province      string `json:"province,omitempty"`
	Region        string `json:"region,omitempty"`
	RegionCode    string `json:"region_code,omitempty"`
	ChineseZodiac string `json:"chinese_zodiac,omitempty"`
	ChineseEra    string `json:"chinese_era,omitempty"`
	Constellation string `json:"constellation,omitempty"`
}

// FromNumber validates and decodes a raw string into a Report, looking
// region codes up in the supplied registry. A nil registry falls back to
// the embedded region table.
func FromNumber(number string, reg region.Registry) Report {
	if reg == nil {
		reg = region.Embedded()
	}

	jurisdiction := id.Detect(number)
	r := Report{
		Number:       id.Normalize(number),
		Jurisdiction: jurisdiction.String(),
	}

	err := id.Check(number)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Valid = true

	switch jurisdiction {
	case id.JurisdictionCN15, id.JurisdictionCN18:
		r.fillCN(id.NewIdentity(number), reg)
	case id.JurisdictionTW:
		if gender, ok := id.TWGender(number); ok {
			r.Gender = gender.String()
		}
		if place, ok := id.TWRegion(number); ok {
			r.Region = place
		}
	}
	return r
}

// fillCN populates the decoded Mainland China fields.
func (r *Report) fillCN(identity id.Identity, reg region.Registry) {
	r.Number = identity.Number()
	if birth, ok := identity.BirthDate(); ok {
		r.BirthDate = birth
	}
	if age, ok := identity.Age(); ok {
		r.Age = strconv.Itoa(age)
	}
	if gender, ok := identity.Gender(); ok {
		r.Gender = gender.String()
	}
	if province, ok := identity.Province(); ok {
		r.Province = province
	}
	if code, ok := identity.RegionCode(); ok {
		r.RegionCode = code
	}
	if name, ok := identity.RegionIn(reg); ok {
		r.Region = name
	}
	if zodiac, ok := identity.ChineseZodiac(); ok {
		r.ChineseZodiac = zodiac
	}
	if era, ok := identity.ChineseEra(); ok {
		r.ChineseEra = era
	}
	if sign, ok := identity.Constellation(); ok {
		r.Constellation = sign
	}
}
