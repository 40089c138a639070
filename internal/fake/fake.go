package fake

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/nao1215/idcard/internal/id"
	"github.com/nao1215/idcard/internal/region"
)

// New synthesizes an 18-digit number from explicit birth fields.
// The region code must be exactly six characters and the year, month, and
// day must form a real calendar date. The three-digit sequence number is
// sampled uniformly and its parity forced to match the gender by
// incrementing on mismatch (odd = male, even = female).
func New(regionCode string, year, month, day int, gender id.Gender) (string, error) {
	if len(regionCode) != 6 {
		return "", fmt.Errorf("%w: %q", ErrRegionLength, regionCode)
	}
	if year < 1000 || year > 9999 {
		return "", fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidBirthDate, year, month, day)
	}
	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birth.Year() != year || int(birth.Month()) != month || birth.Day() != day {
		return "", fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidBirthDate, year, month, day)
	}

	seq := rand.IntN(999)
	if gender == id.GenderMale && seq%2 == 0 {
		seq++
	}
	if gender == id.GenderFemale && seq%2 == 1 {
		seq++
	}

	significant := fmt.Sprintf("%s%04d%02d%02d%03d", regionCode, year, month, day, seq)
	check, err := id.CheckSymbolFor(significant)
	if err != nil {
		return "", fmt.Errorf("cannot compute check symbol: %w", err)
	}
	return significant + string(check), nil
}

// Generator synthesizes random ID numbers constrained by Options.
// Region codes are drawn from the injected registry.
type Generator struct {
	reg region.Registry

	// now is stubbed in tests to pin the current year.
	now func() time.Time
}

// NewGenerator creates a Generator drawing region codes from reg.
// A nil registry falls back to the embedded region table.
func NewGenerator(reg region.Registry) *Generator {
	if reg == nil {
		reg = region.Embedded()
	}
	return &Generator{reg: reg, now: time.Now}
}

// Rand generates a random fake ID number with no constraints: any
// registered region, a birth year within the last 100 years, either gender.
func (g *Generator) Rand() (string, error) {
	return g.RandWithOptions(Options{})
}

// RandWithOptions generates a random fake ID number honoring opts.
//
// Constraint validation precedes all sampling: a max or min year in the
// future and a max year below the min year fail fast, as does a region
// constraint matching no registered code. The age is sampled uniformly from
// the year range, a day offset is sampled into the resulting birth year, and
// the assembled number always satisfies Validate.
func (g *Generator) RandWithOptions(opts Options) (string, error) {
	currentYear := g.now().Year()

	if opts.MaxYear != 0 && opts.MaxYear > currentYear {
		return "", fmt.Errorf("%w (current year is %d)", ErrMaxYearInFuture, currentYear)
	}
	if opts.MinYear != 0 && opts.MinYear > currentYear {
		return "", fmt.Errorf("%w (current year is %d)", ErrMinYearInFuture, currentYear)
	}
	if opts.MinYear != 0 && opts.MaxYear != 0 && opts.MaxYear < opts.MinYear {
		return "", fmt.Errorf("%w: min %d, max %d", ErrYearOrder, opts.MinYear, opts.MaxYear)
	}

	var regionCode string
	var err error
	if opts.Region != "" {
		regionCode, err = g.reg.RandCodeWithPrefix(opts.Region)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidRegion, opts.Region)
		}
	} else {
		regionCode, err = g.reg.RandCode()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidRegion, err)
		}
	}

	minAge := 0
	if opts.MaxYear != 0 {
		minAge = currentYear - opts.MaxYear
	}
	maxAge := 100
	if opts.MinYear != 0 {
		maxAge = currentYear - opts.MinYear
	}

	age := minAge
	if maxAge > minAge {
		age = minAge + rand.IntN(maxAge-minAge+1)
	}

	// Sample a day offset into the birth year. Offsets stop at 365 so the
	// date never spills into the next year, leap or not.
	birthYear := currentYear - age
	offset := rand.IntN(365)
	birth := time.Date(birthYear, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)

	gender := opts.Gender
	if gender == id.GenderUnknown {
		if rand.IntN(2) == 0 {
			gender = id.GenderMale
		} else {
			gender = id.GenderFemale
		}
	}

	return New(regionCode, birth.Year(), int(birth.Month()), birth.Day(), gender)
}
