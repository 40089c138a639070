package fake

import "github.com/nao1215/idcard/internal/id"

// Options configures how a fake ID number is generated.
// All fields are independently optional; the zero value means "no
// constraint". Options are validated at generation time, not at
// construction time.
type Options struct {
	// Region constrains the division code: either an exact six-digit code or
	// a 2-5 digit prefix. The code is drawn at random from the registry
	// entries matching the prefix. Empty means any registered code.
	Region string

	// MinYear is the inclusive lower bound of the birth year.
	// Zero means current year minus 100.
	MinYear int

	// MaxYear is the inclusive upper bound of the birth year.
	// Zero means the current year.
	MaxYear int

	// Gender forces the parity of the sequence number.
	// GenderUnknown means a random gender.
	Gender id.Gender
}
