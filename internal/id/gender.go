package id

// Gender represents the gender encoded in an ID number.
//
// Mainland China encodes it in the parity of the 17th digit (odd = male);
// Taiwan encodes it in the second character ('1' = male, '2' = female).
type Gender int

const (
	// GenderUnknown indicates the gender could not be determined.
	GenderUnknown Gender = iota
	// GenderMale indicates a male holder.
	GenderMale
	// GenderFemale indicates a female holder.
	GenderFemale
)

// String returns a human-readable representation of the gender.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unknown"
	}
}
