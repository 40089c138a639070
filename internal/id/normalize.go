package id

import (
	"strings"

	"golang.org/x/text/width"
)

// Normalize folds full-width characters to their ASCII forms and trims
// surrounding whitespace. ID numbers copied out of Chinese documents often
// arrive with full-width digits (１２３) or a full-width Ｘ; folding them
// first keeps validation total over real-world input.
//
// Case is preserved: the Hong Kong pattern is case-sensitive and must see
// the input before any uppercasing.
func Normalize(s string) string {
	return strings.TrimSpace(width.Narrow.String(s))
}

// normalizeUpper is the canonical form used by the CN, MO, and TW paths:
// folded, trimmed, and uppercased.
func normalizeUpper(s string) string {
	return strings.ToUpper(Normalize(s))
}
