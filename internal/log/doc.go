// Package log provides logging with automatic masking of ID numbers,
// built on top of the standard slog package.
//
// National identity-card numbers are personal data: a birth date, region,
// and gender are recoverable from the digits. The MaskHandler redacts the
// birth-date field of any attribute value that looks like a CN ID number
// before the record reaches the underlying handler, so debug logs of batch
// runs can be shared without leaking holder details. Synthetic numbers from
// the fake generator are indistinguishable from real ones, so they are
// masked too.
//
// Usage:
//
//	logger := log.NewMaskedLogger(os.Stderr, true) // verbose=true
//	logger.Info("validated", "number", "110105199001011234")
//	// logs number=110105********1234
//	slog.SetDefault(logger)
package log
