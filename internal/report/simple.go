package report

import (
	"fmt"
	"io"
	"strings"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display: one summary line per number
// in batch mode, an aligned field listing for a single number.
//
// Design decision: plain ASCII formatting rather than ANSI colors because
// it works in all terminals and pipes cleanly to files and other tools.
type SimpleWriter struct {
	baseWriter

	// verbose enables the decoded field listing even in batch mode.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables the full field listing for every report.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs a single report with the full field listing.
func (w *SimpleWriter) Write(r Report) (int, error) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-16s %s\n", "Number:", r.Number))
	b.WriteString(fmt.Sprintf("%-16s %s\n", "Jurisdiction:", r.Jurisdiction))
	b.WriteString(fmt.Sprintf("%-16s %s\n", "Valid:", validText(r)))
	writeField(&b, "Birth date:", r.BirthDate)
	writeField(&b, "Age:", r.Age)
	writeField(&b, "Gender:", r.Gender)
	writeField(&b, "Province:", r.Province)
	writeField(&b, "Region code:", r.RegionCode)
	writeField(&b, "Region:", r.Region)
	writeField(&b, "Chinese zodiac:", r.ChineseZodiac)
	writeField(&b, "Chinese era:", r.ChineseEra)
	writeField(&b, "Constellation:", r.Constellation)
	return io.WriteString(w.output, b.String())
}

// WriteAll outputs one summary line per report, or the full listing per
// report when verbose is enabled.
func (w *SimpleWriter) WriteAll(rs []Report) (int, error) {
	var total int
	for i, r := range rs {
		if w.verbose {
			if i > 0 {
				n, err := io.WriteString(w.output, "\n")
				total += n
				if err != nil {
					return total, err
				}
			}
			n, err := w.Write(r)
			total += n
			if err != nil {
				return total, err
			}
			continue
		}
		n, err := fmt.Fprintf(w.output, "%-20s %-8s %s\n", r.Number, r.Jurisdiction, validText(r))
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// writeField appends an aligned "label value" line, skipping absent values.
func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(fmt.Sprintf("%-16s %s\n", label, value))
}

// validText renders the verdict, including the failure reason when present.
func validText(r Report) string {
	if r.Valid {
		return "valid"
	}
	if r.Error != "" {
		return "invalid (" + r.Error + ")"
	}
	return "invalid"
}
