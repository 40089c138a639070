package report

import "io"

// Writer defines the interface for report output.
// Implementations render one or more reports in a specific format.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or buffers with
// the same API.
type Writer interface {
	// Write outputs a single report.
	// Returns the number of bytes written and any error encountered.
	Write(r Report) (int, error)

	// WriteAll outputs a batch of reports as one document.
	WriteAll(rs []Report) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(r Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(r)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteAll outputs the batch to all configured Writers.
func (m *MultiWriter) WriteAll(rs []Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteAll(rs)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
