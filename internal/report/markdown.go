package report

import (
	"io"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, e.g. pasting fake
// fixture inventories into a pull request.
//
// Design decision: We use the nao1215/markdown library for fluent,
// type-safe markdown generation with GitHub-flavored tables.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs a single report as a property table.
func (w *MarkdownWriter) Write(r Report) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("ID Number Report")
	md.PlainText("")

	rows := [][]string{
		{"Number", "`" + r.Number + "`"},
		{"Jurisdiction", r.Jurisdiction},
		{"Valid", validText(r)},
	}
	rows = appendRow(rows, "Birth date", r.BirthDate)
	rows = appendRow(rows, "Age", r.Age)
	rows = appendRow(rows, "Gender", r.Gender)
	rows = appendRow(rows, "Province", r.Province)
	rows = appendRow(rows, "Region code", r.RegionCode)
	rows = appendRow(rows, "Region", r.Region)
	rows = appendRow(rows, "Chinese zodiac", r.ChineseZodiac)
	rows = appendRow(rows, "Chinese era", r.ChineseEra)
	rows = appendRow(rows, "Constellation", r.Constellation)

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	return len(md.String()), md.Build()
}

// WriteAll outputs the batch as one summary table.
func (w *MarkdownWriter) WriteAll(rs []Report) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("ID Number Validation Report")
	md.PlainText("")

	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{"`" + r.Number + "`", r.Jurisdiction, validText(r)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Number", "Jurisdiction", "Verdict"},
		Rows:   rows,
	})
	return len(md.String()), md.Build()
}

// appendRow appends a property row, skipping absent values.
func appendRow(rows [][]string, label, value string) [][]string {
	if value == "" {
		return rows
	}
	return append(rows, []string{label, value})
}
