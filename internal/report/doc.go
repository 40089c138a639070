// Package report renders validation and decode results for display.
//
// This package contains writers for different output formats:
//   - SimpleWriter: human-readable text output for terminal display
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for documentation and sharing
//
// The Report struct is the flattened, serializable view of a decoded number.
// Absent fields (an invalid number has no decoded fields) are empty and
// omitted from JSON output.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
