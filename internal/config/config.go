package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultBatchSize of 10 concurrent validations keeps list processing
	// fast without spawning a goroutine per line of a large input file all
	// at once.
	DefaultBatchSize = 10

	// DefaultFakeCount is the number of fake IDs generated when --count is
	// not given.
	DefaultFakeCount = 1

	// AppName is the application name used for XDG directory paths.
	AppName = "idcard"
)

// Config holds all configuration options for the idcard CLI.
// This struct is populated from CLI flags and the optional .idcard file and
// passed through the application via dependency injection.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// Numbers is the list of ID numbers to validate or inspect.
	Numbers []string

	// ListFile is a path to a file with one number per line, used by the
	// batch mode of the validate command.
	ListFile string

	// BatchSize is the number of concurrent validations in batch mode.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// RegionDBDir is the directory holding the SQLite region database.
	// When the database exists, region lookups use it instead of the
	// embedded table. Defaults to the XDG data directory.
	RegionDBDir string

	// FakeRegion, FakeMinYear, FakeMaxYear, FakeGender are the default
	// constraints for the fake command, typically set from the .idcard
	// file and overridden by flags.
	FakeRegion  string
	FakeMinYear int
	FakeMaxYear int
	FakeGender  string

	// FakeCount is the number of fake IDs to generate.
	FakeCount int
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		BatchSize:   DefaultBatchSize,
		FakeCount:   DefaultFakeCount,
		RegionDBDir: XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for idcard.
// On Linux: ~/.local/share/idcard
// On macOS: ~/Library/Application Support/idcard
// On Windows: %LOCALAPPDATA%\idcard
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for idcard.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first error found; fixing one error often makes others
// irrelevant.
func (c *Config) Validate() error {
	if len(c.Numbers) == 0 && c.ListFile == "" {
		return ErrNoNumber
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.FakeCount <= 0 {
		return ErrInvalidCount
	}
	return nil
}
