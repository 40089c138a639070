package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/idcard/internal/config"
	"github.com/nao1215/idcard/internal/log"
	"github.com/nao1215/idcard/internal/region"
	"github.com/nao1215/idcard/internal/report"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
// ID numbers in log output are masked; see the log package.
func setupLogger(verbose bool) *slog.Logger {
	return log.NewMaskedLogger(os.Stderr, verbose)
}

// openRegistry returns the region registry to decode against: the SQLite
// database when one exists under the configured directory, otherwise the
// embedded table. The returned closer is non-nil only for the database.
func openRegistry(cfg *config.Config, logger *slog.Logger) (region.Registry, io.Closer) {
	db, err := region.OpenDB(cfg.RegionDBDir, region.Options{CreateIfNotExists: false})
	if err != nil {
		logger.Debug("region database unavailable, using embedded table",
			"dir", cfg.RegionDBDir,
			"reason", err,
		)
		return region.Embedded(), nil
	}
	logger.Debug("region database opened", "path", db.Path(), "entries", db.Len())
	return db, db
}

// openOutput returns the report destination: cfg.ReportFile when set
// (creating parent directories), stdout otherwise. The returned closer is
// non-nil only for files.
func openOutput(cfg *config.Config, stdout io.Writer) (io.Writer, io.Closer, error) {
	if cfg.ReportFile == "" {
		return stdout, nil, nil
	}
	if dir := filepath.Dir(cfg.ReportFile); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	f, err := os.Create(cfg.ReportFile) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return f, f, nil
}

// newWriter builds the report writer for the configured output format.
func newWriter(cfg *config.Config, output io.Writer, verbose bool) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(verbose))
	}
}
