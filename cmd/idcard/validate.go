package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/idcard/internal/config"
	"github.com/nao1215/idcard/internal/pipeline"
)

// ErrInvalidNumbers is returned when at least one validated number is
// invalid, so scripts can rely on the exit code.
var ErrInvalidNumbers = errors.New("one or more numbers are invalid")

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [number]...",
		Short: "Validate ID numbers of any supported jurisdiction",
		Long: `Validate checks each number against the jurisdiction its shape selects:
Mainland China 15/18-digit, Hong Kong, Macau, or Taiwan.

Examples:
  # Validate a single number
  idcard validate 230127197908177456

  # Validate several numbers at once
  idcard validate A123456789 "G123456(A)" 511702800222130

  # Validate a file with one number per line
  idcard validate --list numbers.txt

  # Output a JSON report to a file
  idcard validate --json --output report.json --list numbers.txt

The exit code is 1 when at least one number is invalid.`,
		Args: cobra.ArbitraryArgs,
		RunE: runValidateCmd,
	}

	cmd.Flags().StringP("list", "l", "", "File with one number per line")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize, "Number of concurrent validations in list mode")
	cmd.Flags().BoolP("json", "j", false, "Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false, "Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "", "Write report to specified file path")

	return cmd
}

// runValidateCmd executes the validate command.
func runValidateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildValidateConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)

	// Cancel batch processing on interrupt
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	numbers := cfg.Numbers
	if cfg.ListFile != "" {
		fromFile, err := readNumberList(cfg.ListFile)
		if err != nil {
			return err
		}
		numbers = append(numbers, fromFile...)
	}

	reg, closer := openRegistry(cfg, logger)
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	bv := pipeline.NewBatchValidator(reg,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)
	results, err := bv.Validate(ctx, numbers)
	if err != nil {
		return err
	}

	output, outCloser, err := openOutput(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if outCloser != nil {
		defer func() { _ = outCloser.Close() }()
	}

	writer := newWriter(cfg, output, verbose)
	if len(results) == 1 && !verbose {
		if _, err := writer.Write(results[0]); err != nil {
			return err
		}
	} else {
		if _, err := writer.WriteAll(results); err != nil {
			return err
		}
	}

	for _, r := range results {
		if !r.Valid {
			return ErrInvalidNumbers
		}
	}
	return nil
}

// buildValidateConfig creates a Config from cobra command flags.
func buildValidateConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	var err error

	cfg.ListFile, err = cmd.Flags().GetString("list")
	if err != nil {
		return nil, err
	}
	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}
	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	if path := config.FindConfigFile(""); path != "" {
		file, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		cfg.Apply(file)
	}

	cfg.Numbers = args
	return cfg, nil
}

// readNumberList reads one number per line, skipping blank lines and
// comment lines starting with '#'.
func readNumberList(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open number list: %w", err)
	}
	defer func() { _ = f.Close() }()

	var numbers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		numbers = append(numbers, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read number list: %w", err)
	}
	return numbers, nil
}
