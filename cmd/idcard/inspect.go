package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/idcard/internal/config"
	"github.com/nao1215/idcard/internal/report"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <number>",
		Short: "Decode an ID number into its fields",
		Long: `Inspect validates a number and prints everything that can be decoded
from it. For Mainland China numbers that is the birth date, age, gender,
province, region, Chinese zodiac, Chinese era, and constellation; a
15-digit number is shown in its upgraded 18-digit form. Taiwan numbers
decode gender and place of registration; Hong Kong and Macau numbers
report validity only.

Examples:
  idcard inspect 511702800222130
  idcard inspect --json 230127197908177456`,
		Args: cobra.ExactArgs(1),
		RunE: runInspectCmd,
	}

	cmd.Flags().BoolP("json", "j", false, "Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false, "Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "", "Write report to specified file path")

	return cmd
}

// runInspectCmd executes the inspect command.
func runInspectCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()
	cfg.Numbers = args
	var err error
	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd))
	reg, closer := openRegistry(cfg, logger)
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	result := report.FromNumber(args[0], reg)

	output, outCloser, err := openOutput(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if outCloser != nil {
		defer func() { _ = outCloser.Close() }()
	}

	writer := newWriter(cfg, output, true)
	if _, err := writer.Write(result); err != nil {
		return err
	}
	if !result.Valid {
		return ErrInvalidNumbers
	}
	return nil
}
