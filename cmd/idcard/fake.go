package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/idcard/internal/config"
	"github.com/nao1215/idcard/internal/fake"
	"github.com/nao1215/idcard/internal/id"
)

// NewFakeCmd creates the fake command.
func NewFakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fake",
		Short: "Generate fake ID numbers for test fixtures",
		Long: `Fake synthesizes Mainland China ID numbers that pass validation. The
numbers are for test fixtures and demo data; the region code, birth year
range, and gender can be constrained, and defaults may be supplied in the
.idcard configuration file.

Examples:
  # One unconstrained fake number
  idcard fake

  # Ten numbers from Hangzhou prefixes, born 1990-2000, female
  idcard fake --count 10 --region 3301 --min-year 1990 --max-year 2000 --gender female`,
		Args: cobra.NoArgs,
		RunE: runFakeCmd,
	}

	cmd.Flags().StringP("region", "r", "", "Region code or 2-5 digit prefix to draw from")
	cmd.Flags().Int("min-year", 0, "Inclusive lower bound of the birth year")
	cmd.Flags().Int("max-year", 0, "Inclusive upper bound of the birth year")
	cmd.Flags().StringP("gender", "g", "", "Gender of the holder: male or female")
	cmd.Flags().IntP("count", "n", config.DefaultFakeCount, "Number of IDs to generate")

	return cmd
}

// runFakeCmd executes the fake command.
func runFakeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildFakeConfig(cmd)
	if err != nil {
		return err
	}

	gender, err := parseGender(cfg.FakeGender)
	if err != nil {
		return err
	}

	logger := setupLogger(getVerboseFlag(cmd))
	reg, closer := openRegistry(cfg, logger)
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	gen := fake.NewGenerator(reg)
	opts := fake.Options{
		Region:  cfg.FakeRegion,
		MinYear: cfg.FakeMinYear,
		MaxYear: cfg.FakeMaxYear,
		Gender:  gender,
	}
	for i := 0; i < cfg.FakeCount; i++ {
		number, err := gen.RandWithOptions(opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), number)
	}
	return nil
}

// buildFakeConfig creates a Config from cobra command flags overlaid on the
// .idcard file defaults.
func buildFakeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	var err error

	cfg.FakeRegion, err = cmd.Flags().GetString("region")
	if err != nil {
		return nil, err
	}
	cfg.FakeMinYear, err = cmd.Flags().GetInt("min-year")
	if err != nil {
		return nil, err
	}
	cfg.FakeMaxYear, err = cmd.Flags().GetInt("max-year")
	if err != nil {
		return nil, err
	}
	cfg.FakeGender, err = cmd.Flags().GetString("gender")
	if err != nil {
		return nil, err
	}
	cfg.FakeCount, err = cmd.Flags().GetInt("count")
	if err != nil {
		return nil, err
	}
	if cfg.FakeCount <= 0 {
		return nil, config.ErrInvalidCount
	}

	if path := config.FindConfigFile(""); path != "" {
		file, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		cfg.Apply(file)
	}
	return cfg, nil
}

// parseGender converts a flag value to a Gender. Empty means no constraint.
func parseGender(s string) (id.Gender, error) {
	switch s {
	case "":
		return id.GenderUnknown, nil
	case "male", "m":
		return id.GenderMale, nil
	case "female", "f":
		return id.GenderFemale, nil
	default:
		return id.GenderUnknown, fmt.Errorf("unknown gender %q: use male or female", s)
	}
}
