package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nao1215/idcard/internal/config"
	"github.com/nao1215/idcard/internal/region"
)

// NewRegionCmd creates the region command and its import subcommand.
func NewRegionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "region <code>",
		Short: "Look up an administrative-division code",
		Long: `Region resolves a six-digit Mainland China division code to its place
name. Lookups use the SQLite region database when one has been imported,
falling back to the embedded table.

Examples:
  idcard region 511702
  idcard region import regions.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runRegionCmd,
	}
	cmd.AddCommand(newRegionImportCmd())
	return cmd
}

// runRegionCmd executes the region lookup.
func runRegionCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()
	logger := setupLogger(getVerboseFlag(cmd))
	reg, closer := openRegistry(cfg, logger)
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	code := args[0]
	name, ok := reg.Lookup(code)
	if !ok {
		// Fall back to the coarser province table for two-digit prefixes.
		if len(code) >= 2 {
			if province, found := region.ProvinceName(code[:2]); found && len(code) == 2 {
				fmt.Fprintln(cmd.OutOrStdout(), province)
				return nil
			}
		}
		return fmt.Errorf("unknown region code: %s", code)
	}
	fmt.Fprintln(cmd.OutOrStdout(), name)
	return nil
}

// newRegionImportCmd creates the region import subcommand.
func newRegionImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <yaml-file>",
		Short: "Import a full region table into the SQLite registry",
		Long: `Import loads a YAML map of six-digit codes to place names into the
SQLite region database under the user data directory. Re-importing a newer
table overwrites existing entries.

The YAML file has one entry per code:

  "110101": 北京市东城区
  "110102": 北京市西城区`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()

			data, err := os.ReadFile(args[0]) //nolint:gosec // User-provided table path is intentional
			if err != nil {
				return fmt.Errorf("failed to read region table: %w", err)
			}
			names := make(map[string]string)
			if err := yaml.Unmarshal(data, &names); err != nil {
				return fmt.Errorf("failed to parse region table: %w", err)
			}
			if len(names) == 0 {
				return fmt.Errorf("region table %s is empty", args[0])
			}

			db, err := region.OpenDB(cfg.RegionDBDir, region.DefaultOptions())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := db.Import(cmd.Context(), names); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d regions into %s\n", len(names), db.Path())
			return nil
		},
	}
}
