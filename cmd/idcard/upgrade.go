package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/idcard/internal/id"
)

// NewUpgradeCmd creates the upgrade command.
func NewUpgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <15-digit-number>",
		Short: "Upgrade a legacy 15-digit number to the 18-digit form",
		Long: `Upgrade inserts the "19" century prefix into a legacy 15-digit Mainland
China number and recomputes the check digit, producing the modern 18-digit
form. The transform is one-way: the legacy format carries no century digit,
so only 20th-century birth dates can be represented.

Example:
  idcard upgrade 632123820927051
  632123198209270518`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			upgraded, err := id.Upgrade(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), upgraded)
			return nil
		},
	}
}
