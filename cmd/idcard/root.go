// Package main provides the entry point for the idcard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for idcard.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "idcard",
		Short: "Validate, decode, and synthesize national ID numbers",
		Long: `idcard validates, decodes, upgrades, and synthesizes national
identity-card numbers: Mainland China 15/18-digit, Hong Kong, Macau, and
Taiwan formats.

Jurisdiction is detected from the shape of each number. Mainland China
numbers additionally decode into birth date, region, gender, and age.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewUpgradeCmd())
	cmd.AddCommand(NewFakeCmd())
	cmd.AddCommand(NewRegionCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
