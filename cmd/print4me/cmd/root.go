// Package cmd implements the print4me command line.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "print4me",
	Short: "Print4me print-order server and tools",
	Long: `print4me accepts print orders from the mobile app, counts pages,
prices the order and relays it to the shop by email.

Configuration is read from PRINT4ME_* environment variables.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
