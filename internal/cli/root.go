// Package cli provides the command-line interface for sqlformat.
package cli

import (
	"github.com/spf13/cobra"
)

type buildInfo struct {
	version, commit, date string
}

// NewRootCmd builds the root command and all its subcommands.
func NewRootCmd(info buildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sqlformat",
		Short:         "Format SQL for any of twelve dialects",
		Version:       info.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newDialectsCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// Execute runs the root command with the given build metadata.
func Execute(version, commit, date string) error {
	return NewRootCmd(buildInfo{version: version, commit: commit, date: date}).Execute()
}
