package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(info buildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version info",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Version:", info.version)
			fmt.Fprintln(cmd.OutOrStdout(), "Commit:", info.commit)
			fmt.Fprintln(cmd.OutOrStdout(), "Date:", info.date)
			return nil
		},
	}
}
