package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sqlfmt-go/sqlformat"
)

func newDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported SQL dialects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range sqlformat.Dialects {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
}
