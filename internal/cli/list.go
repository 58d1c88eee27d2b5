package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/myunit/internal/demo"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List test groups in run order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, g := range demo.Groups() {
				fmt.Fprintln(cmd.OutOrStdout(), g.String())
			}
			return nil
		},
	}
}
