package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/padpatch/internal/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Skip config loading so version works with a broken config file.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			full, _ := cmd.Flags().GetBool("full")
			info := version.Get()
			if full {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), info.Full())
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "padpatch %s\n", info.String())
			return nil
		},
	}
	cmd.Flags().Bool("full", false, "include commit, build date and Go version")
	return cmd
}
