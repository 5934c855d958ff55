package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/padpatch/internal/output"
	"github.com/jmylchreest/padpatch/pkg/patch/safearea"
)

func newStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the transforms of each pipeline in application order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formatName, _ := cmd.Flags().GetString("format")
			format, err := output.ParseFormat(formatName)
			if err != nil {
				return err
			}

			steps := safearea.Steps()
			out := cmd.OutOrStdout()

			if format.Structured() {
				w, err := output.NewWriter(out, format)
				if err != nil {
					return err
				}
				for _, s := range steps {
					if err := w.Write(s); err != nil {
						return err
					}
				}
				return w.Close()
			}

			_, _ = fmt.Fprintf(out, "%-8s %-18s %s\n", "Pipeline", "Step", "Description")
			_, _ = fmt.Fprintf(out, "%-8s %-18s %s\n", "--------", "----", "-----------")
			for _, s := range steps {
				_, _ = fmt.Fprintf(out, "%-8s %-18s %s\n", s.Pipeline, s.Name, s.Description)
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "text", "output format: text, json, jsonl, yaml")
	return cmd
}
