package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/padpatch/internal/output"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging defaults, the config file,
PADPATCH_* environment variables and flags. The YAML output is a valid
.padpatch.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formatName, _ := cmd.Flags().GetString("format")
			format, err := output.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if !format.Structured() {
				format = output.FormatYAML
			}

			w, err := output.NewWriter(cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}
			if err := w.Write(a.cfg); err != nil {
				return err
			}
			return w.Close()
		},
	}
	cmd.Flags().StringP("format", "f", "yaml", "output format: yaml, json")
	return cmd
}
