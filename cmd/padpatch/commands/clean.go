package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/padpatch/internal/config"
	"github.com/jmylchreest/padpatch/pkg/patch"
	"github.com/jmylchreest/padpatch/pkg/patch/safearea"
)

func newCleanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Collapse duplicate padding objects in content container styles",
		Long: `Rewrite every contentContainerStyle list that holds more than one
{ paddingBottom: bottomPad } object so it holds exactly one.

Examples:
  padpatch clean
  padpatch clean --dry-run --diff`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPipeline(cmd, pipeline{
				name:  "clean",
				verb:  "Cleaned",
				total: "Total cleaned",
				scope: func(c *config.Config) config.Scope { return c.Clean },
				build: func(c *config.Config) (patch.Transform, error) {
					return safearea.NewCleaner(c.Profile)
				},
			})
		},
	}
	addPipelineFlags(cmd)
	return cmd
}
