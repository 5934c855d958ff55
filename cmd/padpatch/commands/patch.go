package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/padpatch/internal/config"
	"github.com/jmylchreest/padpatch/pkg/patch"
	"github.com/jmylchreest/padpatch/pkg/patch/safearea"
)

func newPatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Add safe-area bottom padding to screen files",
		Long: `Apply the patch pipeline to every matching file under the configured
screen directories:

  1. import useSafeAreaInsets after the react-native import
  2. import spacing from the design system
  3. declare insets and bottomPad in the default export
  4. merge { paddingBottom: bottomPad } into contentContainerStyle

Files are rewritten only when at least one step changed them. Running patch
twice adds a second padding object to list styles; run clean afterwards.

Examples:
  padpatch patch
  padpatch patch --dir "app/(owner)" --dry-run --diff
  padpatch patch --format jsonl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPipeline(cmd, pipeline{
				name:  "patch",
				verb:  "Patched",
				total: "Total patched files",
				scope: func(c *config.Config) config.Scope { return c.Patch },
				build: func(c *config.Config) (patch.Transform, error) {
					return safearea.NewPatcher(c.Profile)
				},
			})
		},
	}
	addPipelineFlags(cmd)
	return cmd
}
