// Package commands implements the CLI commands for padpatch.
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/padpatch/internal/config"
	"github.com/jmylchreest/padpatch/internal/logger"
	"github.com/jmylchreest/padpatch/internal/version"
)

// app carries the state shared by one command tree.
type app struct {
	v   *viper.Viper
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "padpatch",
		Short: "Add safe-area bottom padding to React Native screens",
		Long: `Padpatch rewrites Expo router screen files so scrollable content clears
the device's bottom safe area.

The patch command imports useSafeAreaInsets and spacing, declares the
insets and bottomPad variables in each screen's default export, and merges
{ paddingBottom: bottomPad } into contentContainerStyle. The clean command
collapses the duplicate padding objects that repeated patch runs produce.

Examples:
  # Patch the default screen directories below the current directory
  padpatch patch

  # Preview changes as a unified diff without writing
  padpatch patch --root ./mobile --dry-run --diff

  # Remove duplicate padding objects everywhere under app/
  padpatch clean

  # Machine-readable report
  padpatch patch --format json`,
		Version:           version.Get().String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.padpatch.yaml or ./.padpatch.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "suppress log output except errors")
	flags.Bool("log-json", false, "write logs to stderr as JSON")
	flags.String("root", "", "application root directory (default: current directory)")

	_ = a.v.BindPFlag("config", flags.Lookup("config"))
	_ = a.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = a.v.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = a.v.BindPFlag("log_json", flags.Lookup("log-json"))
	_ = a.v.BindPFlag("root", flags.Lookup("root"))

	cmd.AddCommand(
		newPatchCmd(a),
		newCleanCmd(a),
		newStepsCmd(),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup initialises logging and loads the configuration before any
// subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logger.Init(logger.Options{
		Debug:  a.v.GetBool("debug"),
		Quiet:  a.v.GetBool("quiet"),
		JSON:   a.v.GetBool("log_json"),
		Output: cmd.ErrOrStderr(),
	})

	if err := a.readConfig(); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	logger.Debug("config loaded", "file", a.v.ConfigFileUsed(), "root", cfg.Root)
	return nil
}

// readConfig reads the config file. A missing default file is not an error;
// a missing file named with --config is.
func (a *app) readConfig() error {
	cfgFile := a.v.GetString("config")
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigName(".padpatch")
		a.v.SetConfigType("yaml")
	}

	config.SetDefaults(a.v)

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		printError(cmd.ErrOrStderr(), err.Error())
		return err
	}
	return nil
}
