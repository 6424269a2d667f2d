package cli

import (
	"fmt"

	"github.com/evo-tools/fieldstrip/internal/branding"
	"github.com/evo-tools/fieldstrip/internal/config"
	"github.com/evo-tools/fieldstrip/internal/logging"
	"github.com/evo-tools/fieldstrip/internal/rewrite"
	"github.com/evo-tools/fieldstrip/internal/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <dir>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` rewrites every file directly inside <dir> in place.
On each line, fragments starting at "body" or "population" are cut down to
their last two characters until none remain. Subdirectories are not visited;
an entry that is itself a directory stops the run with an error.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		l, err := logging.New(cmd.ErrOrStderr(), config.LogLevel())
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runStrip,
}

func init() {
	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
}

func runStrip(cmd *cobra.Command, args []string) error {
	_, err := rewrite.New(afero.NewOsFs(), logger).Dir(args[0])
	return err
}

// Execute runs the root command with build info injected via ldflags.
func Execute(v, commit, date string) error {
	rootCmd.Version = version.String(v, commit, date)
	return rootCmd.Execute()
}
