package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
}

// logger builds the command logger on stderr at the configured level.
func (f *rootFlags) logger(cmd *cobra.Command) (*slog.Logger, error) {
	logger, err := NewLogger(cmd.ErrOrStderr(), f.logLevel)
	if err != nil {
		return nil, exitCodeError(exitUsage, err)
	}
	return logger, nil
}

// NewRootCmd builds the robotsctl root command tree.
func NewRootCmd(version string) *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:          "robotsctl",
		Short:        "Generate robots.txt for statically built sites",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return exitCodeError(exitUsage, err)
	})
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newMetadataCmd(flags))
	cmd.AddCommand(newVersionCmd(version))

	return cmd
}
