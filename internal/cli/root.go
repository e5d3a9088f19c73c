// ABOUTME: Command-line interface for operating the portal without the HTTP server
// ABOUTME: Root command loads configuration once; subcommands share it through the options struct

package cli

import (
	"fmt"
	"io"

	"opportunities-portal-api/core/interfaces"
	"opportunities-portal-api/infrastructure/logger"
	"opportunities-portal-api/pkg/config"

	"github.com/spf13/cobra"
)

// Version is reported by the version subcommand
const Version = "1.0.0"

// options is the state shared by every subcommand
type options struct {
	cfg   *config.Config
	debug bool
}

// logger writes to the command's stderr so stdout stays machine readable
func (o *options) logger(w io.Writer) interfaces.Logger {
	level := o.cfg.Log.Level
	if o.debug {
		level = "debug"
	}
	return logger.NewLogrusLogger(w, level)
}

// NewRootCommand builds the portalctl command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "portalctl",
		Short:         "Operate the opportunities portal from a terminal",
		Long:          `Build share links, compute login locations and resolve listings using the same configuration as the API server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "portalctl version %s\n", Version)
		},
	})
	root.AddCommand(newShareCommand(opts))
	root.AddCommand(newLoginURLCommand(opts))
	root.AddCommand(newResolveCommand(opts))

	return root
}
