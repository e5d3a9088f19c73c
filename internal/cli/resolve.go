// ABOUTME: resolve subcommand runs one listing through every tier and prints the settled envelope
// ABOUTME: A login redirect raised while resolving is reported on stderr

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"opportunities-portal-api/core/session"
	"opportunities-portal-api/infrastructure/rpc"
	"opportunities-portal-api/internal/app"

	"github.com/spf13/cobra"
)

const (
	resolveNews      = "news"
	resolveOpenCalls = "open-calls"
)

func newResolveCommand(opts *options) *cobra.Command {
	var (
		cookie  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:       "resolve {news|open-calls}",
		Short:     "Resolve a listing through the remote and snapshot tiers",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{resolveNews, resolveOpenCalls},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			a, err := app.New(opts.cfg, opts.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			nav := &session.Recorder{}
			ctx = session.WithNavigator(ctx, nav)
			ctx = session.WithOrigin(ctx, opts.cfg.Server.PublicOrigin)
			if cookie != "" {
				ctx = rpc.WithHeaders(ctx, map[string]string{"Cookie": cookie})
			}

			var envelope interface{}
			switch args[0] {
			case resolveNews:
				envelope = a.Loader.News(ctx)
			case resolveOpenCalls:
				envelope = a.Loader.OpenCalls(ctx)
			}

			if location := nav.Location(); location != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "login required: %s\n", location)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(envelope)
		},
	}

	cmd.Flags().StringVar(&cookie, "cookie", "", "Cookie header forwarded to the backend")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall resolution deadline")

	return cmd
}
