// ABOUTME: login-url subcommand prints the login location for an origin

package cli

import (
	"fmt"

	"opportunities-portal-api/core/session"

	"github.com/spf13/cobra"
)

func newLoginURLCommand(opts *options) *cobra.Command {
	var origin, portalURL, appID string

	cmd := &cobra.Command{
		Use:   "login-url",
		Short: "Print the login location the portal redirects unauthorized visitors to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if origin == "" {
				origin = opts.cfg.Server.PublicOrigin
			}
			if portalURL == "" {
				portalURL = opts.cfg.Auth.PortalURL
			}
			if appID == "" {
				appID = opts.cfg.Auth.AppID
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), session.LoginURL(origin, portalURL, appID))
			return err
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "", "site origin (default PUBLIC_ORIGIN)")
	cmd.Flags().StringVar(&portalURL, "portal-url", "", "login portal base URL (default OAUTH_PORTAL_URL)")
	cmd.Flags().StringVar(&appID, "app-id", "", "application id (default APP_ID)")

	return cmd
}
