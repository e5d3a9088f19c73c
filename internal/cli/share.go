// ABOUTME: share subcommand prints the outbound link for a news record
// ABOUTME: Accepts the target aliases the share buttons understand (x, mail)

package cli

import (
	"encoding/json"

	"opportunities-portal-api/core/domain"
	"opportunities-portal-api/core/share"

	"github.com/spf13/cobra"
)

func newShareCommand(_ *options) *cobra.Command {
	var (
		target string
		item   domain.NewsItem
	)

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Build a share link for a news record",
		Example: `  portalctl share --target linkedin --link https://example.org/news/1
  portalctl share --target email --title "Nuovo bando" --entity Regione --link https://example.org/news/1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseShareTarget(target)
			if err != nil {
				return err
			}

			link, err := share.BuildLink(t, item)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(link)
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "linkedin, twitter (x), facebook or email (mail)")
	cmd.Flags().StringVar(&item.Title, "title", "", "news title")
	cmd.Flags().StringVar(&item.Entity, "entity", "", "publishing entity")
	cmd.Flags().StringVar(&item.Category, "category", "", "category label")
	cmd.Flags().StringVar(&item.Description, "description", "", "summary text")
	cmd.Flags().StringVar(&item.Link, "link", "", "absolute URL of the news article")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("link")

	return cmd
}
