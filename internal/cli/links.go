package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/sitelinks"
)

func newLinksCommand(profile *string) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "links",
		Short: "Check the site links asset and list its entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				cfg, err := loadConfig(*profile)
				if err != nil {
					return err
				}

				path = cfg.SiteLinks.Path
			}

			return sitelinks.Report(cmd.OutOrStdout(), path)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "asset to check (default: sitelinks.path)")

	return cmd
}
