// Package cli defines the homepage command line: the HTTP gateway and its
// maintenance subcommands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/config"
)

// defaultProfile is used when neither --profile nor APP_ENVIRONMENT is set.
const defaultProfile = "local"

// New builds the root command. Running it without a subcommand serves HTTP.
func New(build handlers.BuildInfo) *cobra.Command {
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = defaultProfile
	}

	cmd := &cobra.Command{
		Use:           "homepage",
		Short:         "Data gateway behind the personal homepage",
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), profile, build)
		},
	}

	cmd.PersistentFlags().StringVarP(&profile, "profile", "p", profile,
		"configuration profile, loads configs/<profile>.yaml")

	cmd.AddCommand(
		newServeCommand(&profile, build),
		newLinksCommand(&profile),
		newConfigCommand(&profile),
	)

	return cmd
}

// loadConfig loads and validates configuration for a profile.
func loadConfig(profile string) (*config.Config, error) {
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
