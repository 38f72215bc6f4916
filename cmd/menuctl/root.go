package main

import (
	"os"

	"digital-menu/internal/client"
	"digital-menu/internal/handler/middleware"
	"digital-menu/internal/pkg/config"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	apiURL   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "menuctl",
		Short: "Operate a digital-menu deployment",
		Long: `menuctl manages the database of a digital-menu deployment and
inspects restaurants through the public API.

Database commands (migrate, seed) read the same DB_* variables as the server.
API commands (offers, carousel) talk to --api.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var logCfg config.LogConfig
			if err := envconfig.Process("", &logCfg); err != nil {
				return err
			}
			if opts.logLevel != "" {
				logCfg.Level = opts.logLevel
			}
			middleware.NewLogger(logCfg)
			return nil
		},
	}

	apiDefault := os.Getenv("MENU_API_URL")
	if apiDefault == "" {
		apiDefault = "http://localhost:8080"
	}
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api", apiDefault, "Base URL of the digital-menu API")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to LOG_LEVEL")

	cmd.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newOffersCmd(opts),
		newCarouselCmd(opts),
	)
	return cmd
}

func (o *rootOptions) client() *client.Client {
	return client.New(o.apiURL)
}
