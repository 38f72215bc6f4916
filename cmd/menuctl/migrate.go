package main

import (
	"fmt"
	"log/slog"

	"digital-menu/internal/pkg/config"
	"digital-menu/internal/pkg/errs"
	"digital-menu/migrations"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var (
		atlasBin string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations with atlas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, dsn, cleanup, err := atlasClient(atlasBin)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := client.MigrateApply(cmd.Context(), &atlasexec.MigrateApplyParams{
				URL:    dsn,
				DirURL: "file://migrations",
				DryRun: dryRun,
			})
			if err != nil {
				return errs.Wrap(err, "failed to apply migrations")
			}
			for _, f := range res.Applied {
				slog.Info("migration applied", "file", f.Name, "dry_run", dryRun)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema at %s (%d applied)\n", res.Target, len(res.Applied))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&atlasBin, "atlas", "atlas", "Path to the atlas binary")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the statements without executing them")

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, dsn, cleanup, err := atlasClient(atlasBin)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := client.MigrateStatus(cmd.Context(), &atlasexec.MigrateStatusParams{URL: dsn, DirURL: "file://migrations"})
			if err != nil {
				return errs.Wrap(err, "failed to read migration status")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: current %q, %d pending\n", res.Status, res.Current, len(res.Pending))
			for _, f := range res.Pending {
				fmt.Fprintf(cmd.OutOrStdout(), "  pending %s\n", f.Name)
			}
			return nil
		},
	})
	return cmd
}

// atlasClient stages the embedded migrations in a temporary working directory.
func atlasClient(atlasBin string) (*atlasexec.Client, string, func(), error) {
	cfg, err := config.LoadToolConfig()
	if err != nil {
		return nil, "", nil, err
	}

	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(migrations.FS))
	if err != nil {
		return nil, "", nil, errs.Wrap(err, "failed to stage migrations")
	}
	cleanup := func() {
		if err := wd.Close(); err != nil {
			slog.Warn("failed to remove atlas working directory", "error", err.Error())
		}
	}

	client, err := atlasexec.NewClient(wd.Path(), atlasBin)
	if err != nil {
		cleanup()
		return nil, "", nil, errs.Wrap(err, "failed to start atlas")
	}
	return client, cfg.DB.BuildDSN(), cleanup, nil
}
