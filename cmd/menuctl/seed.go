package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"digital-menu/internal/infra/db"
	"digital-menu/internal/infra/uow"
	"digital-menu/internal/pkg/clock"
	"digital-menu/internal/pkg/config"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/seed"
	"digital-menu/internal/usecase/shared"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const defaultSeedFile = "seed/bella-vista.yaml"

func newSeedCmd() *cobra.Command {
	var (
		strict      bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "seed [file.yaml ...]",
		Short: "Load demo restaurants from YAML seed files",
		Long: `Each file is validated in full and written in its own transaction.
A restaurant whose slug already exists is skipped unless --strict is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{defaultSeedFile}
			}

			cfg, err := config.LoadToolConfig()
			if err != nil {
				return err
			}
			pool, cleanup, err := db.Connect(cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			results, err := seedFiles(cmd.Context(), uow.NewPostgresUoW(pool), clock.NewRealClock(), args, strict, concurrency)
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d categories, %d items, %d offers\n", r.Slug, r.Categories, r.Items, r.Offers)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when a restaurant already exists")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Files seeded in parallel")
	return cmd
}

func seedFiles(ctx context.Context, u shared.UnitOfWork, clk clock.Clock, paths []string, strict bool, concurrency int) ([]seed.Result, error) {
	var (
		mu      sync.Mutex
		results []seed.Result
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(concurrency, 1))
	for _, path := range paths {
		g.Go(func() error {
			res, err := seedFile(ctx, u, clk, path)
			if err != nil {
				if !strict && errs.Is(err, seed.ErrAlreadySeeded) {
					slog.Info("restaurant already seeded, skipping", "file", path)
					return nil
				}
				return errs.Wrapf(err, "%s", path)
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	return results, err
}

func seedFile(ctx context.Context, u shared.UnitOfWork, clk clock.Clock, path string) (seed.Result, error) {
	fh, err := os.Open(path)
	if err != nil {
		return seed.Result{}, errs.Wrap(err, "failed to open seed file")
	}
	defer fh.Close()

	f, err := seed.Parse(fh)
	if err != nil {
		return seed.Result{}, err
	}
	plan, err := f.Build(clk.Now())
	if err != nil {
		return seed.Result{}, err
	}
	return seed.Apply(ctx, u, plan)
}
