package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"digital-menu/internal/domain/offer"
	"digital-menu/internal/menusync"
	"digital-menu/internal/pkg/clock"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/i18n"
	"digital-menu/internal/presentation/carousel"
	"digital-menu/internal/usecase/queries"

	"github.com/spf13/cobra"
)

type carouselOptions struct {
	mode     string
	lang     string
	sticky   bool
	interval time.Duration
	refresh  time.Duration
	duration time.Duration
}

func newCarouselCmd(root *rootOptions) *cobra.Command {
	opts := &carouselOptions{}

	cmd := &cobra.Command{
		Use:   "carousel <slug>",
		Short: "Run the offers carousel of a restaurant in the terminal",
		Long: `Loads the restaurant through the API and prints one line per carousel
state change. The restaurant is refetched every --refresh so schedule changes
and edits made elsewhere show up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCarousel(cmd.Context(), cmd.OutOrStdout(), root, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.mode, "mode", string(offer.SelectActive), "Selection mode: active or strict")
	cmd.Flags().StringVar(&opts.lang, "lang", string(i18n.DefaultLanguage), "Display language: en or de")
	cmd.Flags().BoolVar(&opts.sticky, "sticky", false, "Render as the sticky menu-page variant")
	cmd.Flags().DurationVar(&opts.interval, "interval", carousel.DefaultInterval, "Auto-advance interval")
	cmd.Flags().DurationVar(&opts.refresh, "refresh", 30*time.Second, "Refetch interval")
	cmd.Flags().DurationVar(&opts.duration, "duration", 0, "Stop after this long (0 runs until interrupted)")
	return cmd
}

func runCarousel(ctx context.Context, out io.Writer, root *rootOptions, opts *carouselOptions, slug string) error {
	selector, err := offer.ParseSelector(opts.mode)
	if err != nil {
		return errs.Wrap(errs.Validation(err), "--mode")
	}
	lang, err := i18n.ParseLanguage(opts.lang)
	if err != nil {
		return errs.Wrap(errs.Validation(err), "--lang")
	}
	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	car := carousel.New(clock.NewRealClock(), carousel.Config{
		Interval: opts.interval,
		Sticky:   opts.sticky,
		Selector: selector,
		Language: lang,
		OnChange: func(v carousel.View) { printView(out, v) },
	}, nil)
	defer car.Close()

	store := menusync.NewCustomerStore(root.client(), slug,
		menusync.WithOnChange(func(v *queries.RestaurantView) {
			car.SetOffers(v.OfferDomains())
		}),
	)
	defer store.Close()

	if err := store.Load(ctx); err != nil {
		return err
	}
	if v := car.View(); v.Count == 0 {
		printView(out, v)
	}

	ticker := time.NewTicker(opts.refresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := store.Load(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				slog.Warn("failed to refresh restaurant", "slug", slug, "error", err.Error())
				continue
			}
			car.Refresh()
		}
	}
}

func printView(w io.Writer, v carousel.View) {
	if v.Current == nil {
		fmt.Fprintf(w, "[%s] no offers\n", v.Mode)
		return
	}
	fmt.Fprintf(w, "[%s] %d/%d %s -%d%% %s\n", v.Mode, v.Index+1, v.Count, v.Current.Title, v.Current.Discount, v.Current.ValidHours)
}
