package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"digital-menu/internal/pkg/errs"

	"github.com/spf13/cobra"
)

func newOffersCmd(root *rootOptions) *cobra.Command {
	var (
		mode string
		lang string
		at   string
	)

	cmd := &cobra.Command{
		Use:   "offers <slug>",
		Short: "Print the offers section of a restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var when time.Time
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return errs.Wrap(err, "--at must be RFC3339")
				}
				when = t
			}

			res, err := root.client().ListOffers(cmd.Context(), args[0], mode, lang, when)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, %s, %s)\n", res.Title, res.Slug, res.Mode, res.At.Format(time.RFC3339))
			if len(res.Slides) == 0 {
				fmt.Fprintln(out, "no offers")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DISCOUNT\tHOURS\tTITLE\tDESCRIPTION")
			for _, s := range res.Slides {
				fmt.Fprintf(w, "%d%%\t%s\t%s\t%s\n", s.Discount, s.ValidHours, s.Title, s.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "Selection mode: active or strict (server default when empty)")
	cmd.Flags().StringVar(&lang, "lang", "", "Display language: en or de")
	cmd.Flags().StringVar(&at, "at", "", "Evaluate strict mode at this RFC3339 instant instead of now")
	return cmd
}
