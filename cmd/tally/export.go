package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/export"
	"github.com/tallyhq/tally/internal/model"
)

func exportCmd() *cobra.Command {
	var (
		output      string
		granularity string
		anchor      string
		from        string
		to          string
		all         bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses to CSV",
		Long: `Export expenses as CSV (date, category, amount, note, currency).
By default only the selected window is exported; --all exports everything.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			txns, err := loadExportSet(cmd, a, all, granularity, anchor, from, to)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()

			if err := export.WriteHeader(f); err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(txns),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Exporting expenses..."),
			)

			namer := func(id string) string { return a.Catalog.Resolve(id).Name }
			for _, txn := range txns {
				if err := export.WriteTransaction(f, txn, namer); err != nil {
					return err
				}
				_ = bar.Add(1)
			}
			fmt.Fprintln(os.Stderr)

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d expenses to %s", len(txns), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "tally-export.csv", "output file")
	cmd.Flags().BoolVar(&all, "all", false, "export every expense regardless of window")
	cmd.Flags().StringVarP(&granularity, "granularity", "g", "month", "window unit (day, week, month, year)")
	cmd.Flags().StringVarP(&anchor, "anchor", "a", "", "anchor date for the window (default: today)")
	cmd.Flags().StringVar(&from, "from", "", "custom window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "custom window end (YYYY-MM-DD)")

	return cmd
}

func loadExportSet(cmd *cobra.Command, a *app, all bool, granularity, anchor, from, to string) ([]model.Transaction, error) {
	ctx := cmd.Context()

	if all {
		return a.Store.GetTransactions(ctx)
	}

	sel, err := buildSelection(granularity, anchor, from, to)
	if err != nil {
		return nil, err
	}
	rng := a.Resolver.Resolve(sel)
	return a.Store.GetTransactionsByDateRange(ctx, rng.Start, rng.End)
}
