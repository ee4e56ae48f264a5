package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/report"
)

func listCmd() *cobra.Command {
	var (
		granularity string
		anchor      string
		from        string
		to          string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse expenses grouped by day",
		Long: `List the expenses inside a time window, newest first, grouped by
day with a per-currency subtotal under each day.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sel, err := buildSelection(granularity, anchor, from, to)
			if err != nil {
				return err
			}

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			rng := a.Resolver.Resolve(sel)
			txns, err := a.Store.GetTransactionsByDateRange(ctx, rng.Start, rng.End)
			if err != nil {
				return fmt.Errorf("failed to load expenses: %w", err)
			}

			if len(txns) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses in this window. Use 'tally add' to record one."))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Expenses %s — %s",
				rng.Start.Format("2006-01-02"), rng.End.Format("2006-01-02"))))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			// txns arrive newest first, so days come out newest first too.
			day := ""
			var dayTxns = map[string][]int{}
			var dayOrder []string
			for i, txn := range txns {
				key := txn.Date.Format("2006-01-02")
				if key != day {
					day = key
					dayOrder = append(dayOrder, key)
				}
				dayTxns[key] = append(dayTxns[key], i)
			}

			for _, key := range dayOrder {
				fmt.Fprintf(w, "%s\n", cli.HeaderStyle.Render(key))

				subtotal := map[string]float64{}
				for _, i := range dayTxns[key] {
					txn := txns[i]
					cat := a.Catalog.Resolve(txn.CategoryID)
					note := txn.Note
					if note == "" {
						note = cli.SubtleStyle.Render("-")
					}
					fmt.Fprintf(w, "  %s\t%s\t%8.2f %s\t%s\t%s\n",
						txn.Date.Format("15:04"),
						cat.Name,
						txn.Amount,
						txn.Currency,
						note,
						cli.SubtleStyle.Render(txn.ID))
					subtotal[txn.Currency] += txn.Amount
				}

				for _, code := range report.Currencies(subtotal) {
					fmt.Fprintf(w, "  %s\t\t%8.2f %s\t\t\n",
						cli.SubtleStyle.Render("subtotal"), subtotal[code], code)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&granularity, "granularity", "g", "month", "window unit (day, week, month, year)")
	cmd.Flags().StringVarP(&anchor, "anchor", "a", "", "anchor date for the window (default: today)")
	cmd.Flags().StringVar(&from, "from", "", "custom window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "custom window end (YYYY-MM-DD)")

	return cmd
}
