package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/currency"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/report"
	"github.com/tallyhq/tally/internal/timeframe"
)

func statsCmd() *cobra.Command {
	var (
		granularity string
		anchor      string
		from        string
		to          string
		shift       int
		unified     bool
		currencyF   string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals and category breakdown for a window",
		Long: `Show per-currency totals and a category breakdown chart for the
selected time window. With --unified all amounts are converted to the
default currency first; --currency restricts the breakdown to one
currency (which turns --unified off).`,
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

			now := time.Now()
			for step := 0; step < shift; step++ {
				if !a.Resolver.CanNavigateForward(sel, now) {
					fmt.Println(cli.FormatWarning("Window already contains today, not moving further forward"))
					break
				}
				sel = a.Resolver.Navigate(sel, 1)
			}
			for step := 0; step > shift; step-- {
				sel = a.Resolver.Navigate(sel, -1)
			}

			rng := a.Resolver.Resolve(sel)
			txns, err := a.Store.GetTransactionsByDateRange(ctx, rng.Start, rng.End)
			if err != nil {
				return fmt.Errorf("failed to load expenses: %w", err)
			}

			conv := currency.NewConverter()
			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s %s — %s",
				cli.ChartIcon,
				rng.Start.Format("2006-01-02"),
				rng.End.Format("2006-01-02"))))

			if len(txns) == 0 {
				fmt.Println(cli.FormatInfo("Nothing spent in this window."))
				return nil
			}

			printSummary(a, conv, txns, rng, unified)
			printBreakdown(a, conv, txns, rng, report.Options{
				CurrencyFilter: currencyF,
				Unified:        unified,
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&granularity, "granularity", "g", "week", "window unit (day, week, month, year)")
	cmd.Flags().StringVarP(&anchor, "anchor", "a", "", "anchor date for the window (default: today)")
	cmd.Flags().StringVar(&from, "from", "", "custom window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "custom window end (YYYY-MM-DD)")
	cmd.Flags().IntVar(&shift, "shift", 0, "move the window by N units (negative for past)")
	cmd.Flags().BoolVarP(&unified, "unified", "u", false, "convert everything to the default currency")
	cmd.Flags().StringVar(&currencyF, "currency", "", "only include one currency in the breakdown")

	return cmd
}

func printSummary(a *app, conv *currency.Converter, txns []model.Transaction, rng timeframe.Range, unified bool) {
	totals := report.Summarize(txns, rng)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n",
		cli.HeaderStyle.Render("Currency"),
		cli.HeaderStyle.Render("Total"))
	for _, code := range report.Currencies(totals) {
		fmt.Fprintf(w, "%s %s\t%.2f\n", conv.Symbol(code), code, totals[code])
	}
	w.Flush()

	if unified {
		target := a.Settings.DefaultCurrency
		total := report.UnifiedTotal(txns, rng, conv, target)
		fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Unified total: %s%.2f %s",
			conv.Symbol(target), total, target)))
	}
	fmt.Println()
}

func printBreakdown(a *app, conv *currency.Converter, txns []model.Transaction, rng timeframe.Range, opts report.Options) {
	entries := report.Breakdown(txns, rng, a.Catalog, conv, a.Settings.DefaultCurrency, opts)
	if len(entries) == 0 {
		if opts.CurrencyFilter != "" {
			fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No %s expenses in this window.", opts.CurrencyFilter)))
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Amount"),
		cli.HeaderStyle.Render("Share"),
		cli.HeaderStyle.Render(""))
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%.2f %s\t%5.1f%%\t%s\n",
			e.CategoryName,
			e.DisplayAmount,
			e.Currency,
			e.Percentage*100,
			renderBar(e.Percentage, 20))
	}
	w.Flush()
}

func renderBar(percentage float64, width int) string {
	filled := int(percentage*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return cli.BarStyle.Render(strings.Repeat("█", filled)) +
		cli.SubtleStyle.Render(strings.Repeat("░", width-filled))
}
