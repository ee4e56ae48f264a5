package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

func addCmd() *cobra.Command {
	var (
		categoryID string
		note       string
		currencyF  string
		dateStr    string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record an expense",
		Long: `Record a new expense. The amount must be positive; category,
currency, and date default to "other", the configured default currency,
and now.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", common.ErrInvalidAmount, args[0])
			}
			if amount <= 0 {
				return fmt.Errorf("%w: amount must be positive", common.ErrInvalidAmount)
			}

			date := time.Now()
			if dateStr != "" {
				var err error
				date, err = parseDate(dateStr)
				if err != nil {
					return fmt.Errorf("%w: %v", common.ErrInvalidDate, err)
				}
			}

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			cur := currencyF
			if cur == "" {
				cur = a.Settings.DefaultCurrency
			}
			if categoryID == "" {
				categoryID = model.OtherCategoryID
			}

			txn := model.Transaction{
				Date:       date,
				Amount:     amount,
				CategoryID: categoryID,
				Note:       note,
				Currency:   cur,
			}
			txn.ID = txn.GenerateID()

			if err := a.Store.SaveTransaction(ctx, txn); err != nil {
				return fmt.Errorf("failed to record expense: %w", err)
			}

			cat := a.Catalog.Resolve(txn.CategoryID)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %.2f %s (%s) [%s]",
				txn.Amount, txn.Currency, cat.Name, txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryID, "category", "c", "", "category id (default: other)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "free-text note")
	cmd.Flags().StringVar(&currencyF, "currency", "", "3-letter currency code (default: configured currency)")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "date of the expense (default: now)")

	return cmd
}
