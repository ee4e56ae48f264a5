package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Store.DeleteTransaction(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted expense %s", args[0])))
			return nil
		},
	}
}
