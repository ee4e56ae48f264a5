package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List, add, and delete the categories expenses are filed under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Icon"),
				cli.HeaderStyle.Render("System"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 12),
				strings.Repeat("-", 16),
				strings.Repeat("-", 16),
				strings.Repeat("-", 6))

			for _, cat := range a.Catalog.All() {
				system := ""
				if cat.IsSystem {
					system = cli.SubtleStyle.Render("yes")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat.ID, cat.Name, cat.Icon, system)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		name string
		icon string
	)

	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add a custom category",
		Long: `Add a custom category. It is placed right before the "other"
catch-all so that one stays last.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if name == "" {
				name = capitalize(args[0])
			}

			cat := model.Category{ID: args[0], Name: name, Icon: icon}
			if err := a.Catalog.Add(ctx, cat); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added category %q", cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (default: the id, capitalized)")
	cmd.Flags().StringVar(&icon, "icon", "", "symbolic icon key")

	return cmd
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom category",
		Long: `Delete a custom category. System categories are protected;
deleting one is a no-op. Expenses filed under a deleted category fall
back to "other" when displayed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			before := len(a.Catalog.All())
			if err := a.Catalog.Delete(ctx, args[0]); err != nil {
				return err
			}

			if len(a.Catalog.All()) == before {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("Category %q was not deleted (system or unknown)", args[0])))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %q", args[0])))
			return nil
		},
	}
}
