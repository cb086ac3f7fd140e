package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goalboard/internal/engine"
	"goalboard/internal/ui"
)

func newFilterCmd() *cobra.Command {
	var category string
	var month string
	var priority string
	var clear bool

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Show or change the saved filter selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			pal := ui.NewPalette(svc.DarkMode())
			filters := svc.Filters()

			changed := false
			if clear {
				filters = engine.DefaultFilters()
				changed = true
			}
			if cmd.Flags().Changed("category") {
				if filters.Category, err = engine.ParseFilterField(category, engine.ParseCategory); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("month") {
				if filters.Month, err = engine.ParseFilterField(month, engine.ParseMonth); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("priority") {
				if filters.Priority, err = engine.ParseFilterField(priority, engine.ParsePriority); err != nil {
					return err
				}
				changed = true
			}
			if changed {
				svc.SetFilters(ctx, filters)
			}

			fmt.Fprintln(cmd.OutOrStdout(), pal.LabelValue("Category", filters.Category))
			fmt.Fprintln(cmd.OutOrStdout(), pal.LabelValue("Priority", filters.Priority))
			fmt.Fprintln(cmd.OutOrStdout(), pal.LabelValue("Month", filters.Month))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category filter (health|career|learning|All)")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Month filter (january…december|All)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority filter (high|medium|low|All)")
	cmd.Flags().BoolVar(&clear, "clear", false, "Reset all filters to All")

	return cmd
}
