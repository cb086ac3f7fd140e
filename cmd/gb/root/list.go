package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goalboard/internal/engine"
	"goalboard/internal/ui"
)

func newListCmd() *cobra.Command {
	var category string
	var month string
	var priority string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals grouped by month",
		Long: `List goals grouped by calendar month, honoring the saved filter
selection. Flags override individual filter fields for this invocation only
(use "gb filter" to change the saved selection).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			pal := ui.NewPalette(svc.DarkMode())
			filters := svc.Filters()
			if cmd.Flags().Changed("category") {
				if filters.Category, err = engine.ParseFilterField(category, engine.ParseCategory); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("month") {
				if filters.Month, err = engine.ParseFilterField(month, engine.ParseMonth); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("priority") {
				if filters.Priority, err = engine.ParseFilterField(priority, engine.ParsePriority); err != nil {
					return err
				}
			}

			goals := engine.Filtered(svc.Goals(), filters)
			if len(goals) == 0 {
				if svc.GoalCount() == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), pal.Muted.Render("No goals yet. Try: gb add \"Read 12 books\" -c learning -m january -p high"))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), pal.Muted.Render("Nothing matches the current filters."))
				}
				return nil
			}

			for _, grp := range engine.GroupByMonth(goals) {
				fmt.Fprintln(cmd.OutOrStdout(), pal.H2.Render(ui.IconCalendar+" "+string(grp.Month)))
				for _, g := range grp.Goals {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %s %s %s %s\n",
						pal.Muted.Render(fmt.Sprintf("#%d", g.ID)),
						g.Title,
						pal.PriorityTag(g.Priority),
						pal.CategoryTag(g.Category),
						pal.ProgressText(g.Progress))
					for _, st := range g.Subtasks {
						fmt.Fprintf(cmd.OutOrStdout(), "     %s %s %s\n",
							pal.Checkbox(st.Done), st.Text, pal.Muted.Render(fmt.Sprintf("(%d)", st.ID)))
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), "")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category (or All)")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Filter by month (or All)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Filter by priority (or All)")

	return cmd
}
