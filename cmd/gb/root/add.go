package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"goalboard/internal/engine"
	"goalboard/internal/ui"
)

func newAddCmd() *cobra.Command {
	var category string
	var month string
	var priority string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a yearly goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cat, err := engine.ParseCategory(category)
			if err != nil {
				return err
			}
			mon, err := engine.ParseMonth(month)
			if err != nil {
				return err
			}
			pri, err := engine.ParsePriority(priority)
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			created := svc.CreateGoal(ctx, args[0], cat, mon, pri)
			if created == nil {
				// Blank title: silently rejected, nothing changed.
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s %s\n",
				ui.Default.Good.Render(ui.IconPlus+" Added"),
				created.Title,
				ui.Default.PriorityTag(created.Priority),
				ui.Default.CategoryTag(created.Category),
				ui.Default.Muted.Render("("+string(created.Month)+", id "+fmt.Sprint(created.ID)+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (health|career|learning)")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Month (january…december)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (high|medium|low)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}
