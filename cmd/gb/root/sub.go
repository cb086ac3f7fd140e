package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"goalboard/internal/ui"
)

func newSubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Manage a goal's subtasks",
	}
	cmd.AddCommand(newSubAddCmd(), newSubToggleCmd())
	return cmd
}

func newSubAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <goal-id> <text>",
		Short: "Add a subtask to a goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("goal id and text are required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("goal id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			goalID, _ := strconv.ParseInt(args[0], 10, 64)
			text := strings.Join(args[1:], " ")
			created := svc.AddSubtask(ctx, goalID, text)
			if created == nil {
				// Blank text or unknown goal: silently rejected.
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q %s\n",
				ui.Default.Good.Render(ui.IconPlus+" Subtask added:"),
				created.Text,
				ui.Default.Muted.Render("(id "+fmt.Sprint(created.ID)+")"))
			return nil
		},
	}
	return cmd
}

func newSubToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <goal-id> <subtask-id>",
		Short: "Toggle a subtask done/undone",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("goal id and subtask id are required")
			}
			for _, a := range args {
				if _, err := strconv.ParseInt(a, 10, 64); err != nil {
					return errors.New("ids must be integers")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			goalID, _ := strconv.ParseInt(args[0], 10, 64)
			subID, _ := strconv.ParseInt(args[1], 10, 64)
			if !svc.ToggleSubtask(ctx, goalID, subID) {
				// Unknown ids: silent no-op.
				return nil
			}
			g := svc.Goal(goalID)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q now at %s\n",
				ui.Default.Good.Render(ui.IconDone+" Toggled."),
				g.Title, ui.Default.ProgressText(g.Progress))
			if svc.Celebrating() && g.Progress == 100 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Default.Accent.Render(ui.IconParty+" Goal completed! "+ui.IconTrophy))
			}
			return nil
		},
	}
	return cmd
}
