package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goalboard/internal/ui"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every goal and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n := svc.GoalCount()
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Default.Muted.Render("(nothing to reset)"))
				return nil
			}
			if !force {
				return fmt.Errorf("this deletes all %d goals; re-run with --force", n)
			}

			svc.ResetAll(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d goals cleared\n", ui.Default.Warn.Render(ui.IconTrash+" Reset."), n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation")

	return cmd
}
