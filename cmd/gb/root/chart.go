package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goalboard/internal/engine"
	"goalboard/internal/ui"
)

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show average progress per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			pal := ui.NewPalette(svc.DarkMode())
			if svc.GoalCount() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), pal.Muted.Render("(no goals yet)"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), pal.Heading(ui.IconChart, "Progress by category"))
			labels, values := engine.ChartData(svc.Goals())
			for i, label := range labels {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-9s %s %3d%%\n", label, pal.Bar(values[i], 30), values[i])
			}
			return nil
		},
	}

	return cmd
}
