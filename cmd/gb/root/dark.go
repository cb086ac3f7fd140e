package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"goalboard/internal/ui"
)

func newDarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dark [on|off]",
		Short: "Toggle or set dark mode",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("expected at most one argument: on|off")
			}
			if len(args) == 1 && args[0] != "on" && args[0] != "off" {
				return errors.New("argument must be on or off")
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

			var dark bool
			if len(args) == 1 {
				dark = args[0] == "on"
				svc.SetDarkMode(ctx, dark)
			} else {
				dark = svc.ToggleDarkMode(ctx)
			}

			if dark {
				fmt.Fprintln(cmd.OutOrStdout(), ui.IconMoon+" Dark mode on")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.IconSun+" Dark mode off")
			}
			return nil
		},
	}

	return cmd
}
