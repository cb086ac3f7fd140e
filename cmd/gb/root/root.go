package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goalboard/internal/ui"
)

const Version = "0.1.0"

var (
	verbose    bool
	configPath string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "gb",
	Short:         "Goalboard — local-first yearly goal tracker",
	Long:          "Goalboard tracks yearly goals by category, month and priority, breaks them into subtasks and keeps everything in a local database.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		cfg := zap.NewDevelopmentConfig()
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.goalboard.yaml)")

	rootCmd.AddCommand(
		newAddCmd(),
		newDeleteCmd(),
		newSubCmd(),
		newListCmd(),
		newChartCmd(),
		newFilterCmd(),
		newDarkCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Default.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
