package cmd

import (
	"log/slog"
	"os"

	"github.com/misterclayt0n/smart-trainer/internal/utils"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "smart-trainer",
	Short: "Estimate reps to failure from one sensor reading and steer the load of a set",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(utils.NewLogger(os.Stderr, verbose))
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log engine traces to stderr")
}
