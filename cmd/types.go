package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/smart-trainer/internal/engine"
	"github.com/misterclayt0n/smart-trainer/internal/models"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List training types and their rep ranges",
	Run: func(cmd *cobra.Command, args []string) {
		bold := color.New(color.FgCyan, color.Bold).SprintFunc()
		for _, tt := range models.AllTrainingTypes {
			fmt.Printf("%d - %s %v (fail on rep %d)\n",
				int(tt), bold(tt), tt.Repetitions(), engine.TargetFailRep(tt))
		}
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
