package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/smart-trainer/internal/physics"
	"github.com/misterclayt0n/smart-trainer/internal/utils"
	"github.com/spf13/cobra"
)

var setStatusCmd = &cobra.Command{
	Use:   "set-status",
	Short: "Show the active set: readings, force retention and the current suggestion",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := utils.LoadSetState()
		if err != nil {
			return fmt.Errorf("Failed to load set: %w", err)
		}

		adj, err := adjusterForSet(state)
		if err != nil {
			return err
		}

		suggestion, err := adj.SuggestForSet(state)
		if err != nil {
			return err
		}

		printBoxedHeader("SET STATUS")

		profile := state.ProfileName
		if profile == "" {
			profile = "config athlete"
		}
		printMetric("Profile", profile)
		printMetric("Training type", fmt.Sprintf("%s %v", state.TrainingType, state.TrainingType.Repetitions()))
		printMetric("Started", utils.FormatLocal(state.StartTime))
		printMetric("Elapsed", utils.SetDuration(state.StartTime, time.Now()))
		printMetric("Failure threshold", fmt.Sprintf("%.0f%% of first rep", adj.Config().FailureThreshold*100))
		fmt.Println()

		// Print the readings table.
		header := color.New(color.FgGreen, color.Bold).Sprint("Reps:")
		fmt.Println(header)
		fmt.Printf("  %-4s | %-10s | %-8s | %-10s | %-9s\n", "Rep", "Force (N)", "≈ kg", "Power (W)", "Retained")
		fmt.Println("  " + strings.Repeat("─", 53))
		for i, r := range state.Readings {
			fmt.Printf("  %-4d | %-10.1f | %-8.1f | %-10.1f | %-8.0f%%\n",
				i+1,
				r.ForceN,
				physics.NewtonToKg(r.ForceN),
				physics.Power(r.ForceN, r.DisplacementM, r.TimeS),
				r.ForceN/state.First.ForceN*100,
			)
		}
		fmt.Println()

		printSuggestion(suggestion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setStatusCmd)
}
