package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/smart-trainer/internal/engine"
	"github.com/spf13/cobra"
)

var (
	estimateReading readingFlags
	estimateEngine  engineFlags
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate reps to failure and the load to use from the first rep of a set",
	RunE: func(cmd *cobra.Command, args []string) error {
		tt, err := estimateEngine.parseType()
		if err != nil {
			return err
		}

		adj, _, _, err := estimateEngine.build(cmd)
		if err != nil {
			return err
		}

		report, err := adj.AnalyzeFirstRep(estimateReading.reading(), tt)
		if err != nil {
			return fmt.Errorf("failed to analyze rep: %w", err)
		}

		printReport(report)
		return nil
	},
}

func printReport(r engine.FirstRepReport) {
	printBoxedHeader("FIRST REP")

	printMetric("Training type", fmt.Sprintf("%s %v", r.TrainingType, r.TrainingType.Repetitions()))
	printMetric("Estimated reps", fmt.Sprintf("%d reps (target failure on rep %d)", r.EstimatedReps, r.TargetFailRep))
	printMetric("Mean velocity", fmt.Sprintf("%.3f m/s", r.VelocityMS))
	printMetric("Mean power", fmt.Sprintf("%.2f W", r.PowerW))
	printMetric("Decay per rep", fmt.Sprintf("%.2f%%", r.DecayPerRep*100))
	fmt.Println()

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Printf("%s %.2f N -> %.2f kg\n", boldGreen("Suggested load:"), r.SuggestedForceN, r.SuggestedLoadKg)
}

func init() {
	estimateReading.register(estimateCmd)
	estimateEngine.register(estimateCmd)
	rootCmd.AddCommand(estimateCmd)
}
