package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/smart-trainer/internal/models"
	"github.com/misterclayt0n/smart-trainer/internal/utils"
	"github.com/spf13/cobra"
)

var (
	startReading readingFlags
	startEngine  engineFlags
)

var startCmd = &cobra.Command{
	Use:   "start-set",
	Short: "Start a set from its first rep and follow it rep by rep",
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.SetExists() {
			return fmt.Errorf("A set is already active, end or cancel it first")
		}

		tt, err := startEngine.parseType()
		if err != nil {
			return err
		}

		adj, profileName, profile, err := startEngine.build(cmd)
		if err != nil {
			return err
		}

		first := startReading.reading()
		report, err := adj.AnalyzeFirstRep(first, tt)
		if err != nil {
			return fmt.Errorf("Failed to analyze first rep: %w", err)
		}

		state := &models.SetState{
			SetID:        uuid.New().String(),
			ProfileName:  profileName,
			Profile:      profile,
			TrainingType: tt,
			StartTime:    time.Now().UTC(),
			First:        first,
			Readings:     []models.SensorReading{first},

			FailureThreshold: adj.Config().FailureThreshold,
			BaseDecayPerRep:  adj.Config().BaseDecayPerRep,
		}

		suggestion, err := adj.SuggestForSet(state)
		if err != nil {
			return err
		}

		if err := utils.SaveSetState(state); err != nil {
			return fmt.Errorf("Failed to save set state: %w", err)
		}

		printReport(report)
		fmt.Println()
		printSuggestion(suggestion)
		fmt.Printf("\n✅ Started set %s\n", state.SetID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)

	startReading.register(startCmd)
	startEngine.register(startCmd)
}
