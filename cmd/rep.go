package cmd

import (
	"fmt"

	"github.com/misterclayt0n/smart-trainer/internal/utils"
	"github.com/spf13/cobra"
)

var repReading readingFlags

var repCmd = &cobra.Command{
	Use:   "rep",
	Short: "Add the reading of the next rep to the active set and get a load suggestion",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := utils.LoadSetState()
		if err != nil {
			return fmt.Errorf("Failed to load set state: %w", err)
		}

		reading := repReading.reading()
		if err := reading.Validate(); err != nil {
			return err
		}

		adj, err := adjusterForSet(state)
		if err != nil {
			return err
		}

		state.Readings = append(state.Readings, reading)

		// Each rep is compared with the first rep of the set, not the previous one.
		suggestion, err := adj.SuggestForSet(state)
		if err != nil {
			return err
		}

		if err := utils.SaveSetState(state); err != nil {
			return fmt.Errorf("Failed to save set state: %w", err)
		}

		printSuggestion(suggestion)
		return nil
	},
}

func init() {
	repReading.register(repCmd)
	rootCmd.AddCommand(repCmd)
}
