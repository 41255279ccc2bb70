package cmd

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/smart-trainer/internal/utils"
	"github.com/spf13/cobra"
)

var endSetCmd = &cobra.Command{
	Use:   "end-set",
	Short: "End the active set",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := utils.LoadSetState()
		if err != nil {
			return fmt.Errorf("Failed to load set: %w", err)
		}

		// Nothing is kept once the set ends.
		if err := utils.ClearSetState(); err != nil {
			return fmt.Errorf("Failed to clear set: %w", err)
		}

		fmt.Printf("✅ Set ended after %d reps (%s)\n",
			state.RepCount(), utils.SetDuration(state.StartTime, time.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(endSetCmd)
}
