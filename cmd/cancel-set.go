package cmd

import (
	"fmt"

	"github.com/misterclayt0n/smart-trainer/internal/utils"
	"github.com/spf13/cobra"
)

var cancelSetCmd = &cobra.Command{
	Use:   "cancel-set",
	Short: "Discard the active set",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SetExists() {
			return fmt.Errorf("No active set to cancel")
		}

		// Just clear the set file.
		if err := utils.ClearSetState(); err != nil {
			return fmt.Errorf("Failed to cancel set: %w", err)
		}

		fmt.Println("✅ Set cancelled")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelSetCmd)
}
