package cmd

import (
	"fmt"

	"github.com/misterclayt0n/smart-trainer/internal/config"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example config and create the profile database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, created, err := config.CreateExample()
		if err != nil {
			return fmt.Errorf("Failed to write config: %w", err)
		}
		if created {
			fmt.Printf("✅ Config written to %s\n", path)
		} else {
			fmt.Printf("Config already exists at %s, leaving it untouched\n", path)
		}

		// Opening the storage creates the schema.
		st, err := openStorage()
		if err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		defer st.Close()

		fmt.Println("✅ Profile database initialized successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
