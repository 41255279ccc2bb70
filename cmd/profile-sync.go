package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportProfilesCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export all athlete profiles to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "profiles.toml" // Default filename.
		if len(args) == 1 {
			outputFile = args[0]
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.ExportProfiles(cmd.Context(), outputFile)
		if err != nil {
			return fmt.Errorf("error exporting profiles: %w", err)
		}

		fmt.Printf("✅ %d profiles exported to %s\n", n, outputFile)
		return nil
	},
}

var importProfilesCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Create or update athlete profiles from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.ImportProfiles(cmd.Context(), data)
		if err != nil {
			return fmt.Errorf("Failed to import profiles: %w", err)
		}

		fmt.Printf("✅ %d profiles imported\n", n)
		return nil
	},
}

func init() {
	profileCmd.AddCommand(exportProfilesCmd)
	profileCmd.AddCommand(importProfilesCmd)
}
