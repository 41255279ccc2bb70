package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/smart-trainer/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileFatigue     float64
	profileSensitivity float64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named athlete profiles",
}

var addProfileCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create or update an athlete profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.AthleteProfile{FatigueFactor: profileFatigue, PowerSensitivity: profileSensitivity}
		if err := p.Validate(); err != nil {
			if !errors.Is(err, models.ErrProfileOutOfRange) {
				return err
			}
			fmt.Println(color.YellowString("⚠ %v", err))
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		np, err := st.SaveProfile(cmd.Context(), args[0], p)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Profile '%s' saved (fatigue factor %.2f, power sensitivity %.2f)\n",
			np.Name, np.Profile.FatigueFactor, np.Profile.PowerSensitivity)
		return nil
	},
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all athlete profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		profiles, err := st.ListProfiles(cmd.Context())
		if err != nil {
			return err
		}

		if len(profiles) == 0 {
			fmt.Println(color.MagentaString("No profiles found."))
			return nil
		}

		for _, p := range profiles {
			fmt.Printf("%s - fatigue %.2f, power sensitivity %.2f\n",
				color.New(color.FgCyan, color.Bold).Sprint(p.Name),
				p.Profile.FatigueFactor, p.Profile.PowerSensitivity)
		}
		return nil
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show an athlete profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		np, err := st.GetProfile(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Athlete Profile:"))
		fmt.Printf("  %s: %s\n", boldCyan("Name"), np.Name)
		fmt.Printf("  %s: %s\n", boldCyan("ID"), np.ID)
		fmt.Printf("  %s: %.2f\n", boldCyan("Fatigue factor"), np.Profile.FatigueFactor)
		fmt.Printf("  %s: %.2f\n", boldCyan("Power sensitivity"), np.Profile.PowerSensitivity)
		fmt.Printf("  %s: %s\n", boldCyan("Created At"), np.CreatedAt.Format(time.RFC1123))
		if err := np.Profile.Validate(); err != nil {
			fmt.Println(color.YellowString("  ⚠ %v", err))
		}
		return nil
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete an athlete profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteProfile(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("Failed to delete profile: %w", err)
		}

		fmt.Printf("✅ Profile '%s' deleted successfully\n", args[0])
		return nil
	},
}

func init() {
	addProfileCmd.Flags().Float64VarP(&profileFatigue, "fatigue", "F", models.DefaultFatigueFactor, "Fatigue factor, 0.8 (resistant) to 1.2 (fatigues quickly)")
	addProfileCmd.Flags().Float64VarP(&profileSensitivity, "sensitivity", "s", models.DefaultPowerSensitivity, "Power sensitivity, 0 to 1")

	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	rootCmd.AddCommand(profileCmd)
}
