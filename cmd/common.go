package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/smart-trainer/internal/config"
	"github.com/misterclayt0n/smart-trainer/internal/engine"
	"github.com/misterclayt0n/smart-trainer/internal/models"
	"github.com/misterclayt0n/smart-trainer/internal/storage"
	"github.com/spf13/cobra"
)

// readingFlags holds the sensor values of one rep given on the command line.
type readingFlags struct {
	force        float64
	displacement float64
	time         float64
}

func (r *readingFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&r.force, "force", "f", 0, "Mean force of the rep (N)")
	cmd.Flags().Float64VarP(&r.displacement, "displacement", "d", 0, "Displacement of the rep (m), e.g. 0.4")
	cmd.Flags().Float64VarP(&r.time, "time", "t", 0, "Duration of the rep (s), e.g. 0.8")
	cmd.MarkFlagRequired("force")
	cmd.MarkFlagRequired("displacement")
	cmd.MarkFlagRequired("time")
}

func (r *readingFlags) reading() models.SensorReading {
	return models.NewSensorReading(r.force, r.displacement, r.time)
}

// engineFlags selects the athlete profile and engine overrides.
type engineFlags struct {
	profile      string
	trainingType string
	threshold    float64
	decay        float64
}

func (e *engineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&e.profile, "profile", "p", "", "Stored athlete profile to use (defaults to the config athlete)")
	cmd.Flags().StringVarP(&e.trainingType, "type", "T", "2", "Training type: 1=force, 2=hypertrophy, 3=endurance")
	cmd.Flags().Float64Var(&e.threshold, "threshold", engine.DefaultFailureThreshold, "Failure threshold as a fraction of the first rep force (overrides [engine] failure_threshold)")
	cmd.Flags().Float64Var(&e.decay, "decay", engine.DefaultBaseDecayPerRep, "Base force decay per rep (overrides [engine] base_decay_per_rep)")
}

// build resolves the profile and returns an engine configured from the config
// file, with flags taking precedence.
func (e *engineFlags) build(cmd *cobra.Command) (*engine.Adjuster, string, models.AthleteProfile, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, "", models.AthleteProfile{}, fmt.Errorf("failed to load config: %w", err)
	}

	name := e.profile
	if name == "" {
		name = cfg.DB.DefaultProfile
	}

	profile := cfg.Athlete
	if name != "" {
		np, err := lookupProfile(cmd.Context(), cfg, name)
		if err != nil {
			return nil, "", models.AthleteProfile{}, err
		}
		profile = np.Profile
	}

	opts := []engine.Option{engine.WithConfig(cfg.Engine), engine.WithLogger(slog.Default())}
	if cmd.Flags().Changed("threshold") {
		opts = append(opts, engine.WithFailureThreshold(e.threshold))
	}
	if cmd.Flags().Changed("decay") {
		opts = append(opts, engine.WithBaseDecayPerRep(e.decay))
	}

	adj, err := engine.NewAdjuster(profile, opts...)
	if err != nil {
		return nil, "", models.AthleteProfile{}, err
	}

	return adj, name, profile, nil
}

func (e *engineFlags) parseType() (models.TrainingType, error) {
	return models.ParseTrainingType(e.trainingType)
}

func lookupProfile(ctx context.Context, cfg *config.Config, name string) (*models.NamedProfile, error) {
	st, err := storage.Open(cfg.DB.ConnectionString)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	return st.GetProfile(ctx, name)
}

func openStorage() (*storage.Storage, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return storage.Open(cfg.DB.ConnectionString)
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// printSuggestion prints the load advice for the rep after s.Rep.
func printSuggestion(s engine.RepSuggestion) {
	label := color.New(color.FgMagenta, color.Bold).Sprintf("Suggestion (rep %d):", s.Rep)

	switch s.Action {
	case engine.ActionIncrease:
		fmt.Printf("%s %s load by %.2f kg\n", label, color.GreenString("INCREASE"), math.Abs(s.DeltaKg))
	case engine.ActionDecrease:
		fmt.Printf("%s %s load by %.2f kg\n", label, color.RedString("DECREASE"), math.Abs(s.DeltaKg))
	default:
		fmt.Printf("%s %s\n", label, color.CyanString("keep the load"))
	}
}

// adjusterForSet rebuilds the engine a set was started with.
func adjusterForSet(state *models.SetState) (*engine.Adjuster, error) {
	cfg := engine.Config{
		FailureThreshold: state.FailureThreshold,
		BaseDecayPerRep:  state.BaseDecayPerRep,
	}
	if cfg == (engine.Config{}) {
		cfg = engine.DefaultConfig()
	}

	return engine.NewAdjuster(state.Profile, engine.WithConfig(cfg), engine.WithLogger(slog.Default()))
}
