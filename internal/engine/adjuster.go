// Package engine simulates force decay across a set and turns the result into
// load suggestions.
//
// An Adjuster is safe for concurrent use as long as it is not reconfigured
// while other goroutines call it.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/misterclayt0n/smart-trainer/internal/models"
	"github.com/misterclayt0n/smart-trainer/internal/physics"
)

var (
	ErrInvalidReading    = models.ErrInvalidReading
	ErrInvalidProfile    = models.ErrInvalidProfile
	ErrProfileOutOfRange = models.ErrProfileOutOfRange
	ErrConfiguration     = errors.New("invalid engine configuration")
)

const (
	DefaultFailureThreshold = 0.60
	DefaultBaseDecayPerRep  = 0.05

	MinDecayPerRep = 0.02
	MaxDecayPerRep = 0.12

	// Power treated as the physiological ceiling when normalizing.
	MaxExpectedPowerW = 3000.0

	minFactor      = 0.6
	maxFactor      = 1.4
	factorDamping  = 0.6
	nearFailureGap = 0.05
	excessGap      = 0.20
	minDeltaKg     = 0.5
	deltaFraction  = 0.03
)

type Config struct {
	// Fraction of the first rep's force below which a rep counts as failed.
	FailureThreshold float64 `toml:"failure_threshold"`
	BaseDecayPerRep  float64 `toml:"base_decay_per_rep"`
}

func DefaultConfig() Config {
	return Config{
		FailureThreshold: DefaultFailureThreshold,
		BaseDecayPerRep:  DefaultBaseDecayPerRep,
	}
}

func (c Config) Validate() error {
	if math.IsNaN(c.FailureThreshold) || c.FailureThreshold <= 0 || c.FailureThreshold >= 1 {
		return fmt.Errorf("%w: failure threshold must be in (0, 1), got %v", ErrConfiguration, c.FailureThreshold)
	}
	if math.IsNaN(c.BaseDecayPerRep) || math.IsInf(c.BaseDecayPerRep, 0) || c.BaseDecayPerRep <= 0 {
		return fmt.Errorf("%w: base decay per rep must be a positive number, got %v", ErrConfiguration, c.BaseDecayPerRep)
	}
	return nil
}

type Option func(*Adjuster)

func WithConfig(cfg Config) Option {
	return func(a *Adjuster) { a.cfg = cfg }
}

func WithFailureThreshold(v float64) Option {
	return func(a *Adjuster) { a.cfg.FailureThreshold = v }
}

func WithBaseDecayPerRep(v float64) Option {
	return func(a *Adjuster) { a.cfg.BaseDecayPerRep = v }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Adjuster) { a.log = l }
}

// Adjuster is the fatigue engine for one athlete profile.
type Adjuster struct {
	profile models.AthleteProfile
	cfg     Config
	log     *slog.Logger
}

// NewAdjuster fails on an unusable profile or configuration. A profile outside
// the calibrated range is only logged.
func NewAdjuster(profile models.AthleteProfile, opts ...Option) (*Adjuster, error) {
	a := &Adjuster{
		profile: profile,
		cfg:     DefaultConfig(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := profile.Validate(); err != nil {
		if !errors.Is(err, ErrProfileOutOfRange) {
			return nil, err
		}
		a.log.Warn("athlete profile out of calibration", "error", err)
	}

	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Adjuster) Profile() models.AthleteProfile { return a.profile }

func (a *Adjuster) Config() Config { return a.cfg }

// SetFailureThreshold affects subsequent calls only. Invalid values leave the
// current configuration untouched.
func (a *Adjuster) SetFailureThreshold(v float64) error {
	cfg := a.cfg
	cfg.FailureThreshold = v
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *Adjuster) SetBaseDecayPerRep(v float64) error {
	cfg := a.cfg
	cfg.BaseDecayPerRep = v
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// DecayPerRep returns the clamped fraction of force lost on every simulated
// rep for the given first rep.
func (a *Adjuster) DecayPerRep(first models.SensorReading) float64 {
	power := physics.Power(first.ForceN, first.DisplacementM, first.TimeS)

	// Athletes sensitive to power keep their force longer after a powerful rep.
	powerAdjustment := 1.0 - a.profile.PowerSensitivity*normalizePower(power)
	decay := a.cfg.BaseDecayPerRep * a.profile.FatigueFactor * powerAdjustment

	return clamp(decay, MinDecayPerRep, MaxDecayPerRep)
}

// SimulateRepsFromFirst estimates how many reps the athlete completes before
// force falls below the failure threshold. The training type does not change
// the estimate.
func (a *Adjuster) SimulateRepsFromFirst(first models.SensorReading, _ models.TrainingType) (int, error) {
	if err := first.Validate(); err != nil {
		return 0, err
	}

	decay := a.DecayPerRep(first)
	threshold := first.ForceN * a.cfg.FailureThreshold

	// decay >= MinDecayPerRep so force strictly shrinks and the loop ends.
	reps := 0
	for force := first.ForceN; force >= threshold; force *= 1.0 - decay {
		reps++
	}

	a.log.Debug("simulated set",
		"force_n", first.ForceN,
		"decay", decay,
		"threshold_n", threshold,
		"reps", reps,
	)

	return max(0, reps), nil
}

// TargetFailRep is the rep the athlete should fail on: two short of the top
// of the range, never below 1.
func TargetFailRep(tt models.TrainingType) int {
	return max(1, tt.MaxReps()-2)
}

// SuggestPeakForceForTarget returns the first-rep force (N) that should bring
// failure onto TargetFailRep.
func (a *Adjuster) SuggestPeakForceForTarget(first models.SensorReading, tt models.TrainingType) (float64, error) {
	if !tt.Valid() {
		return 0, fmt.Errorf("unknown training type %d", int(tt))
	}

	target := TargetFailRep(tt)

	repsSim, err := a.SimulateRepsFromFirst(first, tt)
	if err != nil {
		return 0, err
	}
	if repsSim == 0 {
		repsSim = 1
	}

	if repsSim == target {
		return first.ForceN, nil
	}

	factor := SmoothFactor(float64(target) / float64(repsSim))
	return first.ForceN * factor, nil
}

// SuggestDeltaKgPerRep compares the current rep with the first rep of the set
// and returns the load change in kg for the next rep: negative near failure,
// positive with plenty of force left, 0 in between.
func (a *Adjuster) SuggestDeltaKgPerRep(current, first models.SensorReading, _ models.TrainingType) (float64, error) {
	if err := first.Validate(); err != nil {
		return 0, fmt.Errorf("first reading: %w", err)
	}
	if err := current.Validate(); err != nil {
		return 0, fmt.Errorf("current reading: %w", err)
	}

	rel := current.ForceN / first.ForceN
	step := math.Max(minDeltaKg, physics.NewtonToKg(current.ForceN)*deltaFraction)

	switch {
	case rel < a.cfg.FailureThreshold+nearFailureGap:
		return -step, nil
	case rel > a.cfg.FailureThreshold+excessGap:
		return step, nil
	default:
		return 0, nil
	}
}

// SmoothFactor damps a load correction factor toward 1 so suggestions never
// jump by more than 24%.
func SmoothFactor(f float64) float64 {
	clamped := clamp(f, minFactor, maxFactor)
	return 1.0 + factorDamping*(clamped-1.0)
}

func normalizePower(power float64) float64 {
	return clamp(power/MaxExpectedPowerW, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
