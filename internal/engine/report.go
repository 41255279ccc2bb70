package engine

import (
	"math"

	"github.com/misterclayt0n/smart-trainer/internal/models"
	"github.com/misterclayt0n/smart-trainer/internal/physics"
)

// FirstRepReport is everything derived from the first rep of a set.
type FirstRepReport struct {
	TrainingType     models.TrainingType
	EstimatedReps    int
	TargetFailRep    int
	VelocityMS       float64
	PowerW           float64
	SuggestedForceN  float64
	SuggestedLoadKg  float64
	DecayPerRep      float64
	FailureThreshold float64
}

func (a *Adjuster) AnalyzeFirstRep(first models.SensorReading, tt models.TrainingType) (FirstRepReport, error) {
	reps, err := a.SimulateRepsFromFirst(first, tt)
	if err != nil {
		return FirstRepReport{}, err
	}

	force, err := a.SuggestPeakForceForTarget(first, tt)
	if err != nil {
		return FirstRepReport{}, err
	}

	return FirstRepReport{
		TrainingType:     tt,
		EstimatedReps:    reps,
		TargetFailRep:    TargetFailRep(tt),
		VelocityMS:       physics.Velocity(first.DisplacementM, first.TimeS),
		PowerW:           physics.Power(first.ForceN, first.DisplacementM, first.TimeS),
		SuggestedForceN:  force,
		SuggestedLoadKg:  physics.NewtonToKg(force),
		DecayPerRep:      a.DecayPerRep(first),
		FailureThreshold: a.cfg.FailureThreshold,
	}, nil
}

type LoadAction int

const (
	ActionHold LoadAction = iota
	ActionIncrease
	ActionDecrease
)

// Deltas at or below this magnitude (kg) mean keep the load.
const holdTolerance = 0.001

func (l LoadAction) String() string {
	switch l {
	case ActionIncrease:
		return "increase"
	case ActionDecrease:
		return "decrease"
	default:
		return "hold"
	}
}

func Action(deltaKg float64) LoadAction {
	switch {
	case math.Abs(deltaKg) <= holdTolerance:
		return ActionHold
	case deltaKg > 0:
		return ActionIncrease
	default:
		return ActionDecrease
	}
}

// RepSuggestion is the advice for the rep following Current.
type RepSuggestion struct {
	Rep      int
	Relative float64 // Current force over first-rep force.
	DeltaKg  float64
	Action   LoadAction
}

// SuggestForSet evaluates the latest reading of a set against its first rep.
func (a *Adjuster) SuggestForSet(state *models.SetState) (RepSuggestion, error) {
	current := state.Current()

	delta, err := a.SuggestDeltaKgPerRep(current, state.First, state.TrainingType)
	if err != nil {
		return RepSuggestion{}, err
	}

	return RepSuggestion{
		Rep:      state.RepCount(),
		Relative: current.ForceN / state.First.ForceN,
		DeltaKg:  delta,
		Action:   Action(delta),
	}, nil
}
