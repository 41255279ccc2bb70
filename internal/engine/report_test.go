package engine

import (
	"testing"

	"github.com/misterclayt0n/smart-trainer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeFirstRep(t *testing.T) {
	a := newTestAdjuster(t, models.AthleteProfile{FatigueFactor: 1.0, PowerSensitivity: 0.5})

	report, err := a.AnalyzeFirstRep(firstRep, models.TrainingHypertrophy)
	require.NoError(t, err)

	assert.Equal(t, models.TrainingHypertrophy, report.TrainingType)
	assert.Equal(t, 11, report.EstimatedReps)
	assert.Equal(t, 10, report.TargetFailRep)
	assert.InDelta(t, 0.5, report.VelocityMS, 1e-9)
	assert.InDelta(t, 250.0, report.PowerW, 1e-9)
	assert.InDelta(t, 0.04792, report.DecayPerRep, 1e-5)
	assert.InDelta(t, 472.7, report.SuggestedForceN, 0.05)
	assert.InDelta(t, 48.2, report.SuggestedLoadKg, 0.05)
	assert.Equal(t, 0.60, report.FailureThreshold)
}

func TestAnalyzeFirstRepInvalidReading(t *testing.T) {
	a := newTestAdjuster(t, models.DefaultAthleteProfile())

	_, err := a.AnalyzeFirstRep(models.NewSensorReading(0, 0.4, 0.8), models.TrainingForce)
	assert.ErrorIs(t, err, ErrInvalidReading)
}

func TestAction(t *testing.T) {
	tests := []struct {
		delta float64
		want  LoadAction
	}{
		{0, ActionHold},
		{0.001, ActionHold},
		{-0.0005, ActionHold},
		{0.5, ActionIncrease},
		{-0.98, ActionDecrease},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Action(tt.delta), "delta %v", tt.delta)
	}

	assert.Equal(t, "increase", ActionIncrease.String())
	assert.Equal(t, "decrease", ActionDecrease.String())
	assert.Equal(t, "hold", ActionHold.String())
}

func TestSuggestForSetUsesFirstRep(t *testing.T) {
	a := newTestAdjuster(t, models.DefaultAthleteProfile())

	state := &models.SetState{
		TrainingType: models.TrainingHypertrophy,
		First:        firstRep,
		Readings: []models.SensorReading{
			firstRep,
			models.NewSensorReading(330, 0.4, 0.9),
			models.NewSensorReading(320, 0.4, 1.0),
		},
	}

	// The last rep barely dropped from the previous one, but it is compared
	// with the first rep of the set.
	s, err := a.SuggestForSet(state)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Rep)
	assert.InDelta(t, 0.64, s.Relative, 1e-9)
	assert.InDelta(t, -0.98, s.DeltaKg, 0.001)
	assert.Equal(t, ActionDecrease, s.Action)
}

func TestSuggestForSetSingleRep(t *testing.T) {
	a := newTestAdjuster(t, models.DefaultAthleteProfile())

	state := &models.SetState{TrainingType: models.TrainingForce, First: firstRep}

	s, err := a.SuggestForSet(state)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Rep)
	assert.Equal(t, 1.0, s.Relative)
	assert.Equal(t, ActionIncrease, s.Action)
}
