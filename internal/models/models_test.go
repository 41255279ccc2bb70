package models

import (
	"errors"
	"math"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensorReadingValidate(t *testing.T) {
	tests := []struct {
		name    string
		reading SensorReading
		wantErr bool
	}{
		{"valid", NewSensorReading(500, 0.4, 0.8), false},
		{"zero time is tolerated", NewSensorReading(500, 0.4, 0), false},
		{"zero displacement", NewSensorReading(500, 0, 0.8), false},
		{"zero force", NewSensorReading(0, 0.4, 0.8), true},
		{"negative force", NewSensorReading(-10, 0.4, 0.8), true},
		{"negative displacement", NewSensorReading(500, -0.1, 0.8), true},
		{"negative time", NewSensorReading(500, 0.4, -0.8), true},
		{"NaN force", NewSensorReading(math.NaN(), 0.4, 0.8), true},
		{"infinite force", NewSensorReading(math.Inf(1), 0.4, 0.8), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reading.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidReading)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAthleteProfileValidate(t *testing.T) {
	assert.NoError(t, DefaultAthleteProfile().Validate())
	assert.NoError(t, AthleteProfile{FatigueFactor: 0.8, PowerSensitivity: 1}.Validate())

	err := AthleteProfile{FatigueFactor: 1.5, PowerSensitivity: 0.5}.Validate()
	assert.ErrorIs(t, err, ErrProfileOutOfRange)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	err = AthleteProfile{FatigueFactor: 1, PowerSensitivity: -0.1}.Validate()
	assert.ErrorIs(t, err, ErrProfileOutOfRange)

	err = AthleteProfile{FatigueFactor: math.NaN(), PowerSensitivity: 0.5}.Validate()
	assert.ErrorIs(t, err, ErrInvalidProfile)
	assert.False(t, errors.Is(err, ErrProfileOutOfRange))
}

func TestTrainingTypeRepetitions(t *testing.T) {
	assert.Equal(t, []int{8, 9, 10, 11, 12}, TrainingHypertrophy.Repetitions())
	assert.Equal(t, 12, TrainingHypertrophy.MaxReps())
	assert.Equal(t, 8, TrainingHypertrophy.MinReps())

	for _, tt := range AllTrainingTypes {
		reps := tt.Repetitions()
		require.NotEmpty(t, reps, tt.String())
		for i := 1; i < len(reps); i++ {
			assert.Less(t, reps[i-1], reps[i], "%s range must be ascending", tt)
		}
	}

	// Callers get a copy.
	reps := TrainingForce.Repetitions()
	reps[0] = 99
	assert.Equal(t, 3, TrainingForce.MinReps())

	assert.Nil(t, TrainingType(42).Repetitions())
	assert.Equal(t, 0, TrainingType(42).MaxReps())
}

func TestParseTrainingType(t *testing.T) {
	tests := []struct {
		in      string
		want    TrainingType
		wantErr bool
	}{
		{"1", TrainingForce, false},
		{"2", TrainingHypertrophy, false},
		{"3", TrainingEndurance, false},
		{"Hypertrophy", TrainingHypertrophy, false},
		{" endurance ", TrainingEndurance, false},
		{"0", 0, true},
		{"4", 0, true},
		{"yoga", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTrainingType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetStateTOML(t *testing.T) {
	first := NewSensorReading(500, 0.4, 0.8)
	state := SetState{
		SetID:        "abc",
		Profile:      DefaultAthleteProfile(),
		TrainingType: TrainingEndurance,
		First:        first,
		Readings:     []SensorReading{first, NewSensorReading(450, 0.4, 0.9)},
	}

	data, err := toml.Marshal(state)
	require.NoError(t, err)
	assert.Contains(t, string(data), `training_type = "endurance"`)

	var decoded SetState
	_, err = toml.Decode(string(data), &decoded)
	require.NoError(t, err)
	assert.Equal(t, TrainingEndurance, decoded.TrainingType)
	assert.Equal(t, 2, decoded.RepCount())
	assert.Equal(t, 450.0, decoded.Current().ForceN)
}

func TestSetStateCurrentWithoutReadings(t *testing.T) {
	state := SetState{First: NewSensorReading(300, 0.3, 0.6)}
	assert.Equal(t, 300.0, state.Current().ForceN)
	assert.Equal(t, 1, state.RepCount())
}
