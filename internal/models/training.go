package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type TrainingType int

const (
	TrainingForce TrainingType = iota + 1
	TrainingHypertrophy
	TrainingEndurance
)

type trainingTypeDef struct {
	name string
	reps []int // Ascending.
}

var trainingTypes = map[TrainingType]trainingTypeDef{
	TrainingForce:       {name: "force", reps: []int{3, 4, 5, 6}},
	TrainingHypertrophy: {name: "hypertrophy", reps: []int{8, 9, 10, 11, 12}},
	TrainingEndurance:   {name: "endurance", reps: []int{15, 16, 17, 18, 19, 20}},
}

// AllTrainingTypes in menu order.
var AllTrainingTypes = []TrainingType{TrainingForce, TrainingHypertrophy, TrainingEndurance}

func (t TrainingType) Valid() bool {
	_, ok := trainingTypes[t]
	return ok
}

func (t TrainingType) String() string {
	if def, ok := trainingTypes[t]; ok {
		return def.name
	}
	return fmt.Sprintf("TrainingType(%d)", int(t))
}

// Repetitions returns a copy of the acceptable rep range, ascending.
func (t TrainingType) Repetitions() []int {
	def, ok := trainingTypes[t]
	if !ok {
		return nil
	}

	out := make([]int, len(def.reps))
	copy(out, def.reps)
	return out
}

// MaxReps is the top of the rep range, 0 for an unknown type.
func (t TrainingType) MaxReps() int {
	def, ok := trainingTypes[t]
	if !ok || len(def.reps) == 0 {
		return 0
	}
	return def.reps[len(def.reps)-1]
}

func (t TrainingType) MinReps() int {
	def, ok := trainingTypes[t]
	if !ok || len(def.reps) == 0 {
		return 0
	}
	return def.reps[0]
}

// ParseTrainingType accepts a menu code (1, 2, 3) or a name.
func ParseTrainingType(s string) (TrainingType, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if code, err := strconv.Atoi(s); err == nil {
		t := TrainingType(code)
		if !t.Valid() {
			return 0, fmt.Errorf("unknown training type code %d", code)
		}
		return t, nil
	}

	for _, t := range AllTrainingTypes {
		if trainingTypes[t].name == s {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown training type %q", s)
}

func (t TrainingType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown training type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *TrainingType) UnmarshalText(text []byte) error {
	parsed, err := ParseTrainingType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// SetState is the set in progress, kept on disk between CLI invocations.
type SetState struct {
	SetID        string         `toml:"set_id"`
	ProfileName  string         `toml:"profile_name,omitempty"`
	Profile      AthleteProfile `toml:"profile"`
	TrainingType TrainingType   `toml:"training_type"`
	StartTime    time.Time      `toml:"start_time"`

	// Engine settings the set was started with.
	FailureThreshold float64 `toml:"failure_threshold"`
	BaseDecayPerRep  float64 `toml:"base_decay_per_rep"`

	First    SensorReading   `toml:"first"`
	Readings []SensorReading `toml:"readings"` // Every rep of the set, first included.
}

// Current returns the latest reading of the set.
func (s *SetState) Current() SensorReading {
	if len(s.Readings) == 0 {
		return s.First
	}
	return s.Readings[len(s.Readings)-1]
}

func (s *SetState) RepCount() int {
	if len(s.Readings) == 0 {
		return 1
	}
	return len(s.Readings)
}
