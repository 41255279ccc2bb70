package models

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidReading = errors.New("invalid sensor reading")

// SensorReading is the measurement of a single rep.
type SensorReading struct {
	ForceN        float64 `json:"force_n" toml:"force_n"`               // Mean force applied during the rep.
	DisplacementM float64 `json:"displacement_m" toml:"displacement_m"` // Range of motion.
	TimeS         float64 `json:"time_s" toml:"time_s"`                 // Duration of the rep.
}

func NewSensorReading(forceN, displacementM, timeS float64) SensorReading {
	return SensorReading{ForceN: forceN, DisplacementM: displacementM, TimeS: timeS}
}

// Validate rejects readings the engine cannot simulate from. A zero time is
// accepted: velocity and power fall back to 0 for it.
func (r SensorReading) Validate() error {
	switch {
	case !isFinite(r.ForceN) || !isFinite(r.DisplacementM) || !isFinite(r.TimeS):
		return fmt.Errorf("%w: values must be finite", ErrInvalidReading)
	case r.ForceN <= 0:
		return fmt.Errorf("%w: force must be positive, got %v N", ErrInvalidReading, r.ForceN)
	case r.DisplacementM < 0:
		return fmt.Errorf("%w: displacement must not be negative, got %v m", ErrInvalidReading, r.DisplacementM)
	case r.TimeS < 0:
		return fmt.Errorf("%w: time must not be negative, got %v s", ErrInvalidReading, r.TimeS)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
