package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidProfile = errors.New("invalid athlete profile")
	// ErrProfileOutOfRange marks a usable profile whose factors sit outside the
	// calibrated range. It wraps ErrInvalidProfile.
	ErrProfileOutOfRange = fmt.Errorf("%w: out of calibrated range", ErrInvalidProfile)
)

const (
	DefaultFatigueFactor    = 1.0
	DefaultPowerSensitivity = 0.5

	MinFatigueFactor    = 0.8
	MaxFatigueFactor    = 1.2
	MinPowerSensitivity = 0.0
	MaxPowerSensitivity = 1.0
)

// AthleteProfile personalizes the fatigue curve.
type AthleteProfile struct {
	// Between 0.8 (very resistant) and 1.2 (fatigues quickly).
	FatigueFactor float64 `json:"fatigue_factor" toml:"fatigue_factor"`
	// Between 0 (decay ignores power) and 1 (powerful reps strongly slow the decay).
	PowerSensitivity float64 `json:"power_sensitivity" toml:"power_sensitivity"`
}

func DefaultAthleteProfile() AthleteProfile {
	return AthleteProfile{
		FatigueFactor:    DefaultFatigueFactor,
		PowerSensitivity: DefaultPowerSensitivity,
	}
}

// Validate returns ErrInvalidProfile for unusable values and
// ErrProfileOutOfRange for values outside the nominal ranges. Callers are
// expected to treat the latter as a warning.
func (p AthleteProfile) Validate() error {
	if !isFinite(p.FatigueFactor) || !isFinite(p.PowerSensitivity) {
		return fmt.Errorf("%w: factors must be finite", ErrInvalidProfile)
	}

	if p.FatigueFactor < MinFatigueFactor || p.FatigueFactor > MaxFatigueFactor {
		return fmt.Errorf("%w: fatigue factor %.2f not in [%.1f, %.1f]",
			ErrProfileOutOfRange, p.FatigueFactor, MinFatigueFactor, MaxFatigueFactor)
	}
	if p.PowerSensitivity < MinPowerSensitivity || p.PowerSensitivity > MaxPowerSensitivity {
		return fmt.Errorf("%w: power sensitivity %.2f not in [%.1f, %.1f]",
			ErrProfileOutOfRange, p.PowerSensitivity, MinPowerSensitivity, MaxPowerSensitivity)
	}

	return nil
}

// NamedProfile is an AthleteProfile stored under a name.
type NamedProfile struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Profile   AthleteProfile `json:"profile"`
	CreatedAt time.Time      `json:"created_at"`
}

//
// For TOML parsing only
//

type ProfileTOML struct {
	Name             string  `toml:"name"`
	FatigueFactor    float64 `toml:"fatigue_factor"`
	PowerSensitivity float64 `toml:"power_sensitivity"`
}

type ProfileImport struct {
	Profiles []ProfileTOML `toml:"profile"`
}
