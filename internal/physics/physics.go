package physics

// Gravity used to turn a force reading into an equivalent load in kg.
const Gravity = 9.8

func NewtonToKg(n float64) float64 {
	return n / Gravity
}

func KgToNewton(kg float64) float64 {
	return kg * Gravity
}

// Velocity returns the mean velocity (m/s) of a rep. A non-positive time
// yields 0 instead of an error.
func Velocity(displacementM, timeS float64) float64 {
	if timeS <= 0 {
		return 0
	}

	return displacementM / timeS
}

// Power returns the mean power (W) of a rep: force times mean velocity.
func Power(forceN, displacementM, timeS float64) float64 {
	return forceN * Velocity(displacementM, timeS)
}
