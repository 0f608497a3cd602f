package auv

import "math"

const (
	// MaxThrusterAngle is the largest mount angle magnitude (in radians) accepted by the single thruster models.
	MaxThrusterAngle = math.Pi / 6
	// MaxThrusterForce is the largest force magnitude (in Newtons) accepted by the single thruster models.
	MaxThrusterForce = 100.
	// ThrusterCount is the number of thrusters on the rig.
	ThrusterCount = 4
	// MaxGridSize is the largest number of time grid points of a simulation.
	MaxGridSize = 100000000
)

// All comparisons are written such that a NaN fails them.

func positive(param string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return invalid(param, v, "must be strictly positive")
	}
	return nil
}

func nonNegative(param string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 1) {
		return invalid(param, v, "must be non-negative")
	}
	return nil
}

func finite(param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(param, v, "must be finite")
	}
	return nil
}

func thrusterAngle(param string, v float64) error {
	if !(math.Abs(v) <= MaxThrusterAngle) {
		return invalid(param, v, "magnitude exceeds π/6")
	}
	return nil
}

func thrusterForce(param string, v float64) error {
	if !(math.Abs(v) <= MaxThrusterForce) {
		return invalid(param, v, "magnitude exceeds 100 N")
	}
	return nil
}

// firstErr returns the first non nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
