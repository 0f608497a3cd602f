package auv

import "math"

/* Rigid body primitives. */

// Acceleration returns the linear acceleration (m/s^2) of a body of given mass (kg) subject to a force (N).
func Acceleration(force, mass float64) (float64, error) {
	if err := firstErr(finite("force", force), positive("mass", mass)); err != nil {
		return 0, err
	}
	return force / mass, nil
}

// AngularAcceleration returns the angular acceleration (rad/s^2) from a torque (N.m) and a rotational inertia (kg.m^2).
func AngularAcceleration(torque, inertia float64) (float64, error) {
	if err := firstErr(finite("torque", torque), positive("inertia", inertia)); err != nil {
		return 0, err
	}
	return torque / inertia, nil
}

// Torque returns the torque (N.m) generated by a force applied at a distance r from the center of mass.
// NOTE: the direction of the force is in degrees, measured from the lever arm.
func Torque(force, directionDeg, r float64) (float64, error) {
	if err := firstErr(finite("force", force), finite("direction", directionDeg), nonNegative("r", r)); err != nil {
		return 0, err
	}
	return r * force * math.Sin(Deg2rad(directionDeg)), nil
}

// MomentOfInertia returns the moment of inertia (kg.m^2) of a point mass at radius r.
func MomentOfInertia(mass, r float64) (float64, error) {
	if err := firstErr(positive("mass", mass), nonNegative("radius", r)); err != nil {
		return 0, err
	}
	return mass * r * r, nil
}
