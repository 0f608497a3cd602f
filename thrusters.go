package auv

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ThrusterSignPattern is the sign of the (x, y) body frame components of each thruster's line of action.
// Thrusters 0 and 1 are on the major axis, 2 and 3 on the minor axis, all mounted at the same angle α.
var ThrusterSignPattern = [ThrusterCount][2]float64{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}

// YawSignPattern is the sign of the yaw torque of each thruster since they sit on alternating sides of the hull.
var YawSignPattern = [ThrusterCount]float64{1, -1, 1, -1}

// ThrusterArray stores the force magnitude (in Newtons) of each of the four thrusters.
type ThrusterArray []float64

// Validate returns an error if this is not a valid set of thrusts.
func (T ThrusterArray) Validate() error {
	if len(T) != ThrusterCount {
		return invalid("len(thrusters)", float64(len(T)), "must be exactly 4")
	}
	for _, f := range T {
		if err := finite("thrust", f); err != nil {
			return err
		}
	}
	return nil
}

// Scale returns a new thruster array where each thrust is multiplied by k.
func (T ThrusterArray) Scale(k float64) ThrusterArray {
	s := make(ThrusterArray, len(T))
	floats.ScaleTo(s, k, T)
	return s
}

// BodyForce returns the net force in the body frame for a mount angle α. There is no validation.
func (T ThrusterArray) BodyForce(α float64) []float64 {
	return MxV(ThrusterFrame(α), T)
}

// YawTorque returns the net yaw torque for a mount angle α, major arm L and minor arm l. There is no validation.
func (T ThrusterArray) YawTorque(α, L, l float64) float64 {
	sα, cα := math.Sincos(α)
	return floats.Dot(YawSignPattern[:], T) * (L*sα + l*cα)
}

// worldAcceleration is the unchecked version of ThrusterAcceleration, used by the integrator.
func (T ThrusterArray) worldAcceleration(α, θ, mass float64) (ax, ay float64) {
	F := MxV(Rot2D(θ), T.BodyForce(α))
	return F[0] / mass, F[1] / mass
}

// ThrusterAcceleration returns the world frame linear acceleration of the vehicle of given mass,
// for a mount angle α and a heading θ (both in radians).
func ThrusterAcceleration(T ThrusterArray, α, θ, mass float64) (ax, ay float64, err error) {
	if err = firstErr(T.Validate(), finite("alpha", α), finite("theta", θ), positive("mass", mass)); err != nil {
		return 0, 0, err
	}
	ax, ay = T.worldAcceleration(α, θ, mass)
	return
}

// ThrusterAngularAcceleration returns the yaw angular acceleration from the thrusts, the mount angle α,
// the major (L) and minor (l) arm lengths, and the rotational inertia.
func ThrusterAngularAcceleration(T ThrusterArray, α, L, l, inertia float64) (float64, error) {
	if err := firstErr(T.Validate(), finite("alpha", α), positive("L", L), positive("l", l), positive("inertia", inertia)); err != nil {
		return 0, err
	}
	return T.YawTorque(α, L, l) / inertia, nil
}

// SingleThruster is the degenerate rig with one thruster.
type SingleThruster struct {
	Mass     float64 // kg
	Volume   float64 // m^3
	Inertia  float64 // kg.m^2
	Distance float64 // from the center of mass, in meters
}

// DefaultSingleThruster returns a 100 kg and 0.1 m^3 vehicle with a unit inertia and a thruster mounted 0.5 m away.
func DefaultSingleThruster() SingleThruster {
	return SingleThruster{Mass: 100, Volume: 0.1, Inertia: 1, Distance: 0.5}
}

// Acceleration returns the acceleration of the vehicle from a thrust of given magnitude and angle (in radians).
func (t SingleThruster) Acceleration(force, angle float64) (ax, ay float64, err error) {
	if err = firstErr(positive("mass", t.Mass), positive("volume", t.Volume), positive("distance", t.Distance),
		thrusterForce("force", force), thrusterAngle("angle", angle)); err != nil {
		return 0, 0, err
	}
	s, c := math.Sincos(angle)
	return force * c / t.Mass, force * s / t.Mass, nil
}

// AngularAcceleration returns the angular acceleration from a thrust of given magnitude and angle (in radians).
func (t SingleThruster) AngularAcceleration(force, angle float64) (float64, error) {
	if err := firstErr(positive("inertia", t.Inertia), positive("distance", t.Distance),
		thrusterForce("force", force), thrusterAngle("angle", angle)); err != nil {
		return 0, err
	}
	return t.Distance * force * math.Sin(angle) / t.Inertia, nil
}
