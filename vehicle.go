package auv

import "fmt"

// Vehicle defines the rigid body parameters of the AUV. It is not modified during a simulation.
type Vehicle struct {
	Mass     float64 // kg
	Inertia  float64 // yaw rotational inertia, kg.m^2
	MajorArm float64 // L, m
	MinorArm float64 // l, m
}

// DefaultVehicle returns a 100 kg vehicle with a yaw inertia of 100 kg.m^2 and the provided arm lengths.
func DefaultVehicle(L, l float64) Vehicle {
	return Vehicle{Mass: 100, Inertia: 100, MajorArm: L, MinorArm: l}
}

func (v Vehicle) String() string {
	return fmt.Sprintf("m=%.3f kg  I=%.3f kg.m^2  L=%.3f m  l=%.3f m", v.Mass, v.Inertia, v.MajorArm, v.MinorArm)
}

// Validate returns an error if any of the parameters is not strictly positive.
func (v Vehicle) Validate() error {
	return firstErr(positive("mass", v.Mass), positive("inertia", v.Inertia), positive("L", v.MajorArm), positive("l", v.MinorArm))
}

// Acceleration returns the world frame acceleration of this vehicle for heading θ.
func (v Vehicle) Acceleration(T ThrusterArray, α, θ float64) (ax, ay float64, err error) {
	return ThrusterAcceleration(T, α, θ, v.Mass)
}

// AngularAcceleration returns the yaw angular acceleration of this vehicle.
func (v Vehicle) AngularAcceleration(T ThrusterArray, α float64) (float64, error) {
	return ThrusterAngularAcceleration(T, α, v.MajorArm, v.MinorArm, v.Inertia)
}

// NetBuoyancy returns the buoyant force minus the weight of the vehicle (positive upward), in Newtons.
func (v Vehicle) NetBuoyancy(env Environment, volume float64) (float64, error) {
	if err := positive("mass", v.Mass); err != nil {
		return 0, err
	}
	b, err := env.Buoyancy(env.WaterDensity, volume)
	if err != nil {
		return 0, err
	}
	return b - v.Mass*env.G, nil
}
