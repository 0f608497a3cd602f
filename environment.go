package auv

import "math"

// Environment holds the physical constants of the medium the vehicle evolves in.
// Pass it by value: none of the functions below modify it.
type Environment struct {
	G                   float64 // m/s^2
	WaterDensity        float64 // kg/m^3
	AtmosphericPressure float64 // Pa
}

// DefaultEnvironment returns fresh water at standard gravity and sea level.
func DefaultEnvironment() Environment {
	return Environment{G: 9.81, WaterDensity: 1000, AtmosphericPressure: 101325}
}

// Validate returns an error if any constant is not strictly positive.
func (e Environment) Validate() error {
	return firstErr(positive("g", e.G), positive("water density", e.WaterDensity), positive("atmospheric pressure", e.AtmosphericPressure))
}

// Buoyancy returns the buoyant force (N) on a body of given volume (m^3) immersed in a fluid of given density (kg/m^3).
func (e Environment) Buoyancy(fluidDensity, volume float64) (float64, error) {
	if err := firstErr(e.Validate(), positive("density", fluidDensity), positive("volume", volume)); err != nil {
		return 0, err
	}
	return fluidDensity * volume * e.G, nil
}

// Floats returns whether a body of given volume (m^3) and mass (kg) floats in water.
func (e Environment) Floats(volume, mass float64) (bool, error) {
	if err := firstErr(e.Validate(), positive("mass", mass), positive("volume", volume)); err != nil {
		return false, err
	}
	return mass/volume < e.WaterDensity, nil
}

// Pressure returns the gauge pressure (Pa) at the given depth (m). The sign of the depth is ignored.
func (e Environment) Pressure(depth float64) (float64, error) {
	if err := firstErr(e.Validate(), finite("depth", depth)); err != nil {
		return 0, err
	}
	return e.WaterDensity * math.Abs(depth) * e.G, nil
}

// AbsolutePressure returns the gauge pressure plus the atmospheric pressure (Pa) at the given depth (m).
func (e Environment) AbsolutePressure(depth float64) (float64, error) {
	p, err := e.Pressure(depth)
	if err != nil {
		return 0, err
	}
	return e.AtmosphericPressure + p, nil
}
