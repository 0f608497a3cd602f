package auv

import (
	"fmt"
	"math"

	"github.com/ChristopherRabotin/auv/integrator"
	"github.com/golang/geo/r2"
)

// SimConfig defines the time grid and the initial pose of a simulation.
type SimConfig struct {
	Step     float64 // dt, s
	Duration float64 // t_final, s
	X0, Y0   float64 // m
	Theta0   float64 // rad
}

// DefaultSimConfig returns a ten second simulation with a 0.1 second step, starting at rest at the origin.
func DefaultSimConfig() SimConfig {
	return SimConfig{Step: 0.1, Duration: 10}
}

func (c SimConfig) String() string {
	return fmt.Sprintf("dt=%g s  t_final=%g s  r0=(%g, %g) m  θ0=%g rad", c.Step, c.Duration, c.X0, c.Y0, c.Theta0)
}

// Validate returns an error if the time grid or the initial pose is invalid.
// A zero step or duration is valid, but the grid may not exceed MaxGridSize points.
func (c SimConfig) Validate() error {
	if err := firstErr(nonNegative("dt", c.Step), nonNegative("t_final", c.Duration),
		finite("x0", c.X0), finite("y0", c.Y0), finite("theta0", c.Theta0)); err != nil {
		return err
	}
	if c.Step > 0 && !(c.Duration/c.Step <= MaxGridSize) {
		return invalid("dt", c.Step, "yields more than 1e8 time steps")
	}
	return nil
}

// GridSize returns the number of points of the time grid t_i = i*dt over [0; t_final[.
// A zero duration leads to an empty grid, and a zero step to a grid of only the initial condition.
// The result is only meaningful for a valid configuration.
func (c SimConfig) GridSize() int {
	switch {
	case c.Duration == 0:
		return 0
	case c.Step == 0:
		return 1
	}
	return int(math.Ceil(c.Duration / c.Step))
}

// Simulate integrates the planar motion of the vehicle under constant thrusts from the rest state at the initial pose.
// The yaw angular acceleration does not depend on the heading and is computed once, whereas the linear acceleration
// is recomputed at each step from the heading of the previous step.
func Simulate(T ThrusterArray, α float64, v Vehicle, c SimConfig) (*Trajectory, error) {
	if err := firstErr(T.Validate(), finite("alpha", α), v.Validate(), c.Validate()); err != nil {
		return nil, err
	}
	ωDot, err := v.AngularAcceleration(T, α)
	if err != nil {
		return nil, err
	}
	n := c.GridSize()
	traj := newTrajectory(n)
	if n == 0 {
		return traj, nil
	}
	traj.append(Sample{Position: r2.Point{X: c.X0, Y: c.Y0}, Theta: c.Theta0})
	if n == 1 {
		return traj, nil
	}
	m := &motion{thrusts: T, α: α, vehicle: v, ωDot: ωDot, step: c.Step, n: uint64(n), traj: traj}
	integrator.NewEuler(0, c.Step, m).Solve() // Blocking.
	return traj, nil
}

// motion is the integrator.Integrable of the planar rigid body.
// The coordinates are (x, y, θ) and the rates (vx, vy, ω).
type motion struct {
	thrusts ThrusterArray
	α       float64
	vehicle Vehicle
	ωDot    float64
	step    float64
	n       uint64
	acc     r2.Point // acceleration of the step being computed
	traj    *Trajectory
}

// GetState implements the integrator.Integrable interface.
func (m *motion) GetState() (q, p []float64) {
	k := m.traj.Len() - 1
	return []float64{m.traj.X[k], m.traj.Y[k], m.traj.Theta[k]}, []float64{m.traj.V[k].X, m.traj.V[k].Y, m.traj.Omega[k]}
}

// SetState implements the integrator.Integrable interface.
func (m *motion) SetState(i uint64, q, p []float64) {
	m.traj.append(Sample{T: float64(i) * m.step, Position: vec2(q), Theta: q[2], Velocity: vec2(p), Omega: p[2], Acceleration: m.acc})
}

// Stop implements the integrator.Integrable interface.
func (m *motion) Stop(i uint64) bool {
	return i >= m.n
}

// Func implements the integrator.Integrable interface.
func (m *motion) Func(t float64, q, p []float64) []float64 {
	ax, ay := m.thrusts.worldAcceleration(m.α, q[2], m.vehicle.Mass)
	m.acc = r2.Point{X: ax, Y: ay}
	return []float64{ax, ay, m.ωDot}
}
