package auv

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Sample is the state of the vehicle at one point of the time grid.
type Sample struct {
	T            float64  // s
	Position     r2.Point // m, world frame
	Theta        float64  // heading, rad
	Velocity     r2.Point // m/s, world frame
	Omega        float64  // yaw rate, rad/s
	Acceleration r2.Point // m/s^2, world frame
}

func (s Sample) String() string {
	return fmt.Sprintf("t=%.3f s  r=(%.6f, %.6f) m  θ=%.3f deg  v=(%.6f, %.6f) m/s  ω=%.6f rad/s",
		s.T, s.Position.X, s.Position.Y, Rad2deg(s.Theta), s.Velocity.X, s.Velocity.Y, s.Omega)
}

// Trajectory stores the time history of a simulation as parallel series: index i of each series is the i-th
// point of the time grid, and index 0 is the initial condition.
type Trajectory struct {
	T     []float64
	X     []float64
	Y     []float64
	Theta []float64
	V     []r2.Point
	Omega []float64
	A     []r2.Point
}

func newTrajectory(n int) *Trajectory {
	return &Trajectory{
		T:     make([]float64, 0, n),
		X:     make([]float64, 0, n),
		Y:     make([]float64, 0, n),
		Theta: make([]float64, 0, n),
		V:     make([]r2.Point, 0, n),
		Omega: make([]float64, 0, n),
		A:     make([]r2.Point, 0, n),
	}
}

func (t *Trajectory) append(s Sample) {
	t.T = append(t.T, s.T)
	t.X = append(t.X, s.Position.X)
	t.Y = append(t.Y, s.Position.Y)
	t.Theta = append(t.Theta, s.Theta)
	t.V = append(t.V, s.Velocity)
	t.Omega = append(t.Omega, s.Omega)
	t.A = append(t.A, s.Acceleration)
}

// Len returns the number of points in this trajectory.
func (t *Trajectory) Len() int {
	return len(t.T)
}

// Sample returns the i-th point of this trajectory.
func (t *Trajectory) Sample(i int) Sample {
	return Sample{t.T[i], r2.Point{X: t.X[i], Y: t.Y[i]}, t.Theta[i], t.V[i], t.Omega[i], t.A[i]}
}

// Final returns the last point of the trajectory, and false if it is empty.
func (t *Trajectory) Final() (Sample, bool) {
	if t.Len() == 0 {
		return Sample{}, false
	}
	return t.Sample(t.Len() - 1), true
}

// Distance returns the length of the path (in meters) travelled over the trajectory.
func (t *Trajectory) Distance() (d float64) {
	for i := 1; i < t.Len(); i++ {
		d += r2.Point{X: t.X[i] - t.X[i-1], Y: t.Y[i] - t.Y[i-1]}.Norm()
	}
	return
}
