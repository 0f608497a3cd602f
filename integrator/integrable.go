// Package integrator provides fixed step integrators for second order systems.
package integrator

// Integrable defines something which can be integrated, i.e. has a state made of coordinates and their rates.
// WARNING: Implementation must manage its own state based on the iteration.
type Integrable interface {
	GetState() (q, p []float64)               // Get the latest coordinates q and rates p of this integrable.
	SetState(i uint64, q, p []float64)        // Set the state of a given iteration i.
	Stop(i uint64) bool                       // Return whether to stop the integration before iteration i.
	Func(t float64, q, p []float64) []float64 // Second derivative of q from time t and state (q, p).
}
