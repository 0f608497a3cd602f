package integrator

import "gonum.org/v1/gonum/floats"

// Euler defines a fixed step Euler integrator where the coordinates are advanced with the rates of the
// end of the step (a.k.a. semi-implicit or symplectic Euler).
type Euler struct {
	X0         float64    // The initial x0.
	StepSize   float64    // The step size.
	Integrator Integrable // What is to be integrated.
}

// NewEuler returns a new Euler integrator instance.
func NewEuler(x0, stepSize float64, inte Integrable) *Euler {
	if !(stepSize > 0) {
		panic("config StepSize must be positive")
	}
	if inte == nil {
		panic("config Integrator may not be nil")
	}
	return &Euler{X0: x0, StepSize: stepSize, Integrator: inte}
}

// Solve solves the configured Euler integration.
// Returns the number of iterations performed and the last X_i, or an error.
// Iteration zero is the initial state and is never computed.
func (e *Euler) Solve() (uint64, float64, error) {
	iterNum := uint64(1)
	xi := e.X0
	for !e.Integrator.Stop(iterNum) {
		q, p := e.Integrator.GetState()
		// The second derivative is evaluated at the start of the step.
		acc := e.Integrator.Func(xi, q, p)
		newP := make([]float64, len(p))
		newQ := make([]float64, len(q))
		floats.AddScaledTo(newP, p, e.StepSize, acc)
		floats.AddScaledTo(newQ, q, e.StepSize, newP)
		e.Integrator.SetState(iterNum, newQ, newP)

		xi += e.StepSize
		iterNum++ // Don't forget to increment the number of iterations.
	}
	return iterNum - 1, xi, nil
}
