// Package sweep runs independent simulations in parallel, e.g. over a grid of mount angles and thrust levels.
// Each run owns all of its state: only the results slice is shared, and each worker writes to its own index.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ChristopherRabotin/auv"
	"github.com/ChristopherRabotin/auv/metrics"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Case is one simulation of the sweep.
type Case struct {
	Name    string
	Thrusts auv.ThrusterArray
	Alpha   float64
	Vehicle auv.Vehicle
	Config  auv.SimConfig
}

// Result stores the outcome of a Case.
type Result struct {
	Case       Case
	Trajectory *auv.Trajectory
	Err        error
	Elapsed    time.Duration
}

// Grid returns the cartesian product of the mount angles and thrust scale factors applied to the base case.
// An empty list keeps the value of the base case.
func Grid(base Case, alphas, scales []float64) []Case {
	if len(alphas) == 0 {
		alphas = []float64{base.Alpha}
	}
	if len(scales) == 0 {
		scales = []float64{1}
	}
	cases := make([]Case, 0, len(alphas)*len(scales))
	for _, α := range alphas {
		for _, k := range scales {
			c := base
			c.Name = fmt.Sprintf("%s-a%.4f-x%g", base.Name, α, k)
			c.Alpha = α
			c.Thrusts = base.Thrusts.Scale(k)
			cases = append(cases, c)
		}
	}
	return cases
}

// Runner runs cases on a fixed number of workers.
type Runner struct {
	workers int
	logger  kitlog.Logger
	metrics *metrics.Metrics
}

// NewRunner returns a runner with the given number of workers (all CPUs if not positive).
// The logger and the metrics may be nil.
func NewRunner(workers int, logger kitlog.Logger, m *metrics.Metrics) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &Runner{workers, kitlog.With(logger, "subsys", "sweep"), m}
}

// Run simulates all the cases and returns their results in the same order.
// A failed case does not stop the others. If the context is done before all the cases are started,
// the results of the remaining ones are left empty and the context error is returned.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, len(cases))
	jobs := make(chan int, r.workers*2)

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}
				results[i] = r.runOne(cases[i])
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range cases {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()
	wg.Wait()

	failed := 0
	for _, rslt := range results {
		if rslt.Err != nil {
			failed++
		}
	}
	if err := ctx.Err(); err != nil {
		level.Warn(r.logger).Log("status", "canceled", "runs", len(cases), "err", err)
		return results, err
	}
	level.Info(r.logger).Log("status", "finished", "runs", len(cases), "failed", failed)
	return results, nil
}

func (r *Runner) runOne(c Case) Result {
	level.Debug(r.logger).Log("case", c.Name, "status", "started", "alpha", c.Alpha, "config", c.Config)
	start := time.Now()
	traj, err := auv.Simulate(c.Thrusts, c.Alpha, c.Vehicle, c.Config)
	elapsed := time.Since(start)
	if err != nil {
		level.Warn(r.logger).Log("case", c.Name, "status", "invalid", "err", err)
		if r.metrics != nil && errors.Is(err, auv.ErrInvalidPhysicalInput) {
			r.metrics.Observe(metrics.OutcomeInvalid, elapsed, 0)
		}
		return Result{Case: c, Err: err, Elapsed: elapsed}
	}
	if r.metrics != nil {
		r.metrics.Observe(metrics.OutcomeOK, elapsed, traj.Len())
	}
	kv := []interface{}{"case", c.Name, "status", "done", "samples", traj.Len(), "distance(m)", traj.Distance(), "elapsed", elapsed}
	if final, ok := traj.Final(); ok {
		kv = append(kv, "final", final)
	}
	level.Info(r.logger).Log(kv...)
	return Result{Case: c, Trajectory: traj, Elapsed: elapsed}
}
