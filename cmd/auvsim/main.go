package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/ChristopherRabotin/auv"
	"github.com/ChristopherRabotin/auv/metrics"
	"github.com/ChristopherRabotin/auv/sweep"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	scenario    string
	sweepGrid   bool
	numCPUs     int
	debug       bool
	metricsAddr string
)

func init() {
	flag.StringVar(&scenario, "scenario", "", "scenario TOML file (defaults to scenario.toml in $"+auv.ConfigEnv+")")
	flag.BoolVar(&sweepGrid, "sweep", false, "run the sweep grid of the scenario instead of the nominal case")
	flag.IntVar(&numCPUs, "cpus", 0, "number of parallel simulations (0 uses sweep.workers, then all CPUs)")
	flag.BoolVar(&debug, "debug", false, "log debug messages")
	flag.StringVar(&metricsAddr, "metrics", "", "serve prometheus metrics on this address, e.g. :9090")
}

func main() {
	flag.Parse()
	logger := newLogger(os.Stdout, debug)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, logger)
	stop()
	if err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, debug bool) kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	if debug {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

func run(ctx context.Context, logger kitlog.Logger) error {
	s, err := loadScenario(scenario)
	if err != nil {
		return err
	}
	logger = kitlog.With(logger, "scenario", s.Name)
	level.Info(logger).Log("vehicle", s.Vehicle, "sim", s.Sim, "thrusts", fmt.Sprintf("%v", s.Thrusters), "alpha", s.Alpha)

	var m *metrics.Metrics
	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		m = metrics.New(reg)
		srv := &http.Server{Addr: metricsAddr, Handler: metrics.Handler(reg)}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				level.Error(logger).Log("subsys", "metrics", "err", err)
			}
		}()
		defer srv.Close()
		level.Info(logger).Log("subsys", "metrics", "addr", metricsAddr)
	}

	cases := buildCases(s, sweepGrid)
	if sweepGrid && s.Sweep.IsUseless() {
		level.Warn(logger).Log("msg", "sweep requested but the scenario defines no sweep grid")
	}
	workers := numCPUs
	if workers <= 0 {
		workers = s.Sweep.Workers
	}
	results, err := sweep.NewRunner(workers, logger, m).Run(ctx, cases)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		conf := s.Export
		if len(results) > 1 {
			conf.Filename = r.Case.Name
		}
		if err := export(logger, conf, r); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d simulations failed", failed, len(results))
	}

	if m != nil {
		level.Info(logger).Log("subsys", "metrics", "msg", "simulations done, interrupt to stop serving")
		<-ctx.Done()
	}
	return nil
}

func loadScenario(path string) (auv.Scenario, error) {
	if path == "" {
		return auv.LoadScenarioFromEnv()
	}
	return auv.LoadScenario(path)
}

// buildCases returns the nominal case of the scenario, or its sweep grid.
func buildCases(s auv.Scenario, grid bool) []sweep.Case {
	base := sweep.Case{Name: s.Name, Thrusts: s.Thrusters, Alpha: s.Alpha, Vehicle: s.Vehicle, Config: s.Sim}
	if !grid || s.Sweep.IsUseless() {
		return []sweep.Case{base}
	}
	return sweep.Grid(base, s.Sweep.Alphas, s.Sweep.Scales)
}

func export(logger kitlog.Logger, conf auv.ExportConfig, r sweep.Result) error {
	if conf.IsUseless() {
		return nil
	}
	if conf.Timestamp && conf.Stamp.IsZero() {
		conf.Stamp = time.Now()
	}
	logger = kitlog.With(logger, "subsys", "export", "case", r.Case.Name)
	filename, err := auv.Export(conf, r.Trajectory)
	if err != nil {
		return fmt.Errorf("exporting %s: %w", r.Case.Name, err)
	}
	if filename != "" {
		level.Info(logger).Log("csv", filename)
	}
	if conf.Plot {
		path, heading := conf.Path("png"), conf.Path("heading.png")
		if err := plotPath(path, r.Case.Name, r.Trajectory); err != nil {
			return fmt.Errorf("plotting %s: %w", r.Case.Name, err)
		}
		if err := plotHeading(heading, r.Case.Name, r.Trajectory); err != nil {
			return fmt.Errorf("plotting %s: %w", r.Case.Name, err)
		}
		level.Info(logger).Log("plot", path, "heading", heading)
	}
	return nil
}
