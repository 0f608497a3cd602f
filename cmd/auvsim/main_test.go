package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ChristopherRabotin/auv"
	"github.com/ChristopherRabotin/auv/sweep"
	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScenario() auv.Scenario {
	return auv.Scenario{
		Name:        "unit",
		Vehicle:     auv.DefaultVehicle(1, 0.5),
		Thrusters:   auv.ThrusterArray{1, 9, 2, 1},
		Alpha:       0.3,
		Sim:         auv.SimConfig{Step: 0.1, Duration: 1},
		Environment: auv.DefaultEnvironment(),
		Sweep:       auv.SweepConfig{Alphas: []float64{0, 0.1}, Scales: []float64{1, 2, 3}},
	}
}

func TestBuildCases(t *testing.T) {
	s := testScenario()
	nominal := buildCases(s, false)
	require.Len(t, nominal, 1)
	assert.Equal(t, "unit", nominal[0].Name)
	assert.Equal(t, s.Thrusters, nominal[0].Thrusts)
	assert.Equal(t, s.Sim, nominal[0].Config)

	assert.Len(t, buildCases(s, true), 6)

	s.Sweep = auv.SweepConfig{}
	assert.Len(t, buildCases(s, true), 1)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false)
	level.Debug(logger).Log("msg", "hidden")
	level.Info(logger).Log("msg", "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=info")

	buf.Reset()
	level.Debug(newLogger(&buf, true)).Log("msg", "shown")
	assert.Contains(t, buf.String(), "level=debug")
}

func TestExport(t *testing.T) {
	s := testScenario()
	traj, err := auv.Simulate(s.Thrusters, s.Alpha, s.Vehicle, s.Sim)
	require.NoError(t, err)
	conf := auv.ExportConfig{OutputDir: t.TempDir(), Filename: "unit", AsCSV: true, Plot: true}
	var buf bytes.Buffer
	r := sweep.Result{Case: buildCases(s, false)[0], Trajectory: traj}
	require.NoError(t, export(newLogger(&buf, false), conf, r))
	for _, name := range []string{"traj-unit.csv", "traj-unit.png", "traj-unit.heading.png"} {
		info, err := os.Stat(filepath.Join(conf.OutputDir, name))
		require.NoError(t, err, name)
		assert.NotZero(t, info.Size(), name)
	}
	assert.True(t, strings.Contains(buf.String(), "subsys=export"))

	// Nothing requested, nothing written.
	conf = auv.ExportConfig{OutputDir: filepath.Join(t.TempDir(), "missing")}
	require.NoError(t, export(newLogger(&buf, false), conf, r))
}

func TestExportTimestamp(t *testing.T) {
	s := testScenario()
	traj, err := auv.Simulate(s.Thrusters, s.Alpha, s.Vehicle, s.Sim)
	require.NoError(t, err)
	conf := auv.ExportConfig{OutputDir: t.TempDir(), Filename: "stamped", AsCSV: true, Plot: true, Timestamp: true}
	r := sweep.Result{Case: buildCases(s, false)[0], Trajectory: traj}
	require.NoError(t, export(newLogger(&bytes.Buffer{}, false), conf, r))
	entries, err := os.ReadDir(conf.OutputDir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	stem := strings.TrimSuffix(entries[0].Name(), filepath.Ext(entries[0].Name()))
	stem = strings.TrimSuffix(stem, ".heading")
	for _, e := range entries {
		assert.True(t, strings.HasPrefix(e.Name(), stem+"."), "%s does not share the stem %s", e.Name(), stem)
	}
}

func TestPlotEmpty(t *testing.T) {
	traj, err := auv.Simulate(auv.ThrusterArray{1, 1, 1, 1}, 0, auv.DefaultVehicle(1, 1), auv.SimConfig{Step: 0.1})
	require.NoError(t, err)
	assert.Error(t, plotPath(filepath.Join(t.TempDir(), "p.png"), "empty", traj))
}
