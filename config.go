package auv

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable holding the directory of the `scenario.toml` file.
const ConfigEnv = "AUV_CONFIG"

// SweepConfig defines the grid of a parameter sweep: every mount angle is combined with every thrust scale factor.
type SweepConfig struct {
	Alphas  []float64
	Scales  []float64
	Workers int
}

// IsUseless returns whether this sweep would not add any run to the nominal one.
func (c SweepConfig) IsUseless() bool {
	return len(c.Alphas) == 0 && len(c.Scales) == 0
}

// Scenario is everything needed to run and export a simulation.
type Scenario struct {
	Name        string
	Vehicle     Vehicle
	Thrusters   ThrusterArray
	Alpha       float64
	Sim         SimConfig
	Environment Environment
	Export      ExportConfig
	Sweep       SweepConfig
}

// Validate validates all the physical parameters of this scenario.
func (s Scenario) Validate() error {
	return firstErr(s.Thrusters.Validate(), finite("alpha", s.Alpha), s.Vehicle.Validate(), s.Sim.Validate(), s.Environment.Validate())
}

// LoadScenario reads the scenario from the provided file (TOML, YAML or JSON as per its extension).
func LoadScenario(path string) (Scenario, error) {
	v := newScenarioViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	return scenarioFromViper(v)
}

// LoadScenarioFromEnv reads `scenario.toml` from the directory set in AUV_CONFIG.
func LoadScenarioFromEnv() (Scenario, error) {
	confPath := os.Getenv(ConfigEnv)
	if confPath == "" {
		return Scenario{}, fmt.Errorf("environment variable `%s` is missing or empty", ConfigEnv)
	}
	v := newScenarioViper()
	v.SetConfigName("scenario")
	v.AddConfigPath(confPath)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("%s/scenario.toml: %w", confPath, err)
	}
	return scenarioFromViper(v)
}

// ReadScenario reads a scenario of the given type (e.g. "toml") from r.
func ReadScenario(r io.Reader, configType string) (Scenario, error) {
	v := newScenarioViper()
	v.SetConfigType(configType)
	if err := v.ReadConfig(r); err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}
	return scenarioFromViper(v)
}

func newScenarioViper() *viper.Viper {
	v := viper.New()
	veh := DefaultVehicle(0, 0)
	sim := DefaultSimConfig()
	env := DefaultEnvironment()
	v.SetDefault("name", "auv")
	v.SetDefault("vehicle.mass", veh.Mass)
	v.SetDefault("vehicle.inertia", veh.Inertia)
	v.SetDefault("simulation.step", sim.Step)
	v.SetDefault("simulation.duration", sim.Duration)
	v.SetDefault("environment.g", env.G)
	v.SetDefault("environment.water_density", env.WaterDensity)
	v.SetDefault("environment.atmospheric_pressure", env.AtmosphericPressure)
	v.SetDefault("export.output_dir", ".")
	return v
}

func scenarioFromViper(v *viper.Viper) (Scenario, error) {
	s := Scenario{Name: v.GetString("name")}
	if !v.IsSet("thrusters.forces") {
		return s, errors.New("scenario is missing `thrusters.forces`")
	}
	if err := v.UnmarshalKey("thrusters.forces", &s.Thrusters); err != nil {
		return s, fmt.Errorf("could not understand `thrusters.forces`: %w", err)
	}
	s.Alpha = v.GetFloat64("thrusters.alpha")
	s.Vehicle = Vehicle{
		Mass:     v.GetFloat64("vehicle.mass"),
		Inertia:  v.GetFloat64("vehicle.inertia"),
		MajorArm: v.GetFloat64("vehicle.major_arm"),
		MinorArm: v.GetFloat64("vehicle.minor_arm"),
	}
	s.Sim = SimConfig{
		Step:     v.GetFloat64("simulation.step"),
		Duration: v.GetFloat64("simulation.duration"),
		X0:       v.GetFloat64("simulation.x0"),
		Y0:       v.GetFloat64("simulation.y0"),
		Theta0:   v.GetFloat64("simulation.theta0"),
	}
	s.Environment = Environment{
		G:                   v.GetFloat64("environment.g"),
		WaterDensity:        v.GetFloat64("environment.water_density"),
		AtmosphericPressure: v.GetFloat64("environment.atmospheric_pressure"),
	}
	s.Export = ExportConfig{
		OutputDir: v.GetString("export.output_dir"),
		Filename:  v.GetString("export.filename"),
		AsCSV:     v.GetBool("export.csv"),
		Plot:      v.GetBool("export.plot"),
		Timestamp: v.GetBool("export.timestamp"),
	}
	if s.Export.Timestamp {
		s.Export.Stamp = time.Now()
	}
	if s.Export.Filename == "" {
		s.Export.Filename = s.Name
	}
	if err := v.UnmarshalKey("sweep.alphas", &s.Sweep.Alphas); err != nil {
		return s, fmt.Errorf("could not understand `sweep.alphas`: %w", err)
	}
	if err := v.UnmarshalKey("sweep.scales", &s.Sweep.Scales); err != nil {
		return s, fmt.Errorf("could not understand `sweep.scales`: %w", err)
	}
	s.Sweep.Workers = v.GetInt("sweep.workers")
	return s, s.Validate()
}
