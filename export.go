package auv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang/geo/r2"
)

// csvHeader is the header of the exported trajectories. All values are in SI units and angles in radians.
var csvHeader = []string{"t", "x", "y", "theta", "vx", "vy", "omega", "ax", "ay"}

// ExportConfig configures the exporting of the simulation.
type ExportConfig struct {
	OutputDir string
	Filename  string
	AsCSV     bool
	Plot      bool
	Timestamp bool
	Stamp     time.Time // shared by all the files of a run when Timestamp is set, defaults to now
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV && !c.Plot
}

// Path returns the path of the exported file with the given extension, e.g. "csv".
func (c ExportConfig) Path(ext string) string {
	filename := "traj-" + c.Filename
	if c.Timestamp {
		t := c.Stamp
		if t.IsZero() {
			t = time.Now()
		}
		filename = fmt.Sprintf("%s-%d-%02d-%02dT%02d.%02d.%02d", filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	return filepath.Join(c.OutputDir, filename+"."+ext)
}

// WriteCSV writes the trajectory as CSV, one record per point of the time grid.
func WriteCSV(w io.Writer, traj *Trajectory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	record := make([]string, len(csvHeader))
	for i := 0; i < traj.Len(); i++ {
		s := traj.Sample(i)
		for j, val := range []float64{s.T, s.Position.X, s.Position.Y, s.Theta, s.Velocity.X, s.Velocity.Y, s.Omega, s.Acceleration.X, s.Acceleration.Y} {
			record[j] = strconv.FormatFloat(val, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a trajectory written by WriteCSV. Lines starting with `#` are ignored.
func ReadCSV(r io.Reader) (*Trajectory, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = len(csvHeader)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 || strings.Join(records[0], ",") != strings.Join(csvHeader, ",") {
		return nil, fmt.Errorf("missing header %q", strings.Join(csvHeader, ","))
	}
	traj := newTrajectory(len(records) - 1)
	for lno, record := range records[1:] {
		vals := make([]float64, len(record))
		for j, field := range record {
			if vals[j], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, fmt.Errorf("record %d, column %s: %w", lno+1, csvHeader[j], err)
			}
		}
		traj.append(Sample{vals[0], r2.Point{X: vals[1], Y: vals[2]}, vals[3], r2.Point{X: vals[4], Y: vals[5]}, vals[6], r2.Point{X: vals[7], Y: vals[8]}})
	}
	return traj, nil
}

// Export writes the trajectory to a CSV file if requested and returns the name of the file written.
func Export(conf ExportConfig, traj *Trajectory) (string, error) {
	if !conf.AsCSV {
		return "", nil
	}
	filename := conf.Path("csv")
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	// Header
	if _, err = fmt.Fprintf(f, `# Creation date (UTC): %s
# Records are <t> <x> <y> <theta> <vx> <vy> <omega> <ax> <ay>
#   Time in seconds, position in m, velocity in m/s, acceleration in m/s^2
#   Angles in radians, yaw rate in rad/s
`, time.Now().UTC()); err != nil {
		return "", err
	}
	if err = WriteCSV(f, traj); err != nil {
		return "", err
	}
	return filename, f.Close()
}
