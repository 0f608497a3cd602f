package main

import (
	"errors"
	"math"

	"github.com/ChristopherRabotin/auv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func savePlot(p *plot.Plot, xys plotter.XYs, filename string) error {
	if len(xys) == 0 {
		return errors.New("empty trajectory")
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)
	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}

// plotPath plots the x-y path of the vehicle.
func plotPath(filename, title string, traj *auv.Trajectory) error {
	p := newPlot(title+" path", "x (m)", "y (m)")
	xys := make(plotter.XYs, traj.Len())
	for i := range xys {
		xys[i].X, xys[i].Y = traj.X[i], traj.Y[i]
	}
	return savePlot(p, xys, filename)
}

// plotHeading plots the unwrapped heading in degrees over time.
func plotHeading(filename, title string, traj *auv.Trajectory) error {
	p := newPlot(title+" heading", "t (s)", "θ (deg)")
	xys := make(plotter.XYs, traj.Len())
	for i := range xys {
		xys[i].X, xys[i].Y = traj.T[i], traj.Theta[i]*180/math.Pi
	}
	return savePlot(p, xys, filename)
}
