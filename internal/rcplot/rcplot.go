// Public domain.

// Package rcplot draws the rotation curve and boost profile of a galaxy.
package rcplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/geobridge/geobridge/bridge"
)

// Image size.
var (
	Width  = 7 * vg.Inch
	Height = 5 * vg.Inch
)

// File name suffixes appended to the prefix given to Save.
const (
	CurveSuffix = "_curve.png"
	BoostSuffix = "_boost.png"
)

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return pts
}

func observed(pts plotter.XYs) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(2.5)
	return s, nil
}

var dashes = []vg.Length{vg.Points(5), vg.Points(3)}

// Curve plots the observed velocities with error bars, the Newtonian
// baryonic curve and the geometric bridge prediction.
func Curve(s *bridge.Sample, ml bridge.ML, a0 float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s  M/L disk %.2f bulge %.2f",
		s.Name, ml.Disk, ml.Bul)
	p.X.Label.Text = "Radius (kpc)"
	p.Y.Label.Text = "Velocity (km/s)"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	obs := make(errPoints, len(s.R))
	for i := range s.R {
		obs[i].x, obs[i].y, obs[i].err = s.R[i], s.VObs[i], s.EV[i]
	}
	sc, err := observed(xys(s.R, s.VObs))
	if err != nil {
		return nil, err
	}
	eb, err := plotter.NewYErrorBars(obs)
	if err != nil {
		return nil, err
	}

	newton, err := plotter.NewLine(xys(s.R, bridge.BaryonicVelocity(s.Components, ml)))
	if err != nil {
		return nil, err
	}
	newton.LineStyle.Dashes = dashes
	newton.LineStyle.Color = plotutil.Color(2)

	geo, err := plotter.NewLine(xys(s.R, bridge.PredictRotationCurve(s.Components, ml, a0)))
	if err != nil {
		return nil, err
	}
	geo.LineStyle.Width = vg.Points(2)
	geo.LineStyle.Color = plotutil.Color(1)

	p.Add(eb, sc, newton, geo)
	p.Legend.Add("Observed", sc)
	p.Legend.Add("Newton (V_bar)", newton)
	p.Legend.Add("Geometric bridge", geo)
	p.Legend.Top = true
	return p, nil
}

// Boost plots the observed ratio V_obs/V_bar, the predicted boost and the
// Newtonian boost of one.
func Boost(s *bridge.Sample, ml bridge.ML, a0 float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Name + "  boost profile"
	p.X.Label.Text = "Radius (kpc)"
	p.Y.Label.Text = "Boost = V_obs / V_bar"
	p.Add(plotter.NewGrid())

	vBar := bridge.BaryonicVelocity(s.Components, ml)
	ratio := make([]float64, len(vBar))
	for i, vb := range vBar {
		ratio[i] = s.VObs[i] / math.Max(vb, .01)
	}
	sc, err := observed(xys(s.R, ratio))
	if err != nil {
		return nil, err
	}
	pred, err := plotter.NewLine(xys(s.R, bridge.Boost(s.Components, ml, a0)))
	if err != nil {
		return nil, err
	}
	pred.LineStyle.Width = vg.Points(2)
	pred.LineStyle.Color = plotutil.Color(1)

	unity := plotter.NewFunction(func(float64) float64 { return 1 })
	unity.LineStyle.Dashes = dashes
	unity.LineStyle.Color = plotutil.Color(2)

	p.Add(sc, pred, unity)
	p.Legend.Add("V_obs/V_bar (observed)", sc)
	p.Legend.Add("Formula prediction", pred)
	p.Legend.Add("Newton (boost 1)", unity)
	p.Legend.Top = true
	return p, nil
}

// Save writes prefix+CurveSuffix and prefix+BoostSuffix.
func Save(prefix string, s *bridge.Sample, ml bridge.ML, a0 float64) error {
	for _, f := range []struct {
		suffix string
		draw   func(*bridge.Sample, bridge.ML, float64) (*plot.Plot, error)
	}{
		{CurveSuffix, Curve},
		{BoostSuffix, Boost},
	} {
		p, err := f.draw(s, ml, a0)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		if err := p.Save(Width, Height, prefix+f.suffix); err != nil {
			return err
		}
	}
	return nil
}

// errPoints are observations with symmetric velocity errors.  It
// implements plotter.XYer and plotter.YErrorer.
type errPoints []struct{ x, y, err float64 }

func (e errPoints) Len() int                        { return len(e) }
func (e errPoints) XY(i int) (float64, float64)     { return e[i].x, e[i].y }
func (e errPoints) YError(i int) (float64, float64) { return e[i].err, e[i].err }
