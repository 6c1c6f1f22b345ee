// Public domain.

package compare

import (
	"io"
	"math"

	"github.com/geobridge/geobridge/bridge"
	"github.com/geobridge/geobridge/rcstat"
)

// CorrelationFile is the csv file written by the correlation analysis.
const CorrelationFile = "correlation_analysis_results.csv"

// Regime is a coarse surface density class of the correlation analysis.
type Regime int

const (
	Enhanced     Regime = iota // Σ < 10
	Active                     // Σ < 100
	Transitional               // Σ < 1000
	Newtonian
)

var regimeNames = [...]string{"Enhanced", "Active", "Transitional", "Newtonian"}

func (r Regime) String() string { return regimeNames[r] }

// RegimeOf classifies a surface density in M_sun/pc².
func RegimeOf(sigma float64) Regime {
	switch {
	case sigma < 10:
		return Enhanced
	case sigma < 100:
		return Active
	case sigma < 1000:
		return Transitional
	}
	return Newtonian
}

// Strength describes the magnitude of a correlation coefficient.
func Strength(r float64) string {
	switch r = math.Abs(r); {
	case r > .5:
		return "Very strong"
	case r > .3:
		return "Moderate"
	case r > .1:
		return "Weak"
	}
	return "None"
}

// Property is the correlation of one galaxy property with α.
type Property struct {
	Name string
	R, P float64
}

// CorrelationRow is one galaxy of the correlation analysis.
type CorrelationRow struct {
	DasGalaxy
	Sigma     float64
	Predicted float64 // from the regression
	Residual  float64 // fitted minus predicted
	Percent   float64 // absolute residual as percent of fitted
	Regime    Regime
}

// CorrelationResult is the outcome of the correlation analysis.
type CorrelationResult struct {
	Rows       []CorrelationRow
	Properties []Property // log Σ, log M, log R_max in that order
	Fit        rcstat.Regression

	RMSE, MAE, MeanPercent float64
}

// Correlate correlates α of the Das sample with surface density, mass and
// radius and fits α = a + b·log Σ.
func Correlate(das []DasGalaxy) (CorrelationResult, error) {
	var c CorrelationResult
	n := len(das)
	logS := make([]float64, n)
	logM := make([]float64, n)
	logR := make([]float64, n)
	alpha := make([]float64, n)
	for i, g := range das {
		s := bridge.SurfaceDensity(g.MBar, g.RMax)
		c.Rows = append(c.Rows, CorrelationRow{DasGalaxy: g, Sigma: s,
			Regime: RegimeOf(s)})
		logS[i] = math.Log10(s)
		logM[i] = math.Log10(g.MBar)
		logR[i] = math.Log10(g.RMax)
		alpha[i] = g.Alpha
	}
	for _, p := range []struct {
		name string
		x    []float64
	}{
		{"log10(Σ)", logS},
		{"log10(M_total)", logM},
		{"log10(R_max)", logR},
	} {
		reg, err := rcstat.Linregress(p.x, alpha)
		if err != nil {
			return c, err
		}
		c.Properties = append(c.Properties, Property{p.name, reg.R, reg.P})
	}

	var err error
	if c.Fit, err = rcstat.Linregress(logS, alpha); err != nil {
		return c, err
	}
	res := make([]float64, n)
	pct := make([]float64, n)
	for i := range c.Rows {
		r := &c.Rows[i]
		r.Predicted = c.Fit.At(logS[i])
		r.Residual = r.Alpha - r.Predicted
		r.Percent = 100 * math.Abs(r.Residual) / r.Alpha
		res[i] = r.Residual
		pct[i] = r.Percent
	}
	c.RMSE = rcstat.RMS(res)
	c.MAE = rcstat.MAE(res)
	c.MeanPercent = rcstat.Mean(pct)
	return c, nil
}

// RegimeCounts returns the number of galaxies in each regime.
func (c CorrelationResult) RegimeCounts() (n [Newtonian + 1]int) {
	for _, r := range c.Rows {
		n[r.Regime]++
	}
	return
}

// WriteReport writes a plain text report.
func (c CorrelationResult) WriteReport(w io.Writer) error {
	p := &printer{w: w}
	p.rule("SURFACE DENSITY CORRELATION ANALYSIS")
	p.f("\nSample size: N = %d galaxies\n", len(c.Rows))
	p.f("\n%-20s %11s %11s  %s\n", "Property", "Pearson r", "p-value",
		"Interpretation")
	for _, pr := range c.Properties {
		p.f("%-20s %11.3f %11.2e  %s\n", pr.Name, pr.R, pr.P, Strength(pr.R))
	}

	f := c.Fit
	p.f("\nLinear regression: α = a + b × log10(Σ)\n")
	p.f("  Intercept (a): %.4f ± %.4f\n", f.Intercept, f.InterceptStdErr)
	p.f("  Slope (b):     %.4f ± %.4f\n", f.Slope, f.StdErr)
	p.f("  Pearson r:     %.4f\n", f.R)
	p.f("  p-value:       %.2e\n", f.P)
	p.f("  R²:            %.4f\n", f.R2())
	p.f("\nError statistics:\n")
	p.f("  RMSE:          %.4f\n", c.RMSE)
	p.f("  MAE:           %.4f\n", c.MAE)
	p.f("  Mean %% error:  %.2f%%\n", c.MeanPercent)
	p.f("\nFormula: α = %.3f - %.3f × log10(Σ / M_sun pc⁻²)\n",
		f.Intercept, math.Abs(f.Slope))

	p.f("\nRegimes:\n")
	for r, n := range c.RegimeCounts() {
		if n > 0 {
			p.f("  %-13s %d galaxies\n", Regime(r), n)
		}
	}
	return p.err
}

// WriteCSV writes the per galaxy table.
func (c CorrelationResult) WriteCSV(w io.Writer) error {
	rows := [][]string{{"galaxy", "m_bar_1e9", "r_max_kpc", "alpha_das",
		"sigma", "alpha_predicted", "residual", "percent_error", "regime"}}
	for _, r := range c.Rows {
		rows = append(rows, []string{r.Name, ff(r.MBar), ff(r.RMax),
			ff(r.Alpha), ff(r.Sigma), ff(r.Predicted), ff(r.Residual),
			ff(r.Percent), r.Regime.String()})
	}
	return writeCSV(w, rows)
}

// RunCorrelate runs the correlation analysis on the built in Das sample.
func RunCorrelate(w io.Writer, dir string) error {
	s, err := Load()
	if err != nil {
		return err
	}
	c, err := Correlate(s.Das)
	if err != nil {
		return err
	}
	if err := c.WriteReport(w); err != nil {
		return err
	}
	return save(dir, CorrelationFile, c.WriteCSV)
}
