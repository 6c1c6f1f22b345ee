// Public domain.

package compare

import (
	"io"
	"math"

	"github.com/geobridge/geobridge/bridge"
	"github.com/geobridge/geobridge/rcstat"
)

// FrameworkFile is the csv file written by the framework comparison.
const FrameworkFile = "framework_comparison_results.csv"

// Score summarizes the agreement of a formula with fitted exponents.
type Score struct {
	RMSE, MAE float64
	R, P      float64 // Pearson correlation of predicted with fitted
}

func score(pred, obs []float64) Score {
	res := make([]float64, len(obs))
	for i := range obs {
		res[i] = obs[i] - pred[i]
	}
	s := Score{RMSE: rcstat.RMS(res), MAE: rcstat.MAE(res)}
	if reg, err := rcstat.Linregress(pred, obs); err == nil {
		s.R, s.P = reg.R, reg.P
	} else {
		s.R, s.P = rcstat.Pearson(pred, obs), rcstat.Undefined
	}
	return s
}

// Prediction is the original and refined exponent for one surface density.
type Prediction struct {
	Sigma                   float64
	Original, Refined       float64
	ErrOriginal, ErrRefined float64 // absolute error against the fitted α
}

func predict(sigma, alpha float64) Prediction {
	p := Prediction{
		Sigma:    sigma,
		Original: bridge.OriginalAlpha(sigma),
		Refined:  bridge.RefinedAlpha(sigma),
	}
	p.ErrOriginal = math.Abs(alpha - p.Original)
	p.ErrRefined = math.Abs(alpha - p.Refined)
	return p
}

// DasRow is one galaxy of the calibration sample.
type DasRow struct {
	DasGalaxy
	Prediction
	Phase bridge.Phase
}

// AnchorRow is one anchor galaxy.  Its mass is the Tully-Fisher estimate
// 50·V⁴ and its characteristic radius twice the disk scale length.
type AnchorRow struct {
	Anchor
	MBar, RChar float64 // 1e9 M_sun, kpc
	Prediction
}

// PhaseScore is the RMSE of both formulas within one phase.
type PhaseScore struct {
	Phase             bridge.Phase
	N                 int
	Original, Refined float64
}

// FrameworkResult is the outcome of the framework comparison.
type FrameworkResult struct {
	Das               []DasRow
	Original, Refined Score

	Anchor                        []AnchorRow
	AnchorOriginal, AnchorRefined float64 // RMSE

	Phases []PhaseScore

	// RMSE over the Das and anchor samples together
	OverallOriginal, OverallRefined float64
}

// Framework compares the original and refined formulas on the Das and
// anchor samples.
func Framework(s *Samples) FrameworkResult {
	var f FrameworkResult
	var po, pr, alpha []float64
	for _, g := range s.Das {
		p := predict(bridge.SurfaceDensity(g.MBar, g.RMax), g.Alpha)
		f.Das = append(f.Das, DasRow{g, p, bridge.PhaseOf(p.Sigma)})
		po = append(po, p.Original)
		pr = append(pr, p.Refined)
		alpha = append(alpha, g.Alpha)
	}
	f.Original = score(po, alpha)
	f.Refined = score(pr, alpha)

	var ao, ar []float64
	for _, a := range s.Anchor {
		m := 50 * math.Pow(a.VFlat, 4) / 1e9
		r := 2 * a.H
		p := predict(bridge.SurfaceDensity(m, r), a.Alpha)
		f.Anchor = append(f.Anchor, AnchorRow{a, m, r, p})
		ao = append(ao, p.ErrOriginal)
		ar = append(ar, p.ErrRefined)
	}
	f.AnchorOriginal = rcstat.RMS(ao)
	f.AnchorRefined = rcstat.RMS(ar)

	for ph := bridge.PhaseI; ph <= bridge.PhaseIII; ph++ {
		var eo, er []float64
		for _, d := range f.Das {
			if d.Phase == ph {
				eo = append(eo, d.ErrOriginal)
				er = append(er, d.ErrRefined)
			}
		}
		if len(eo) > 0 {
			f.Phases = append(f.Phases,
				PhaseScore{ph, len(eo), rcstat.RMS(eo), rcstat.RMS(er)})
		}
	}

	nd, na := float64(len(f.Das)), float64(len(f.Anchor))
	pooled := func(d, a float64) float64 {
		return math.Sqrt((d*d*nd + a*a*na) / (nd + na))
	}
	f.OverallOriginal = pooled(f.Original.RMSE, f.AnchorOriginal)
	f.OverallRefined = pooled(f.Refined.RMSE, f.AnchorRefined)
	return f
}

func winner(original, refined float64) string {
	if refined < original {
		return "REFINED"
	}
	return "ORIGINAL"
}

// Improvement is the percent reduction in Das sample RMSE of the refined
// formula over the original.  It is negative if the refined formula is
// worse.
func (f FrameworkResult) Improvement() float64 {
	return (f.Original.RMSE - f.Refined.RMSE) / f.Original.RMSE * 100
}

// WriteReport writes a plain text report.
func (f FrameworkResult) WriteReport(w io.Writer) error {
	p := &printer{w: w}
	p.rule("FRAMEWORK COMPARISON: ORIGINAL VS REFINED")
	p.f("\nDas sample, %d galaxies\n", len(f.Das))
	p.f("  ORIGINAL: RMSE = %.4f, MAE = %.4f, r = %.4f\n",
		f.Original.RMSE, f.Original.MAE, f.Original.R)
	p.f("  REFINED:  RMSE = %.4f, MAE = %.4f, r = %.4f\n",
		f.Refined.RMSE, f.Refined.MAE, f.Refined.R)
	p.f("  WINNER: %s (ΔRMSE = %.4f)\n", winner(f.Original.RMSE, f.Refined.RMSE),
		math.Abs(f.Original.RMSE-f.Refined.RMSE))

	p.f("\nAnchor galaxies\n")
	p.f("%-12s %9s %7s %7s %7s %7s %7s\n",
		"Galaxy", "Σ", "n_exp", "n_orig", "n_ref", "Err_O", "Err_R")
	for _, a := range f.Anchor {
		p.f("%-12s %9.2f %7.2f %7.2f %7.2f %7.3f %7.3f\n", a.Name, a.Sigma,
			a.Alpha, a.Original, a.Refined, a.ErrOriginal, a.ErrRefined)
	}
	p.f("  ORIGINAL RMSE: %.4f\n  REFINED RMSE:  %.4f\n  WINNER: %s\n",
		f.AnchorOriginal, f.AnchorRefined,
		winner(f.AnchorOriginal, f.AnchorRefined))

	p.f("\nPer phase\n")
	for _, ph := range f.Phases {
		p.f("  %s (n=%d): ORIGINAL %.4f  REFINED %.4f  WINNER %s\n",
			ph.Phase, ph.N, ph.Original, ph.Refined,
			winner(ph.Original, ph.Refined))
	}

	p.f("\nOverall RMSE: ORIGINAL %.4f  REFINED %.4f\n",
		f.OverallOriginal, f.OverallRefined)
	p.f("Improvement on Das sample: %.1f%%\n", f.Improvement())
	return p.err
}

// WriteCSV writes the Das sample comparison table.
func (f FrameworkResult) WriteCSV(w io.Writer) error {
	rows := [][]string{{"galaxy", "sigma", "n_das", "n_original",
		"n_refined", "error_original", "error_refined", "regime"}}
	for _, d := range f.Das {
		rows = append(rows, []string{d.Name, ff(d.Sigma), ff(d.Alpha),
			ff(d.Original), ff(d.Refined), ff(d.ErrOriginal),
			ff(d.ErrRefined), d.Phase.String()})
	}
	return writeCSV(w, rows)
}

// RunFramework runs the framework comparison on the built in samples,
// writes the report to w and the table into dir.
func RunFramework(w io.Writer, dir string) error {
	s, err := Load()
	if err != nil {
		return err
	}
	f := Framework(s)
	if err := f.WriteReport(w); err != nil {
		return err
	}
	return save(dir, FrameworkFile, f.WriteCSV)
}
