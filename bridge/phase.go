// Public domain.

package bridge

import "math"

// Surface density formulas.
//
// These predict the rotation curve exponent α (also written n) of a galaxy
// from its baryonic surface density Σ in M_sun/pc².  The original formula is
// a single log-linear law; the refined formula splits Σ into three phases.

// Phase boundaries in M_sun/pc².
const (
	PhaseIMax  = 0.05
	PhaseIIMax = 0.5
)

// Phase is a surface density regime of the refined formula.
type Phase int

const (
	PhaseI   Phase = iota // geometric dominant, Σ < 0.05
	PhaseII               // transitional, 0.05 ≤ Σ < 0.5
	PhaseIII              // baryon dominant, Σ ≥ 0.5
)

var phaseNames = [...]string{"Phase I", "Phase II", "Phase III"}

func (p Phase) String() string {
	if p < PhaseI || p > PhaseIII {
		return "Phase ?"
	}
	return phaseNames[p]
}

// PhaseOf classifies a surface density.
func PhaseOf(sigma float64) Phase {
	switch {
	case sigma < PhaseIMax:
		return PhaseI
	case sigma < PhaseIIMax:
		return PhaseII
	}
	return PhaseIII
}

// OriginalAlpha is the single law α = 1.972 − 0.487·log10 Σ.
func OriginalAlpha(sigma float64) float64 {
	return 1.972 - 0.487*math.Log10(sigma)
}

// phase coefficients: α = a + b·log10 Σ, coherence scale κ.
var phaseCoef = [...]struct{ a, b, kappa float64 }{
	PhaseI:   {2.80, -0.32, 0.55},
	PhaseII:  {2.20, -0.50, 0.75},
	PhaseIII: {1.40, -0.20, 0.95},
}

// RefinedAlpha is the three phase law.
func RefinedAlpha(sigma float64) float64 {
	c := phaseCoef[PhaseOf(sigma)]
	return c.a + c.b*math.Log10(sigma)
}

// OriginalKappa is the coherence scale factor of the original formula.
func OriginalKappa() float64 { return 0.6 }

// RefinedKappa is the phase dependent coherence scale factor.
func RefinedKappa(sigma float64) float64 {
	return phaseCoef[PhaseOf(sigma)].kappa
}

// SurfaceDensity returns Σ = M/R² in M_sun/pc² for a mass in units of
// 1e9 M_sun and a radius in kpc.
func SurfaceDensity(mBar9, rMax float64) float64 {
	return mBar9 / (rMax * rMax) * 1000
}

// DiskSurfaceDensity returns Σ = M/(πR²) in M_sun/pc² for a mass in M_sun
// and a radius in kpc.
func DiskSurfaceDensity(mBar, rMax float64) float64 {
	rpc := rMax * 1000
	return mBar / (math.Pi * rpc * rpc)
}

// Rotation curve shapes predicted from α.
const (
	ShapeRising      = "Rising (Strong DM)"
	ShapeFlatRising  = "Flat/Rising"
	ShapeFlatFalling = "Flat/Falling"
	ShapeKeplerian   = "Falling (Keplerian)"
)

// CurveShape maps an exponent α to the expected rotation curve shape.
func CurveShape(alpha float64) string {
	switch {
	case alpha > 1.5:
		return ShapeRising
	case alpha > 1.0:
		return ShapeFlatRising
	case alpha > 0.5:
		return ShapeFlatFalling
	}
	return ShapeKeplerian
}
