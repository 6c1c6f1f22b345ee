// Public domain.

// Package mlfit fits stellar mass-to-light ratios of a rotation curve
// sample under the geometric bridge law.
//
// The fit minimizes
//
//	χ² = Σ ((v_obs - v_pred)/max(e_v, 0.5))²
//
// with a derivative-free simplex search.  Bounds are enforced by a penalty:
// a proposal outside the box scores 1e12.
package mlfit

import (
	"math"

	"github.com/geobridge/geobridge/bridge"
	"github.com/geobridge/geobridge/rcstat"
)

const (
	// Penalty is the objective value of a proposal outside the bounds.
	Penalty = 1e12

	// MinErr is the floor applied to velocity uncertainties, km/s.
	MinErr = 0.5
)

// Bounds is a closed interval for one mass-to-light ratio.
type Bounds struct {
	Lo, Hi float64
}

// Contains reports whether Lo <= x <= Hi.
func (b Bounds) Contains(x float64) bool { return x >= b.Lo && x <= b.Hi }

// Clamp projects x into b.
func (b Bounds) Clamp(x float64) float64 { return math.Max(b.Lo, math.Min(b.Hi, x)) }

// ordered returns b with Lo <= Hi.
func (b Bounds) ordered() Bounds {
	if b.Lo > b.Hi {
		b.Lo, b.Hi = b.Hi, b.Lo
	}
	return b
}

// Default fit parameters.
var (
	DiskBounds  = Bounds{Lo: 0.05, Hi: 6.0}
	BulgeBounds = Bounds{Lo: 0.05, Hi: 8.0}
)

const (
	DefaultTol           = 1e-4
	DefaultMaxIter       = 800
	DefaultMaxIterSingle = 400
)

// Result is the outcome of one fit.
//
// ML is always within the configured bounds.  RMS and R2 describe the
// prediction at ML; R2 may be rcstat.Undefined.  Success is false only when
// the iteration cap was reached before convergence.
type Result struct {
	ML          bridge.ML
	RMS, R2     float64
	Chi2        float64
	Success     bool
	Iterations  int
	Evaluations int
}

// Fitter holds the fit parameters.  The zero value is not usable, construct
// with New.
type Fitter struct {
	a0                   float64
	start                bridge.ML
	disk, bulge          Bounds
	xatol, fatol         float64
	maxIter, maxIterSing int
}

// Option configures a Fitter.
type Option func(*Fitter)

// WithA0 sets the acceleration scale.
func WithA0(a0 float64) Option { return func(f *Fitter) { f.a0 = a0 } }

// WithStart sets the starting point of the search.  The single ratio fit
// starts from start.Disk.
func WithStart(start bridge.ML) Option { return func(f *Fitter) { f.start = start } }

// WithDiskBounds sets the disk bounds, also used by the single ratio fit.
func WithDiskBounds(b Bounds) Option { return func(f *Fitter) { f.disk = b } }

// WithBulgeBounds sets the bulge bounds.
func WithBulgeBounds(b Bounds) Option { return func(f *Fitter) { f.bulge = b } }

// WithTolerance sets the convergence tolerances on parameters and on χ².
func WithTolerance(xatol, fatol float64) Option {
	return func(f *Fitter) { f.xatol, f.fatol = xatol, fatol }
}

// WithMaxIter sets the iteration caps of the two parameter and the single
// ratio fits.
func WithMaxIter(two, single int) Option {
	return func(f *Fitter) { f.maxIter, f.maxIterSing = two, single }
}

// New creates a Fitter with defaults overridden by opts.  Bounds given with
// Lo > Hi are swapped.
func New(opts ...Option) *Fitter {
	f := &Fitter{
		a0:          bridge.A0,
		start:       bridge.DefaultML,
		disk:        DiskBounds,
		bulge:       BulgeBounds,
		xatol:       DefaultTol,
		fatol:       DefaultTol,
		maxIter:     DefaultMaxIter,
		maxIterSing: DefaultMaxIterSingle,
	}
	for _, o := range opts {
		o(f)
	}
	f.disk = f.disk.ordered()
	f.bulge = f.bulge.ordered()
	return f
}

var defaultFitter = New()

// FitML fits disk and bulge ratios independently using default parameters.
func FitML(s *bridge.Sample) Result { return defaultFitter.FitML(s) }

// FitMLSingle fits one ratio shared by disk and bulge using default
// parameters.
func FitMLSingle(s *bridge.Sample) Result { return defaultFitter.FitMLSingle(s) }

// Chi2 returns the uncertainty weighted squared residual of the prediction
// at ml.  No bounds are applied.
func (f *Fitter) Chi2(s *bridge.Sample, ml bridge.ML) float64 {
	v := bridge.PredictRotationCurve(s.Components, ml, f.a0)
	var chi2 float64
	for i, vo := range s.VObs {
		d := (vo - v[i]) / math.Max(s.EV[i], MinErr)
		chi2 += d * d
	}
	return chi2
}

// objective wraps Chi2 with the bounds penalty and remembers the best
// in-bounds point seen.
type objective struct {
	f     *Fitter
	s     *bridge.Sample
	ml    func(x []float64) bridge.ML
	in    func(x []float64) bool
	nEval int

	best     []float64
	bestChi2 float64
}

func (o *objective) eval(x []float64) float64 {
	o.nEval++
	if !o.in(x) {
		return Penalty
	}
	c := o.f.Chi2(o.s, o.ml(x))
	if o.best == nil || c < o.bestChi2 {
		o.best = append(o.best[:0], x...)
		o.bestChi2 = c
	}
	return c
}

// FitML fits disk and bulge ratios independently.
func (f *Fitter) FitML(s *bridge.Sample) Result {
	o := &objective{
		f:  f,
		s:  s,
		ml: func(x []float64) bridge.ML { return bridge.ML{Disk: x[0], Bul: x[1]} },
		in: func(x []float64) bool {
			return f.disk.Contains(x[0]) && f.bulge.Contains(x[1])
		},
	}
	x0 := []float64{f.disk.Clamp(f.start.Disk), f.bulge.Clamp(f.start.Bul)}
	return f.run(o, x0, f.maxIter)
}

// FitMLSingle fits one ratio shared by disk and bulge.  The disk bounds
// apply.
func (f *Fitter) FitMLSingle(s *bridge.Sample) Result {
	o := &objective{
		f:  f,
		s:  s,
		ml: func(x []float64) bridge.ML { return bridge.Shared(x[0]) },
		in: func(x []float64) bool { return f.disk.Contains(x[0]) },
	}
	x0 := []float64{f.disk.Clamp(f.start.Disk)}
	return f.run(o, x0, f.maxIterSing)
}

func (f *Fitter) run(o *objective, x0 []float64, maxIter int) Result {
	nm := newSimplex(o.eval, x0, f.xatol, f.fatol, maxIter)
	x, fx := nm.minimize()
	if !o.in(x) && o.best != nil {
		// every in-bounds χ² was above the penalty
		x, fx = o.best, o.bestChi2
	}
	ml := o.ml(x)
	v := bridge.PredictRotationCurve(o.s.Components, ml, f.a0)
	return Result{
		ML:          ml,
		RMS:         rcstat.RMSResidual(o.s.VObs, v),
		R2:          rcstat.RSquared(o.s.VObs, v),
		Chi2:        fx,
		Success:     nm.converged,
		Iterations:  nm.iter,
		Evaluations: o.nEval,
	}
}
