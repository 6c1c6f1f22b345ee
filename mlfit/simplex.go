// Public domain.

package mlfit

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Nelder-Mead coefficients: reflection, expansion, contraction, shrink.
const (
	rho   = 1.
	chi   = 2.
	psi   = .5
	sigma = .5
)

// initial simplex perturbation
const (
	nonzDelt = .05
	zDelt    = .00025
)

// simplex is the workspace of a Nelder-Mead minimization.
//
// Vertices are kept sorted by function value, best first.
type simplex struct {
	f            func([]float64) float64
	xatol, fatol float64
	maxIter      int

	sim  [][]float64
	fsim []float64

	// results
	iter      int
	converged bool
}

func newSimplex(f func([]float64) float64, x0 []float64,
	xatol, fatol float64, maxIter int) *simplex {

	n := len(x0)
	s := &simplex{
		f:       f,
		xatol:   xatol,
		fatol:   fatol,
		maxIter: maxIter,
		sim:     make([][]float64, n+1),
		fsim:    make([]float64, n+1),
	}
	s.sim[0] = append([]float64{}, x0...)
	for k := 0; k < n; k++ {
		y := append([]float64{}, x0...)
		if y[k] != 0 {
			y[k] *= 1 + nonzDelt
		} else {
			y[k] = zDelt
		}
		s.sim[k+1] = y
	}
	return s
}

func (s *simplex) Len() int           { return len(s.fsim) }
func (s *simplex) Less(i, j int) bool { return s.fsim[i] < s.fsim[j] }
func (s *simplex) Swap(i, j int) {
	s.sim[i], s.sim[j] = s.sim[j], s.sim[i]
	s.fsim[i], s.fsim[j] = s.fsim[j], s.fsim[i]
}

// spread tests the convergence criteria: every vertex within xatol of the
// best in each coordinate, and every value within fatol of the best.
func (s *simplex) spread() bool {
	best := s.sim[0]
	for _, v := range s.sim[1:] {
		for k, x := range v {
			if math.Abs(x-best[k]) > s.xatol {
				return false
			}
		}
	}
	for _, fv := range s.fsim[1:] {
		if math.Abs(s.fsim[0]-fv) > s.fatol {
			return false
		}
	}
	return true
}

// point returns (1+c)·xbar - c·worst.
func point(xbar, worst []float64, c float64) []float64 {
	p := make([]float64, len(xbar))
	floats.ScaleTo(p, 1+c, xbar)
	floats.AddScaled(p, -c, worst)
	return p
}

// minimize runs the search and returns the best vertex and its value.
func (s *simplex) minimize() ([]float64, float64) {
	for i, v := range s.sim {
		s.fsim[i] = s.f(v)
	}
	sort.Stable(s)

	n := len(s.sim) - 1
	xbar := make([]float64, n)
	s.iter = 1
	for ; s.iter < s.maxIter; s.iter++ {
		if s.spread() {
			s.converged = true
			break
		}
		// centroid of all but the worst vertex
		for k := range xbar {
			xbar[k] = 0
		}
		for _, v := range s.sim[:n] {
			floats.Add(xbar, v)
		}
		floats.Scale(1/float64(n), xbar)

		worst := s.sim[n]
		xr := point(xbar, worst, rho)
		fxr := s.f(xr)
		switch {
		case fxr < s.fsim[0]:
			xe := point(xbar, worst, rho*chi)
			if fxe := s.f(xe); fxe < fxr {
				s.sim[n], s.fsim[n] = xe, fxe
			} else {
				s.sim[n], s.fsim[n] = xr, fxr
			}
		case fxr < s.fsim[n-1]:
			s.sim[n], s.fsim[n] = xr, fxr
		case fxr < s.fsim[n]:
			// outside contraction
			xc := point(xbar, worst, psi*rho)
			if fxc := s.f(xc); fxc <= fxr {
				s.sim[n], s.fsim[n] = xc, fxc
			} else {
				s.shrink()
			}
		default:
			// inside contraction
			xcc := point(xbar, worst, -psi)
			if fxcc := s.f(xcc); fxcc < s.fsim[n] {
				s.sim[n], s.fsim[n] = xcc, fxcc
			} else {
				s.shrink()
			}
		}
		sort.Stable(s)
	}
	return append([]float64{}, s.sim[0]...), s.fsim[0]
}

// shrink moves every vertex halfway toward the best.
func (s *simplex) shrink() {
	best := s.sim[0]
	for j := 1; j < len(s.sim); j++ {
		v := s.sim[j]
		for k := range v {
			v[k] = best[k] + sigma*(v[k]-best[k])
		}
		s.fsim[j] = s.f(v)
	}
}
