// Public domain.

// Package synth makes repeatable synthetic rotation curves.
//
// A synthetic galaxy has an analytic mass model, a rising disk, a
// concentrated bulge and slowly rising gas, and an observed curve predicted
// by the geometric bridge law at a chosen mass-to-light pair, optionally
// with Gaussian noise.  The same seed always gives the same galaxies.
package synth

import (
	"fmt"
	"math"

	xrand "golang.org/x/exp/rand"

	"github.com/geobridge/geobridge/bridge"
)

// Generator produces synthetic samples from a seeded random source.
type Generator struct {
	rnd  *xrand.Rand
	a0   float64
	n    int
	next int
}

// New returns a generator seeded with seed.
func New(seed uint64, a0 float64) *Generator {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(seed)
	return &Generator{rnd: rnd, a0: a0, n: 15}
}

// uniform returns a value in [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rnd.Float64()
}

// Sample returns the next synthetic galaxy observed at ml.
//
// The velocity uncertainty of every point is noise, floored at 1 km/s; the
// observed velocities are perturbed by that much Gaussian noise if noise is
// positive and exact otherwise.
func (g *Generator) Sample(ml bridge.ML, noise float64) *bridge.Sample {
	g.next++
	vd, rd := g.uniform(60, 200), g.uniform(1.5, 5)
	vb, rb := g.uniform(80, 250), g.uniform(.2, .8)
	vg, rg := g.uniform(10, 50), g.uniform(3, 10)
	rMax := g.uniform(4, 8) * rd

	s := &bridge.Sample{
		Name: fmt.Sprintf("SYN%03d", g.next),
		Type: -1,
	}
	ev := math.Max(noise, 1)
	for i := 1; i <= g.n; i++ {
		r := rMax * float64(i) / float64(g.n)
		s.R = append(s.R, r)
		s.Gas = append(s.Gas, vg*r/(r+rg))
		s.Disk = append(s.Disk, vd*r/(r+rd))
		s.Bul = append(s.Bul, 2*vb*math.Sqrt(r*rb)/(r+rb))
		s.EV = append(s.EV, ev)
	}
	s.VObs = bridge.PredictRotationCurve(s.Components, ml, g.a0)
	if noise > 0 {
		for i := range s.VObs {
			s.VObs[i] = math.Max(s.VObs[i]+noise*g.rnd.NormFloat64(), 0)
		}
	}
	return s
}

// ML draws a mass-to-light pair with both ratios in [lo, hi).
func (g *Generator) ML(lo, hi float64) bridge.ML {
	return bridge.ML{Disk: g.uniform(lo, hi), Bul: g.uniform(lo, hi)}
}
