// Public domain.

package bridge

import (
	"errors"
	"fmt"
)

// Components is the baryonic mass model of one galaxy, sampled at radii R.
//
// Gas, Disk and Bul are the velocity contributions of each component in km/s
// at a mass-to-light ratio of 1.  All four slices have the same length.
type Components struct {
	R, Gas, Disk, Bul []float64
}

// Len returns the number of radii.
func (c Components) Len() int { return len(c.R) }

// ML is a pair of stellar mass-to-light ratios.
type ML struct {
	Disk, Bul float64
}

// Conventional mass-to-light ratios at 3.6 micron.
var (
	DefaultML = ML{Disk: 0.5, Bul: 0.7} // stellar population synthesis
	FixedML   = ML{Disk: 0.5, Bul: 0.5} // zero free parameter benchmark
)

// Shared returns an ML with the same ratio for disk and bulge.
func Shared(ml float64) ML { return ML{ml, ml} }

// Sample is an observed rotation curve with its mass model.
//
// Type is the Hubble type code T, -1 when unknown.  It is carried for
// reporting only.
type Sample struct {
	Name string
	Type int
	Components
	VObs, EV []float64
}

var (
	ErrEmpty  = errors.New("bridge: empty rotation curve")
	ErrLength = errors.New("bridge: sequence length mismatch")
)

// Validate checks that all six sequences have the same, non-zero length.
func (s *Sample) Validate() error {
	n := len(s.R)
	if n == 0 {
		return ErrEmpty
	}
	for _, q := range []struct {
		name string
		v    []float64
	}{
		{"v_obs", s.VObs},
		{"e_v", s.EV},
		{"v_gas", s.Gas},
		{"v_disk", s.Disk},
		{"v_bul", s.Bul},
	} {
		if len(q.v) != n {
			return fmt.Errorf("%w: %s has %d values, r has %d",
				ErrLength, q.name, len(q.v), n)
		}
	}
	return nil
}

// VFlat estimates the flat rotation velocity as the mean of the last three
// observed velocities (fewer if the curve is shorter).
func (s *Sample) VFlat() float64 {
	n := len(s.VObs)
	if n == 0 {
		return 0
	}
	k := n - 3
	if k < 0 {
		k = 0
	}
	var sum float64
	for _, v := range s.VObs[k:] {
		sum += v
	}
	return sum / float64(n-k)
}

// RMax returns the outermost radius of the sample, or 0 if it is empty.
func (s *Sample) RMax() float64 {
	if len(s.R) == 0 {
		return 0
	}
	return s.R[len(s.R)-1]
}
