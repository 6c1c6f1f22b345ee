// Public domain.

// Package bridge, closed-form galactic dynamics for rotation curves.
//
// The central relation is the geometric bridge interpolating law
//
//	g_obs = sqrt(g_bar² + a0·g_bar)
//
// which is Newtonian (g_obs → g_bar) for g_bar ≫ a0 and tends to the flat
// curve regime g_obs → sqrt(a0·g_bar) for g_bar ≪ a0.
//
// Units throughout are galactic: radius in kpc, velocity in km/s,
// acceleration in (km/s)²/kpc, mass in solar masses.
package bridge

import "math"

// Physical constants in galactic units.
const (
	A0SI = 1.2e-10   // acceleration scale, m/s²
	KpcM = 3.0857e19 // metres per kpc

	// A0 is the acceleration scale in (km/s)²/kpc, about 3702.84.
	A0 = A0SI * KpcM / 1e6

	// G is Newton's constant in kpc (km/s)² / M_sun.
	G = 4.302e-6
)

// Floors applied to keep every formula defined on its whole input domain.
const (
	AccelFloor  = 1e-20 // (km/s)²/kpc
	RadiusFloor = 1e-6  // kpc
)

// ObservedAcceleration evaluates the geometric bridge law for a single
// baryonic acceleration.  Values of gBar at or below zero are floored to
// AccelFloor.
//
// Crossover is exact: ObservedAcceleration(a0, a0) = a0·√2.
func ObservedAcceleration(gBar, a0 float64) float64 {
	if gBar < AccelFloor {
		gBar = AccelFloor
	}
	return math.Sqrt(gBar*gBar + a0*gBar)
}

// ObservedAccelerations is the element-wise form of ObservedAcceleration.
func ObservedAccelerations(gBar []float64, a0 float64) []float64 {
	g := make([]float64, len(gBar))
	for i, gb := range gBar {
		g[i] = ObservedAcceleration(gb, a0)
	}
	return g
}

// BaryonicVelocity combines the mass model components into the Newtonian
// circular velocity of the baryons,
//
//	v_bar² = sign(v_gas)·v_gas² + ml.Disk·v_disk² + ml.Bul·v_bul²
//
// clamped at zero before the square root.  The signed gas term keeps the
// inward pointing gas contributions found in some mass models.
//
// Bounds on ml are not checked here.
func BaryonicVelocity(c Components, ml ML) []float64 {
	v := make([]float64, len(c.Gas))
	for i, vg := range c.Gas {
		vd := c.Disk[i]
		vb := c.Bul[i]
		v2 := vg*math.Abs(vg) + ml.Disk*vd*vd + ml.Bul*vb*vb
		v[i] = math.Sqrt(math.Max(v2, 0))
	}
	return v
}

// baryonicAccel returns g_bar = v_bar²/max(r, RadiusFloor).
func baryonicAccel(r, vBar float64) float64 {
	return vBar * vBar / math.Max(r, RadiusFloor)
}

// PredictRotationCurve predicts the circular velocity at each radius of c.
//
// Steps: v_bar from the components, g_bar = v_bar²/r with r floored at
// RadiusFloor, g_obs from the bridge law, then v = sqrt(max(g_obs·r, 0)).
func PredictRotationCurve(c Components, ml ML, a0 float64) []float64 {
	vBar := BaryonicVelocity(c, ml)
	v := make([]float64, len(vBar))
	for i, vb := range vBar {
		r := c.R[i]
		gObs := ObservedAcceleration(baryonicAccel(r, vb), a0)
		v[i] = math.Sqrt(math.Max(gObs*r, 0))
	}
	return v
}

// Boost returns B = sqrt(g_obs/g_bar) at each radius, the factor by which
// the predicted velocity exceeds the Newtonian baryonic velocity.
//
// B is floored at 1 and g_bar at AccelFloor in the ratio.
func Boost(c Components, ml ML, a0 float64) []float64 {
	vBar := BaryonicVelocity(c, ml)
	b := make([]float64, len(vBar))
	for i, vb := range vBar {
		gb := baryonicAccel(c.R[i], vb)
		gObs := ObservedAcceleration(gb, a0)
		b[i] = math.Sqrt(math.Max(gObs/math.Max(gb, AccelFloor), 1))
	}
	return b
}

// HaloBoundaryRadius returns r_halo = v_flat²/a0, the radius in kpc where
// the baryonic acceleration of a flat curve falls to a0.
func HaloBoundaryRadius(vFlat, a0 float64) float64 {
	return vFlat * vFlat / a0
}

// BaryonicMassFromBTFR returns the baryonic Tully-Fisher mass
// M_bar = v_flat⁴/(g·a0), in solar masses.
func BaryonicMassFromBTFR(vFlat, a0, g float64) float64 {
	v2 := vFlat * vFlat
	return v2 * v2 / (g * a0)
}

// NewtonMass returns the Newtonian enclosed mass v²·r/g.
//
// At r = HaloBoundaryRadius(v, a0) this equals BaryonicMassFromBTFR(v, a0, g).
func NewtonMass(v, r, g float64) float64 {
	return v * v * r / g
}
