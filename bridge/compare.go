// Public domain.

package bridge

import "math"

// Literature comparators.  Neither is fitted; they take the same mass model
// input as PredictRotationCurve.  Both clip the gas term at zero rather than
// keeping its sign.

// newtonV2 returns max(v_gas,0)² + ml.Disk·v_disk² + ml.Bul·v_bul².
func newtonV2(c Components, ml ML, i int) float64 {
	vg := math.Max(c.Gas[i], 0)
	vd := c.Disk[i]
	vb := c.Bul[i]
	return vg*vg + ml.Disk*vd*vd + ml.Bul*vb*vb
}

// PredictNewton returns the baryons-only Newtonian rotation curve, with no
// interpolation law applied.
func PredictNewton(c Components, ml ML) []float64 {
	v := make([]float64, c.Len())
	for i := range v {
		v[i] = math.Sqrt(newtonV2(c, ml, i))
	}
	return v
}

// RARAcceleration evaluates the radial acceleration relation of
// McGaugh et al. 2016,
//
//	g_obs = g_bar / (1 - exp(-sqrt(g_bar/a0)))
//
// with g_bar/a0 floored at 1e-12.
func RARAcceleration(gBar, a0 float64) float64 {
	x := math.Max(gBar/a0, 1e-12)
	return gBar / -math.Expm1(-math.Sqrt(x))
}

// PredictRAR predicts a rotation curve with the RAR in place of the bridge
// law.
func PredictRAR(c Components, ml ML, a0 float64) []float64 {
	v := make([]float64, c.Len())
	for i := range v {
		r := c.R[i]
		gb := newtonV2(c, ml, i) / math.Max(r, RadiusFloor)
		v[i] = math.Sqrt(math.Max(RARAcceleration(gb, a0)*r, 0))
	}
	return v
}
