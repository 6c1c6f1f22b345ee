// Public domain.

package mlfit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geobridge/geobridge/bridge"
	"github.com/geobridge/geobridge/mlfit"
	"github.com/geobridge/geobridge/rcstat"
)

// model builds a sample with a concentrated bulge, an exponential-like disk
// and slowly rising gas, observed exactly at ml.
func model(ml bridge.ML) *bridge.Sample {
	s := &bridge.Sample{Name: "model"}
	for i := 0; i < 12; i++ {
		r := .5 + 1.5*float64(i)
		s.R = append(s.R, r)
		s.Gas = append(s.Gas, 25*r/(r+6))
		s.Disk = append(s.Disk, 140*r/(r+2.5))
		s.Bul = append(s.Bul, 260*math.Sqrt(r)/(r+.6))
		s.EV = append(s.EV, 1)
	}
	s.VObs = bridge.PredictRotationCurve(s.Components, ml, bridge.A0)
	return s
}

func TestFitMLRecovery(t *testing.T) {
	for _, want := range []bridge.ML{
		{Disk: .8, Bul: .6}, {Disk: .3, Bul: 1.2}, {Disk: 2, Bul: .2},
	} {
		s := model(want)
		res := mlfit.FitML(s)
		require.True(t, res.Success, "%+v", want)
		require.InDelta(t, want.Disk, res.ML.Disk, 1e-3, "%+v", want)
		require.InDelta(t, want.Bul, res.ML.Bul, 1e-3, "%+v", want)
		require.Less(t, res.RMS, .05)
		require.Greater(t, res.R2, .999)
		require.Less(t, res.Iterations, mlfit.DefaultMaxIter)
		require.Greater(t, res.Evaluations, res.Iterations)
	}
}

func TestFitMLSingleRecovery(t *testing.T) {
	s := model(bridge.Shared(1.1))
	res := mlfit.FitMLSingle(s)
	require.True(t, res.Success)
	require.InDelta(t, 1.1, res.ML.Disk, 1e-3)
	require.Equal(t, res.ML.Disk, res.ML.Bul)
	require.Less(t, res.RMS, .05)
}

func TestChi2(t *testing.T) {
	s := model(bridge.DefaultML)
	f := mlfit.New()
	require.InDelta(t, 0, f.Chi2(s, bridge.DefaultML), 1e-18)

	// uncertainties below the floor count as the floor
	s.VObs[0] += 1
	for i := range s.EV {
		s.EV[i] = .01
	}
	require.InDelta(t, 4, f.Chi2(s, bridge.DefaultML), 1e-9)
	s.EV[0] = 2
	require.InDelta(t, .25, f.Chi2(s, bridge.DefaultML), 1e-9)
}

func inBounds(t *testing.T, res mlfit.Result) {
	t.Helper()
	require.True(t, mlfit.DiskBounds.Contains(res.ML.Disk), "disk %g", res.ML.Disk)
	require.True(t, mlfit.BulgeBounds.Contains(res.ML.Bul), "bulge %g", res.ML.Bul)
}

func TestFitMLBounds(t *testing.T) {
	// adversarial starts are projected into the box
	for _, start := range []bridge.ML{
		{Disk: 100, Bul: -5}, {Disk: -1, Bul: 50}, {Disk: 0, Bul: 0}, {Disk: 6, Bul: 8},
	} {
		f := mlfit.New(mlfit.WithStart(start))
		inBounds(t, f.FitML(model(bridge.DefaultML)))
		res := f.FitMLSingle(model(bridge.DefaultML))
		require.True(t, mlfit.DiskBounds.Contains(res.ML.Disk))
	}

	// curves that pull the ratios toward and past both edges
	dark := model(bridge.DefaultML)
	for i := range dark.VObs {
		dark.VObs[i] = 0
	}
	res := mlfit.FitML(dark)
	inBounds(t, res)
	require.InDelta(t, mlfit.DiskBounds.Lo, res.ML.Disk, .01)

	heavy := model(bridge.ML{Disk: 40, Bul: 60})
	res = mlfit.FitML(heavy)
	inBounds(t, res)
	require.InDelta(t, mlfit.DiskBounds.Hi, res.ML.Disk, .05)
}

func TestInvertedBounds(t *testing.T) {
	f := mlfit.New(
		mlfit.WithDiskBounds(mlfit.Bounds{Lo: .4, Hi: .2}),
		mlfit.WithBulgeBounds(mlfit.Bounds{Lo: 1, Hi: .5}),
	)
	disk := mlfit.Bounds{Lo: .2, Hi: .4}
	bulge := mlfit.Bounds{Lo: .5, Hi: 1}
	res := f.FitML(model(bridge.ML{Disk: .3, Bul: .7}))
	require.True(t, res.Success)
	require.True(t, disk.Contains(res.ML.Disk), "disk %g", res.ML.Disk)
	require.True(t, bulge.Contains(res.ML.Bul), "bulge %g", res.ML.Bul)
	require.InDelta(t, .3, res.ML.Disk, 5e-3)
	require.InDelta(t, .7, res.ML.Bul, 5e-3)

	res = f.FitMLSingle(model(bridge.ML{Disk: 2, Bul: 2}))
	require.True(t, disk.Contains(res.ML.Disk), "disk %g", res.ML.Disk)
}

func TestFitMLAbovePenalty(t *testing.T) {
	// every in-bounds χ² exceeds the penalty, so the simplex prefers to
	// leave the box
	s := model(bridge.DefaultML)
	for i := range s.VObs {
		s.VObs[i] = 1e9
	}
	res := mlfit.FitML(s)
	inBounds(t, res)
	require.Greater(t, res.Chi2, mlfit.Penalty)

	res = mlfit.FitMLSingle(s)
	require.True(t, mlfit.DiskBounds.Contains(res.ML.Disk))
}

func TestFitMLIterationCap(t *testing.T) {
	f := mlfit.New(mlfit.WithMaxIter(3, 3))
	res := f.FitML(model(bridge.ML{Disk: 2, Bul: 3}))
	require.False(t, res.Success)
	require.Equal(t, 3, res.Iterations)
	inBounds(t, res)
}

func TestFitMLConstantCurve(t *testing.T) {
	s := model(bridge.DefaultML)
	for i := range s.VObs {
		s.VObs[i] = 100
	}
	res := mlfit.FitML(s)
	inBounds(t, res)
	require.True(t, rcstat.IsUndefined(res.R2))
	require.False(t, math.IsNaN(res.RMS))
}

func TestOptions(t *testing.T) {
	b := mlfit.Bounds{Lo: .2, Hi: .4}
	f := mlfit.New(mlfit.WithDiskBounds(b), mlfit.WithBulgeBounds(b),
		mlfit.WithTolerance(1e-6, 1e-6), mlfit.WithA0(bridge.A0))
	res := f.FitML(model(bridge.ML{Disk: 1, Bul: 1}))
	require.InDelta(t, .4, res.ML.Disk, 1e-3)
	require.InDelta(t, .4, res.ML.Bul, 1e-3)
	require.True(t, b.Contains(res.ML.Disk))

	require.Equal(t, .2, b.Clamp(-3))
	require.Equal(t, .3, b.Clamp(.3))
}
