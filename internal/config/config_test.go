// Public domain.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geobridge/geobridge/bridge"
	"github.com/geobridge/geobridge/internal/config"
	"github.com/geobridge/geobridge/mlfit"
)

func write(t *testing.T, text string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), config.DefaultFile)
	require.NoError(t, os.WriteFile(fn, []byte(text), 0o644))
	return fn
}

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	require.Equal(t, bridge.A0, c.A0)
	require.Equal(t, bridge.G, c.G)
	require.Equal(t, .5, c.ML.Disk)
	require.Equal(t, .7, c.ML.Bulge)
	require.Equal(t, bridge.FixedML, c.FixedML())
	require.Equal(t, []float64{.05, 6}, c.Bounds.Disk)
	require.Equal(t, []float64{.05, 8}, c.Bounds.Bulge)
	require.Equal(t, 800, c.Fit.MaxIter)
	require.Equal(t, 400, c.Fit.MaxIterSingle)
	require.Equal(t, 3, c.Fit.MinPoints)
	require.Equal(t, uint64(3), c.Seed)
}

func TestLoadMissing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "none.yaml")
	c, err := config.Load(fn, false)
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)

	_, err = config.Load(fn, true)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOverrides(t *testing.T) {
	c, err := config.Load(write(t, `
a0: 3000
ml: {disk: 0.6}
bounds:
  bulge: [0.1, 4.0]
fit: {max_iter: 200}
output: out
`), true)
	require.NoError(t, err)
	require.Equal(t, 3000., c.A0)
	require.Equal(t, .6, c.ML.Disk)
	require.Equal(t, .7, c.ML.Bulge) // untouched
	require.Equal(t, []float64{.1, 4}, c.Bounds.Bulge)
	require.Equal(t, []float64{.05, 6}, c.Bounds.Disk)
	require.Equal(t, 200, c.Fit.MaxIter)
	require.Equal(t, "out", c.Output)
	require.NotNil(t, c.Fitter())
}

func TestLoadInvalid(t *testing.T) {
	for _, text := range []string{
		"a0: 0",
		"g: -1",
		"bounds: {disk: [6, 0.05]}",
		"bounds: {disk: [0.05]}",
		"ml: {bulge: 9}",
		"fit: {xatol: 0}",
		"fit: {min_points: 0}",
		`output: ""`,
	} {
		_, err := config.Load(write(t, text), true)
		require.ErrorIs(t, err, config.ErrInvalid, text)
		var ce *config.Error
		require.ErrorAs(t, err, &ce)
		require.NotEmpty(t, ce.Field)
	}

	_, err := config.Load(write(t, "a0: [1"), true)
	require.Error(t, err)
	require.NotErrorIs(t, err, config.ErrInvalid)
}

func TestFitter(t *testing.T) {
	c := config.Default()
	c.Bounds.Disk = []float64{.2, .3}
	c.ML.Disk = .25
	s := &bridge.Sample{
		Components: bridge.Components{
			R:    []float64{1, 2, 4, 8},
			Gas:  []float64{5, 8, 12, 14},
			Disk: []float64{50, 70, 80, 75},
			Bul:  []float64{0, 0, 0, 0},
		},
		EV: []float64{1, 1, 1, 1},
	}
	s.VObs = bridge.PredictRotationCurve(s.Components, bridge.Shared(2), c.A0)
	res := c.Fitter().FitML(s)
	require.True(t, mlfit.Bounds{Lo: .2, Hi: .3}.Contains(res.ML.Disk))
}
