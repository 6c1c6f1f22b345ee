// Public domain.

package rcplot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geobridge/geobridge/bridge"
	"github.com/geobridge/geobridge/internal/rcplot"
	"github.com/geobridge/geobridge/internal/synth"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func sample() *bridge.Sample {
	g := synth.New(3, bridge.A0)
	return g.Sample(bridge.ML{Disk: .6, Bul: .4}, 2)
}

func TestCurve(t *testing.T) {
	s := sample()
	p, err := rcplot.Curve(s, bridge.FixedML, bridge.A0)
	require.NoError(t, err)
	require.Equal(t, "SYN001  M/L disk 0.50 bulge 0.50", p.Title.Text)
	require.Equal(t, 0., p.Y.Min)
	require.GreaterOrEqual(t, p.X.Max, s.RMax())

	w, err := p.WriterTo(rcplot.Width, rcplot.Height, "png")
	require.NoError(t, err)
	var b bytes.Buffer
	_, err = w.WriteTo(&b)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(b.Bytes(), pngMagic))
}

func TestBoost(t *testing.T) {
	s := sample()
	p, err := rcplot.Boost(s, bridge.FixedML, bridge.A0)
	require.NoError(t, err)
	require.Equal(t, "SYN001  boost profile", p.Title.Text)
	// boost is never below one
	require.GreaterOrEqual(t, p.Y.Max, 1.)
}

func TestSave(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "syn")
	require.NoError(t, rcplot.Save(prefix, sample(), bridge.FixedML, bridge.A0))
	for _, suffix := range []string{rcplot.CurveSuffix, rcplot.BoostSuffix} {
		b, err := os.ReadFile(prefix + suffix)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(b, pngMagic), suffix)
	}
}

func TestSaveBadDir(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "missing", "syn")
	require.Error(t, rcplot.Save(prefix, sample(), bridge.FixedML, bridge.A0))
}
