// Public domain.

package gbprog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geobridge/geobridge/bridge"
	"github.com/geobridge/geobridge/internal/bench"
	"github.com/geobridge/geobridge/internal/compare"
	"github.com/geobridge/geobridge/internal/config"
	"github.com/geobridge/geobridge/internal/rcplot"
	"github.com/geobridge/geobridge/internal/synth"
	"github.com/geobridge/geobridge/sparc"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, log bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&log)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), log.String(), err
}

// catalogFile writes n noiseless synthetic galaxies as a mass model table.
func catalogFile(t *testing.T, n int) string {
	t.Helper()
	g := synth.New(5, bridge.A0)
	var b strings.Builder
	for i := 0; i < n; i++ {
		s := g.Sample(g.ML(.3, 1.5), 0)
		for j := range s.R {
			fmt.Fprintf(&b, "%s 10 %.17g %.17g %.17g %.17g %.17g %.17g 1 0\n",
				s.Name, s.R[j], s.VObs[j], s.EV[j], s.Gas[j], s.Disk[j], s.Bul[j])
		}
	}
	fn := filepath.Join(t.TempDir(), "synth.dat")
	require.NoError(t, os.WriteFile(fn, []byte(b.String()), 0o644))
	return fn
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, versionString+"\n"+copyrightString+"\n", out)
}

func TestSelftest(t *testing.T) {
	out, _, err := run(t, "selftest")
	require.NoError(t, err)
	require.Contains(t, out, "PASS  Newton limit")
	require.Contains(t, out, "PASS  BTFR")
	require.Contains(t, out, "PASS  synthetic recovery 10 galaxies, seed 3")
	require.Contains(t, out, "all 5 checks passed")
}

func TestSelftestFails(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "short.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("fit:\n  max_iter: 3\n"), 0o644))
	out, _, err := run(t, "selftest", "--config", fn)
	require.ErrorIs(t, err, errSelftest)
	require.Contains(t, out, "FAIL  synthetic recovery")
	require.Contains(t, out, "PASS  crossover")
}

func TestConfigRequired(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.yaml")
	_, _, err := run(t, "selftest", "--config", missing)
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("a0: -1\n"), 0o644))
	_, _, err = run(t, "compare", "--config", bad)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestBenchmark(t *testing.T) {
	cat := catalogFile(t, 4)
	dir := filepath.Join(t.TempDir(), "res")
	out, log, err := run(t, "benchmark", cat, "-o", dir)
	require.NoError(t, err)
	require.Contains(t, out, "4 of 4 galaxies")
	require.Contains(t, out, filepath.Join(dir, bench.ResultsFile))
	require.Contains(t, log, "catalog.loaded")
	for _, f := range []string{bench.ResultsFile, bench.SummaryFile} {
		require.FileExists(t, filepath.Join(dir, f))
	}

	_, log, err = run(t, "benchmark", cat, "-o", dir, "-q")
	require.NoError(t, err)
	require.NotContains(t, log, "catalog.loaded")
}

func TestGalaxy(t *testing.T) {
	cat := catalogFile(t, 2)
	out, _, err := run(t, "galaxy", cat, "SYN002")
	require.NoError(t, err)
	require.Contains(t, out, "Galaxy  SYN002")
	require.Contains(t, out, "Points  15")
	require.Contains(t, out, "(fitted)")
	require.Contains(t, out, "RMS     0.00 km/s")

	prefix := filepath.Join(t.TempDir(), "syn1")
	out, _, err = run(t, "galaxy", cat, "SYN001", "--fixed", "--plot", prefix)
	require.NoError(t, err)
	require.Contains(t, out, "M/L     disk 0.500  bulge 0.500 (fixed)")
	require.NotContains(t, out, "Chi2")
	require.FileExists(t, prefix+rcplot.CurveSuffix)
	require.FileExists(t, prefix+rcplot.BoostSuffix)

	_, _, err = run(t, "galaxy", cat, "NGC0000")
	require.ErrorIs(t, err, sparc.ErrNoGalaxy)
	_, _, err = run(t, "galaxy", cat)
	require.Error(t, err)
}

func TestGalaxyTooFewPoints(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "short.dat")
	require.NoError(t, os.WriteFile(fn, []byte(
		"TINY 1 1 20 1 5 10 0 1 0\n"+
			"TINY 1 2 25 1 5 10 0 1 0\n"+
			"BLANK 1 1 20 0 5 10 0 1 0\n"+
			"BLANK 1 2 0.5 1 5 10 0 1 0\n"), 0o644))

	out, _, err := run(t, "galaxy", fn, "TINY")
	require.ErrorIs(t, err, errTooFewPoints)
	require.ErrorContains(t, err, "TINY has 2, need 3")
	require.Empty(t, out)

	out, _, err = run(t, "galaxy", fn, "BLANK", "--fixed")
	require.ErrorIs(t, err, bridge.ErrEmpty)
	require.Empty(t, out)

	cfg := filepath.Join(t.TempDir(), "two.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("fit:\n  min_points: 2\n"), 0o644))
	out, _, err = run(t, "galaxy", fn, "TINY", "--fixed", "--config", cfg)
	require.NoError(t, err)
	require.Contains(t, out, "Points  2")
}

func TestStudies(t *testing.T) {
	dir := t.TempDir()
	for _, c := range []struct {
		cmd, file, text string
	}{
		{"compare", compare.FrameworkFile, "FRAMEWORK COMPARISON"},
		{"correlate", compare.CorrelationFile, "Very strong"},
		{"validate", compare.GHASPFile, "STRONG VALIDATION"},
	} {
		out, _, err := run(t, c.cmd, "-o", dir)
		require.NoError(t, err, c.cmd)
		require.Contains(t, out, c.text)
		require.FileExists(t, filepath.Join(dir, c.file))
	}
}
