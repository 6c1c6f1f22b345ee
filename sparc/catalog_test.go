// Public domain.

package sparc_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/geobridge/geobridge/sparc"
)

const table = `# SPARC mass models, excerpt
# Galaxy Dist r V_obs e_Vobs V_gas V_disk V_bul SB_disk SB_bul

NGC2403  3.16  2.00  76.0  2.0  20.1  60.2  0.0  250.0  0.0
NGC2403  3.16  0.50  33.0  3.0   8.0  30.0  0.0  900.0  0.0
NGC2403  3.16  1.00  52.0  2.5  12.0  45.0  0.0  600.0
NGC2403  3.16  3.00   0.5  2.0  25.0  65.0  0.0  150.0  0.0
NGC2403  3.16  4.00  90.0  0.0  27.0  66.0  0.0  100.0  0.0
NGC2403  3.16  5.00  95.0  1.5 -28.0  64.0  0.0   80.0  0.0
DDO154   4.04  0.50  12.0  1.0   6.0   4.0  0.0   10.0  0.0
DDO154   4.04  0.00  10.0  1.0   5.0   3.0  0.0   12.0  0.0
DDO154   4.04  1.00  20.0  bad   9.0   6.0  0.0    8.0  0.0
NGC7814  14.4  1.00 180.0  5.0   2.0  90.0 200.0 500.0 3000.0
Mystery  10.0  1.00  50.0  5.0   2.0  30.0
`

func TestRead(t *testing.T) {
	c, err := sparc.Read(strings.NewReader(table))
	require.NoError(t, err)
	require.Equal(t, 2, c.Skipped) // "bad" and the six field row
	require.Len(t, c.Rows, 9)
	require.Equal(t, []string{"DDO154", "NGC2403", "NGC7814"}, c.Galaxies())
	require.NotZero(t, c.Fingerprint)

	r := c.Rows[len(c.Rows)-1]
	require.Equal(t, "NGC7814", r.Galaxy)
	require.Equal(t, 14.4, r.Dist)
	require.Equal(t, 200., r.VBul)
	require.Equal(t, 3000., r.SBBul)
	require.Equal(t, 0., c.Rows[2].SBBul) // nine field row
}

func TestGalaxy(t *testing.T) {
	c, err := sparc.Read(strings.NewReader(table))
	require.NoError(t, err)

	s, err := c.Galaxy("NGC2403")
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	// V_obs ≤ 1 and e_V = 0 rows are cut, remainder sorted by radius
	require.Equal(t, []float64{.5, 1, 2, 5}, s.R)
	require.Equal(t, []float64{33, 52, 76, 95}, s.VObs)
	require.Equal(t, -28., s.Gas[3])
	require.Equal(t, 6, s.Type)
	require.Equal(t, "NGC2403", s.Name)

	s, err = c.Galaxy("DDO154")
	require.NoError(t, err)
	require.Equal(t, []float64{.5}, s.R) // r = 0 cut

	_, err = c.Galaxy("M31")
	require.ErrorIs(t, err, sparc.ErrNoGalaxy)
}

func TestCompressed(t *testing.T) {
	plain, err := sparc.Read(strings.NewReader(table))
	require.NoError(t, err)

	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	_, err = w.Write([]byte(table))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zs := enc.EncodeAll([]byte(table), nil)
	require.NoError(t, enc.Close())

	dir := t.TempDir()
	for name, b := range map[string][]byte{
		"MassModels.txt.gz":  gz.Bytes(),
		"MassModels.txt.zst": zs,
		"MassModels.dat":     gz.Bytes(), // recognized by content, not name
	} {
		fn := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fn, b, 0o644))
		c, err := sparc.Open(fn)
		require.NoError(t, err, name)
		require.Equal(t, plain.Rows, c.Rows, name)
		require.Equal(t, plain.Skipped, c.Skipped, name)
		require.Equal(t, plain.Fingerprint, c.Fingerprint, name)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := sparc.Open(filepath.Join(t.TempDir(), "none.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMorphology(t *testing.T) {
	require.Equal(t, 10, sparc.HubbleType("DDO154"))
	require.Equal(t, 2, sparc.HubbleType("NGC7814"))
	require.Equal(t, sparc.TUnknown, sparc.HubbleType("Mystery"))
	require.Equal(t, "Sm", sparc.MorphologyLabel(9))
	require.Equal(t, "Im", sparc.MorphologyLabel(sparc.HubbleType("DDO154")))
	require.Equal(t, "S0", sparc.MorphologyLabel(0))
	require.Equal(t, "BCD", sparc.MorphologyLabel(sparc.TBCD))
	require.Equal(t, "Unknown", sparc.MorphologyLabel(sparc.TUnknown))
	require.Equal(t, "Unknown", sparc.MorphologyLabel(12))

	c, err := sparc.Read(strings.NewReader(table))
	require.NoError(t, err)
	g := c.MorphologyGroups()
	require.Equal(t, []string{"NGC7814"}, g[sparc.GroupEarly])
	require.Equal(t, []string{"NGC2403"}, g[sparc.GroupDisk])
	require.Equal(t, []string{"DDO154"}, g[sparc.GroupIrregular])
	require.Equal(t, "irreg", sparc.GroupIrregular.String())
	require.Equal(t, sparc.GroupEarly, sparc.GroupOf(sparc.TUnknown))
}
