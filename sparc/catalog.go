// Public domain.

// Package sparc reads the SPARC rotation curve mass model table.
//
// SPARC is the Spitzer Photometry and Accurate Rotation Curves sample of
// Lelli, McGaugh and Schombert 2016, AJ 152, 157.  The mass model file has
// whitespace delimited columns
//
//	Galaxy Dist r V_obs e_Vobs V_gas V_disk V_bul SB_disk [SB_bul]
//
// with distance in Mpc, radius in kpc, velocities in km/s and surface
// brightness in L_sun/pc².  Lines starting with # and blank lines are
// ignored.  Rows with fewer than nine fields or a non-numeric value are
// skipped and counted.
package sparc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/geobridge/geobridge/bridge"
)

// ErrNoGalaxy is returned for a galaxy name not in the catalog.
var ErrNoGalaxy = errors.New("sparc: galaxy not in catalog")

// Row is one radius of one galaxy.
type Row struct {
	Galaxy        string
	Dist          float64
	R, VObs, EV   float64
	VGas          float64
	VDisk, VBul   float64
	SBDisk, SBBul float64
}

// Catalog is a parsed mass model table.
type Catalog struct {
	Rows    []Row
	Skipped int // malformed rows

	// Fingerprint is the xxhash of the uncompressed table text.
	Fingerprint uint64

	byName map[string][]int
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Open reads a catalog file.  Gzip and zstd compressed files are
// recognized by content and decompressed.
func Open(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Read parses a catalog from r, decompressing if r starts with a gzip or
// zstd header.
func Read(r io.Reader) (*Catalog, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))
	var src io.Reader = br
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		src = zr
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		src = zr
	}
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return parse(b), nil
}

func parse(b []byte) *Catalog {
	c := &Catalog{
		Fingerprint: xxhash.Sum64(b),
		byName:      make(map[string][]int),
	}
	for _, line := range strings.Split(string(b), "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		row, ok := parseRow(f)
		if !ok {
			c.Skipped++
			continue
		}
		c.byName[row.Galaxy] = append(c.byName[row.Galaxy], len(c.Rows))
		c.Rows = append(c.Rows, row)
	}
	return c
}

func parseRow(f []string) (row Row, ok bool) {
	if len(f) < 9 {
		return
	}
	row.Galaxy = f[0]
	// distance is not validated
	row.Dist, _ = strconv.ParseFloat(f[1], 64)
	v := make([]float64, 8)
	n := 7
	if len(f) > 9 {
		n = 8
	}
	for i := 0; i < n; i++ {
		x, err := strconv.ParseFloat(f[i+2], 64)
		if err != nil {
			return
		}
		v[i] = x
	}
	row.R, row.VObs, row.EV = v[0], v[1], v[2]
	row.VGas, row.VDisk, row.VBul = v[3], v[4], v[5]
	row.SBDisk, row.SBBul = v[6], v[7]
	return row, true
}

// Galaxies returns the galaxy names in the catalog, sorted.
func (c *Catalog) Galaxies() []string {
	names := make([]string, 0, len(c.byName))
	for n := range c.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Galaxy returns the rotation curve of the named galaxy.
//
// Only points with V_obs > 1 km/s, e_V > 0 and r > 0 are kept, sorted by
// radius.  The sample may be empty if no point survives.
func (c *Catalog) Galaxy(name string) (*bridge.Sample, error) {
	idx, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoGalaxy, name)
	}
	rows := make([]Row, 0, len(idx))
	for _, i := range idx {
		if r := c.Rows[i]; r.VObs > 1 && r.EV > 0 && r.R > 0 {
			rows = append(rows, r)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].R < rows[j].R })

	s := &bridge.Sample{
		Name: name,
		Type: HubbleType(name),
	}
	for _, r := range rows {
		s.R = append(s.R, r.R)
		s.VObs = append(s.VObs, r.VObs)
		s.EV = append(s.EV, r.EV)
		s.Gas = append(s.Gas, r.VGas)
		s.Disk = append(s.Disk, r.VDisk)
		s.Bul = append(s.Bul, r.VBul)
	}
	return s, nil
}

// MorphologyGroups partitions the catalog galaxies by morphological group.
// Names within a group are sorted.
func (c *Catalog) MorphologyGroups() map[Group][]string {
	g := map[Group][]string{
		GroupEarly:     {},
		GroupDisk:      {},
		GroupIrregular: {},
	}
	for _, n := range c.Galaxies() {
		k := GroupOf(HubbleType(n))
		g[k] = append(g[k], n)
	}
	return g
}
