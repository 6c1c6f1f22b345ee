// Public domain.

package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/geobridge/geobridge/rcstat"
)

var header = []string{
	"galaxy", "t", "n", "r_max_kpc", "r_halo_kpc", "v_flat_kms",
	"rms_newton", "rms_geom_fixed", "rms_geom_fit", "rms_rar",
	"r2_geom_fixed", "r2_geom_fit", "r2_rar",
	"ml_disk", "ml_bul", "chi2_fit", "converged",
}

// ff formats a float for the csv table, undefined values as empty fields.
func ff(x float64) string {
	if rcstat.IsUndefined(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'g', 10, 64)
}

// WriteCSV writes rows as a csv table with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Galaxy, strconv.Itoa(r.T), strconv.Itoa(r.N),
			ff(r.RMax), ff(r.RHalo), ff(r.VFlat),
			ff(r.RMSNewton), ff(r.RMSFixed), ff(r.RMSFit), ff(r.RMSRAR),
			ff(r.R2Fixed), ff(r.R2Fit), ff(r.R2RAR),
			ff(r.ML.Disk), ff(r.ML.Bul), ff(r.Chi2),
			strconv.FormatBool(r.Converged),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteText writes the summary as a plain text report.
func (s Summary) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "Rotation curve benchmark, %d of %d galaxies\n",
		s.Galaxies, s.Catalog)
	fmt.Fprintf(w, "Catalog fingerprint %016x\n\n", s.Fingerprint)
	fmt.Fprintln(tw, "Formula\tMedian RMS (km/s)\t")
	for _, l := range []struct {
		name string
		rms  float64
	}{
		{"Newton (no dark matter)", s.MedianRMSNewton},
		{"RAR", s.MedianRMSRAR},
		{"Geometric bridge, fixed M/L", s.MedianRMSFixed},
		{"Geometric bridge, fitted M/L", s.MedianRMSFit},
	} {
		fmt.Fprintf(tw, "%s\t%.1f\t\n", l.name, l.rms)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, `
Fitted M/L:
  RMS < 5 km/s     %d/%d
  RMS < 10 km/s    %d/%d
  R² > 0.9         %d/%d
  Median disk M/L  %.3f
`, s.FitBelow5, s.Galaxies, s.FitBelow10, s.Galaxies,
		s.FitR2Above90, s.Galaxies, s.MedianMLDisk)
	return err
}
