// Public domain.

// Package bench runs the rotation curve benchmark over a catalog.
//
// Each galaxy with enough valid points is predicted four ways: the
// geometric bridge at a fixed mass-to-light ratio, the geometric bridge
// with fitted ratios, Newtonian baryons alone and the radial acceleration
// relation.  Results are one row per galaxy and a summary.
package bench

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/geobridge/geobridge/bridge"
	"github.com/geobridge/geobridge/internal/config"
	"github.com/geobridge/geobridge/internal/logger"
	"github.com/geobridge/geobridge/mlfit"
	"github.com/geobridge/geobridge/rcstat"
	"github.com/geobridge/geobridge/sparc"
)

// Output file names.
const (
	ResultsFile = "sparc_results.csv"
	SummaryFile = "summary.txt"
)

// progress is logged every this many galaxies.
const progressEvery = 25

// Row is the benchmark result for one galaxy.
type Row struct {
	Galaxy string
	T, N   int

	RMax, RHalo, VFlat float64

	RMSNewton, RMSFixed, RMSFit, RMSRAR float64
	R2Fixed, R2Fit, R2RAR               float64

	ML        bridge.ML
	Chi2      float64
	Converged bool
}

// Runner holds the benchmark parameters.
type Runner struct {
	a0        float64
	fixed     bridge.ML
	minPoints int
	fitter    *mlfit.Fitter
	log       *slog.Logger
}

// New creates a Runner from a valid configuration.  A nil log means the
// program wide logger.
func New(c config.Config, log *slog.Logger) *Runner {
	if log == nil {
		log = logger.L()
	}
	return &Runner{
		a0:        c.A0,
		fixed:     c.FixedML(),
		minPoints: c.Fit.MinPoints,
		fitter:    c.Fitter(),
		log:       log,
	}
}

// Galaxy computes the benchmark row for one sample.  The sample must have
// at least one point.
func (b *Runner) Galaxy(s *bridge.Sample) Row {
	obs := s.VObs
	vFix := bridge.PredictRotationCurve(s.Components, b.fixed, b.a0)
	fit := b.fitter.FitML(s)
	vFit := bridge.PredictRotationCurve(s.Components, fit.ML, b.a0)
	vNew := bridge.PredictNewton(s.Components, b.fixed)
	vRAR := bridge.PredictRAR(s.Components, b.fixed, b.a0)
	vFlat := s.VFlat()
	return Row{
		Galaxy:    s.Name,
		T:         s.Type,
		N:         s.Len(),
		RMax:      s.RMax(),
		RHalo:     bridge.HaloBoundaryRadius(vFlat, b.a0),
		VFlat:     vFlat,
		RMSNewton: rcstat.RMSResidual(obs, vNew),
		RMSFixed:  rcstat.RMSResidual(obs, vFix),
		RMSFit:    rcstat.RMSResidual(obs, vFit),
		RMSRAR:    rcstat.RMSResidual(obs, vRAR),
		R2Fixed:   rcstat.RSquared(obs, vFix),
		R2Fit:     rcstat.RSquared(obs, vFit),
		R2RAR:     rcstat.RSquared(obs, vRAR),
		ML:        fit.ML,
		Chi2:      fit.Chi2,
		Converged: fit.Success,
	}
}

// Run benchmarks every galaxy of cat in name order.  Galaxies with fewer
// valid points than the configured minimum are skipped.
func (b *Runner) Run(cat *sparc.Catalog) ([]Row, Summary) {
	names := cat.Galaxies()
	rows := make([]Row, 0, len(names))
	for i, name := range names {
		s, err := cat.Galaxy(name)
		if err == nil {
			err = s.Validate()
		}
		switch {
		case errors.Is(err, bridge.ErrEmpty):
			b.log.Debug("galaxy.skipped", "name", name, "points", 0)
		case err != nil:
			b.log.Error("galaxy.read", "name", name, "err", err)
		case s.Len() < b.minPoints:
			b.log.Debug("galaxy.skipped", "name", name, "points", s.Len())
		default:
			r := b.Galaxy(s)
			if !r.Converged {
				b.log.Warn("fit.not_converged", "name", name)
			}
			rows = append(rows, r)
		}
		if (i+1)%progressEvery == 0 {
			b.log.Info("benchmark.progress", "done", i+1, "of", len(names))
		}
	}
	sum := Summarize(rows)
	sum.Catalog = len(names)
	sum.Fingerprint = cat.Fingerprint
	return rows, sum
}

// Summary aggregates benchmark rows.
type Summary struct {
	Catalog  int // galaxies in the catalog
	Galaxies int // galaxies benchmarked

	MedianRMSNewton, MedianRMSFixed, MedianRMSFit, MedianRMSRAR float64

	FitBelow5, FitBelow10 int // fitted RMS under 5 and 10 km/s
	FitR2Above90          int // fitted R² over 0.9

	MedianMLDisk float64
	Fingerprint  uint64
}

// Summarize computes the summary statistics of rows.
func Summarize(rows []Row) Summary {
	col := func(f func(Row) float64) []float64 {
		c := make([]float64, len(rows))
		for i, r := range rows {
			c[i] = f(r)
		}
		return c
	}
	fit := col(func(r Row) float64 { return r.RMSFit })
	r2 := col(func(r Row) float64 { return r.R2Fit })
	return Summary{
		Catalog:         len(rows),
		Galaxies:        len(rows),
		MedianRMSNewton: rcstat.Median(col(func(r Row) float64 { return r.RMSNewton })),
		MedianRMSFixed:  rcstat.Median(col(func(r Row) float64 { return r.RMSFixed })),
		MedianRMSFit:    rcstat.Median(fit),
		MedianRMSRAR:    rcstat.Median(col(func(r Row) float64 { return r.RMSRAR })),
		FitBelow5:       rcstat.CountBelow(fit, 5),
		FitBelow10:      rcstat.CountBelow(fit, 10),
		FitR2Above90:    rcstat.CountAbove(r2, .9),
		MedianMLDisk:    rcstat.Median(col(func(r Row) float64 { return r.ML.Disk })),
	}
}

// Save writes the result table and the summary into dir, creating it if
// needed.
func Save(dir string, rows []Row, sum Summary) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, f := range []struct {
		name  string
		write func(*os.File) error
	}{
		{ResultsFile, func(f *os.File) error { return WriteCSV(f, rows) }},
		{SummaryFile, func(f *os.File) error { return sum.WriteText(f) }},
	} {
		fn := filepath.Join(dir, f.name)
		w, err := os.Create(fn)
		if err != nil {
			return err
		}
		if err = f.write(w); err != nil {
			w.Close()
			return fmt.Errorf("%s: %w", fn, err)
		}
		if err = w.Close(); err != nil {
			return err
		}
	}
	return nil
}
