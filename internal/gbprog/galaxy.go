// Public domain.

package gbprog

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geobridge/geobridge/bridge"
	"github.com/geobridge/geobridge/internal/rcplot"
	"github.com/geobridge/geobridge/mlfit"
	"github.com/geobridge/geobridge/rcstat"
	"github.com/geobridge/geobridge/sparc"
)

var errTooFewPoints = errors.New("too few valid points")

func galaxyCmd(e *env) *cobra.Command {
	var fixed bool
	var plot string
	c := &cobra.Command{
		Use:   "galaxy <catalog> <name>",
		Short: "Fit and report a single galaxy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := sparc.Open(args[0])
			if err != nil {
				return err
			}
			s, err := cat.Galaxy(args[1])
			if err != nil {
				return err
			}
			if err := s.Validate(); err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			if n := s.Len(); n < e.cfg.Fit.MinPoints {
				return fmt.Errorf("%w: %s has %d, need %d", errTooFewPoints,
					s.Name, n, e.cfg.Fit.MinPoints)
			}
			ml := e.cfg.FixedML()
			var res mlfit.Result
			if !fixed {
				res = e.cfg.Fitter().FitML(s)
				ml = res.ML
				if !res.Success {
					e.log.Warn("fit.not_converged", "name", s.Name,
						"iterations", res.Iterations)
				}
			}
			if err := galaxyReport(e, s, ml, fixed, res); err != nil {
				return err
			}
			if plot == "" {
				return nil
			}
			if err := rcplot.Save(plot, s, ml, e.cfg.A0); err != nil {
				return err
			}
			e.log.Info("plot.saved", "curve", plot+rcplot.CurveSuffix,
				"boost", plot+rcplot.BoostSuffix)
			return nil
		},
	}
	c.Flags().BoolVar(&fixed, "fixed", false, "use the fixed M/L instead of fitting")
	c.Flags().StringVar(&plot, "plot", "", "write plots to `prefix`_curve.png and _boost.png")
	return c
}

func galaxyReport(e *env, s *bridge.Sample, ml bridge.ML, fixed bool, res mlfit.Result) error {
	v := bridge.PredictRotationCurve(s.Components, ml, e.cfg.A0)
	vFlat := s.VFlat()
	rHalo := bridge.HaloBoundaryRadius(vFlat, e.cfg.A0)
	rMax := s.RMax()

	w := e.out
	fmt.Fprintf(w, "Galaxy  %s\n", s.Name)
	fmt.Fprintf(w, "Type    %s (T=%d)\n", sparc.MorphologyLabel(s.Type), s.Type)
	fmt.Fprintf(w, "Points  %d\n", s.Len())
	how := "fitted"
	if fixed {
		how = "fixed"
	}
	fmt.Fprintf(w, "M/L     disk %.3f  bulge %.3f (%s)\n", ml.Disk, ml.Bul, how)
	if !fixed {
		fmt.Fprintf(w, "Chi2    %.3f  (%d iterations)\n", res.Chi2, res.Iterations)
	}
	fmt.Fprintf(w, "RMS     %.2f km/s\n", rcstat.RMSResidual(s.VObs, v))
	fmt.Fprintf(w, "R²      %.4f\n", rcstat.RSquared(s.VObs, v))
	fmt.Fprintf(w, "v_flat  %.1f km/s\n", vFlat)
	_, err := fmt.Fprintf(w, "r_halo  %.2f kpc  (r_halo/r_max %.2f)\n",
		rHalo, rHalo/rMax)
	return err
}
