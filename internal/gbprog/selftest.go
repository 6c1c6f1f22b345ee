// Public domain.

package gbprog

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/geobridge/geobridge/bridge"
	"github.com/geobridge/geobridge/internal/config"
	"github.com/geobridge/geobridge/internal/synth"
)

var errSelftest = errors.New("self test failed")

// Synthetic recovery parameters.
const (
	recoveryGalaxies = 10
	recoveryTol      = 1e-3
)

type check struct {
	name   string
	ok     bool
	detail string
}

func selftestCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Check the bridge law identities and fit recovery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return selftest(e.out, e.cfg)
		},
	}
}

func selftest(w io.Writer, cfg config.Config) error {
	checks := append(identities(cfg.A0, cfg.G), recovery(cfg))
	failed := 0
	for _, c := range checks {
		mark := "PASS"
		if !c.ok {
			mark = "FAIL"
			failed++
		}
		fmt.Fprintf(w, "%s  %-18s %s\n", mark, c.name, c.detail)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d checks", errSelftest, failed, len(checks))
	}
	_, err := fmt.Fprintf(w, "all %d checks passed\n", len(checks))
	return err
}

// identities checks the limits of the bridge law.
func identities(a0, g float64) []check {
	var cs []check

	worst := 0.
	for _, gb := range []float64{1e6, 1e7, 1e8} {
		worst = math.Max(worst, math.Abs(bridge.ObservedAcceleration(gb, a0)/gb-1))
	}
	cs = append(cs, check{"Newton limit", worst < .01,
		fmt.Sprintf("max |g_obs/g_bar - 1| = %.2e", worst)})

	worst = 0
	for _, gb := range []float64{.01, .1, 1} {
		r := bridge.ObservedAcceleration(gb, a0) / math.Sqrt(a0*gb)
		worst = math.Max(worst, math.Abs(r-1))
	}
	cs = append(cs, check{"weak field limit", worst < .05,
		fmt.Sprintf("max |g_obs/sqrt(a0 g_bar) - 1| = %.2e", worst)})

	r := bridge.ObservedAcceleration(a0, a0) / (math.Sqrt2 * a0)
	cs = append(cs, check{"crossover", math.Abs(r-1) < 1e-6,
		fmt.Sprintf("g_obs(a0)/(√2 a0) = %.9f", r)})

	const vFlat = 150.
	mN := bridge.NewtonMass(vFlat, bridge.HaloBoundaryRadius(vFlat, a0), g)
	mB := bridge.BaryonicMassFromBTFR(vFlat, a0, g)
	cs = append(cs, check{"BTFR", math.Abs(mN/mB-1) < 1e-6,
		fmt.Sprintf("M_bar(150 km/s) = %.4e M_sun", mB)})
	return cs
}

// recovery fits noiseless synthetic galaxies and checks the ratios they
// were made with are found.
func recovery(cfg config.Config) check {
	gen := synth.New(cfg.Seed, cfg.A0)
	f := cfg.Fitter()
	worst := 0.
	ok := true
	for i := 0; i < recoveryGalaxies; i++ {
		ml := gen.ML(.2, 2)
		res := f.FitML(gen.Sample(ml, 0))
		d := math.Max(math.Abs(res.ML.Disk-ml.Disk), math.Abs(res.ML.Bul-ml.Bul))
		worst = math.Max(worst, d)
		ok = ok && res.Success
	}
	return check{"synthetic recovery", ok && worst < recoveryTol,
		fmt.Sprintf("%d galaxies, seed %d, max |ΔM/L| = %.1e",
			recoveryGalaxies, cfg.Seed, worst)}
}
