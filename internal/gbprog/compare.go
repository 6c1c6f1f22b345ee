// Public domain.

package gbprog

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/geobridge/geobridge/internal/compare"
)

// studyCmd makes a command running one of the surface density studies.
func studyCmd(e *env, use, short string, run func(io.Writer, string) error) *cobra.Command {
	var dir string
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := e.outputDir(dir)
			if err := run(e.out, out); err != nil {
				return err
			}
			e.log.Info("study.saved", "study", use, "dir", out)
			return nil
		},
	}
	c.Flags().StringVarP(&dir, "output", "o", "", "output directory")
	return c
}

func compareCmd(e *env) *cobra.Command {
	return studyCmd(e, "compare",
		"Compare the original and refined surface density formulas",
		compare.RunFramework)
}

func correlateCmd(e *env) *cobra.Command {
	return studyCmd(e, "correlate",
		"Correlate the rotation curve exponent with surface density",
		compare.RunCorrelate)
}

func validateCmd(e *env) *cobra.Command {
	return studyCmd(e, "validate",
		"Blind test of the surface density formula on independent surveys",
		compare.RunValidate)
}
