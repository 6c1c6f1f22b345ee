// Public domain.

package gbprog

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/geobridge/geobridge/internal/bench"
	"github.com/geobridge/geobridge/sparc"
)

func benchmarkCmd(e *env) *cobra.Command {
	var dir string
	c := &cobra.Command{
		Use:   "benchmark <catalog>",
		Short: "Benchmark every galaxy of a mass model catalog",
		Long: `Benchmark predicts every galaxy of the catalog with the geometric
bridge at fixed and fitted mass-to-light ratios, with Newtonian baryons and
with the radial acceleration relation.  It writes a per galaxy csv table and
a summary into the output directory.

The catalog may be plain text or compressed with gzip or zstd.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := sparc.Open(args[0])
			if err != nil {
				return err
			}
			e.log.Info("catalog.loaded", "file", args[0],
				"rows", len(cat.Rows), "skipped", cat.Skipped,
				"galaxies", len(cat.Galaxies()))
			rows, sum := bench.New(e.cfg, e.log).Run(cat)
			out := e.outputDir(dir)
			if err := bench.Save(out, rows, sum); err != nil {
				return err
			}
			if err := sum.WriteText(e.out); err != nil {
				return err
			}
			_, err = fmt.Fprintf(e.out, "\nResults in %s\n",
				filepath.Join(out, bench.ResultsFile))
			return err
		},
	}
	c.Flags().StringVarP(&dir, "output", "o", "", "output directory")
	c.Flags().BoolVarP(&e.quiet, "quiet", "q", false,
		"log warnings and errors only")
	return c
}
