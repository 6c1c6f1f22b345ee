// Public domain.

package compare_test

import (
	"fmt"
	"math"

	"github.com/geobridge/geobridge/internal/compare"
)

func ExampleCorrelate() {
	s, err := compare.Load()
	if err != nil {
		fmt.Println(err)
		return
	}
	c, err := compare.Correlate(s.Das)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("α = %.3f - %.3f × log10(Σ)\n", c.Fit.Intercept, math.Abs(c.Fit.Slope))
	fmt.Printf("r = %.2f (%s)\n", c.Fit.R, compare.Strength(c.Fit.R))
	// Output:
	// α = 1.897 - 0.410 × log10(Σ)
	// r = -0.97 (Very strong)
}

func ExampleValidate() {
	s, err := compare.Load()
	if err != nil {
		fmt.Println(err)
		return
	}
	v := compare.Validate(s)
	fmt.Println("LITTLE THINGS:", v.LittleThingsAccuracy)
	fmt.Println("GHASP:", v.GHASPAccuracy)
	fmt.Println(v.Verdict())
	// Output:
	// LITTLE THINGS: 5/5 = 100%
	// GHASP: 3/3 = 100%
	// STRONG VALIDATION
}
