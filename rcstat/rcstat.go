// Public domain.

// Package rcstat has the goodness of fit statistics used to rank rotation
// curve formulas.
//
// Degenerate input never panics and never divides by zero.  Where a
// statistic is mathematically undefined, as R² of a constant curve, the
// function returns Undefined.
package rcstat

import (
	"errors"
	"math"
	"sort"

	"github.com/soniakeys/meeus/v3/fit"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Undefined is the sentinel returned for an undefined statistic.  It is NaN
// and so must be tested with IsUndefined, not ==.
var Undefined = math.NaN()

// IsUndefined reports whether x is the Undefined sentinel.
func IsUndefined(x float64) bool { return math.IsNaN(x) }

// ErrDegenerate is returned by Linregress when the regression has no
// unique solution.
var ErrDegenerate = errors.New("rcstat: degenerate regression input")

// RMSResidual returns sqrt(mean((obs-pred)²)).
//
// It is symmetric in its arguments and zero only when they are equal
// element-wise.  Empty input is Undefined.  Lengths must match.
func RMSResidual(obs, pred []float64) float64 {
	if len(obs) == 0 {
		return Undefined
	}
	return floats.Distance(obs, pred, 2) / math.Sqrt(float64(len(obs)))
}

// RSquared returns the coefficient of determination 1 - SS_res/SS_tot of
// pred as a model of obs, or Undefined when SS_tot is zero.
func RSquared(obs, pred []float64) float64 {
	if len(obs) == 0 {
		return Undefined
	}
	mean := stat.Mean(obs, nil)
	var ssRes, ssTot float64
	for i, o := range obs {
		d := o - pred[i]
		ssRes += d * d
		d = o - mean
		ssTot += d * d
	}
	if !(ssTot > 0) {
		return Undefined
	}
	return 1 - ssRes/ssTot
}

func points(x, y []float64) []struct{ X, Y float64 } {
	p := make([]struct{ X, Y float64 }, len(x))
	for i := range x {
		p[i].X = x[i]
		p[i].Y = y[i]
	}
	return p
}

// zeroVariance is true if all values of x are equal.
func zeroVariance(x []float64) bool {
	return floats.Max(x) == floats.Min(x)
}

// Pearson returns the Pearson correlation coefficient of x and y, or
// Undefined for fewer than two points or zero variance in either.
func Pearson(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) || zeroVariance(x) || zeroVariance(y) {
		return Undefined
	}
	r := fit.CorrelationCoefficient(points(x, y))
	// rounding can carry |r| a hair past one
	return math.Max(-1, math.Min(1, r))
}

// Regression is the result of an ordinary least squares line fit
// y = Intercept + Slope·x.
type Regression struct {
	Slope, Intercept float64
	R                float64 // Pearson correlation
	P                float64 // two-sided p-value for slope = 0
	StdErr           float64 // standard error of the slope
	InterceptStdErr  float64
	N                int
}

// R2 is the fraction of variance explained by the line.
func (r Regression) R2() float64 { return r.R * r.R }

// At evaluates the fitted line.
func (r Regression) At(x float64) float64 { return r.Intercept + r.Slope*x }

// perfectTol is the largest 1-r² treated as perfect correlation.
const perfectTol = 1e-14

// Linregress fits a least squares line to x, y.
//
// It needs at least three points and non-zero variance in x.  When y is
// constant the slope is zero and R is Undefined.
func Linregress(x, y []float64) (Regression, error) {
	n := len(x)
	if n < 3 || n != len(y) || zeroVariance(x) {
		return Regression{}, ErrDegenerate
	}
	slope, intercept := fit.Linear(points(x, y))
	reg := Regression{Slope: slope, Intercept: intercept, N: n}
	if zeroVariance(y) {
		reg.Slope = 0
		reg.Intercept = y[0]
		reg.R = Undefined
		reg.P = 1
		return reg, nil
	}
	r := Pearson(x, y)
	reg.R = r

	df := float64(n - 2)
	xm, xv := stat.PopMeanVariance(x, nil)
	_, yv := stat.PopMeanVariance(y, nil)
	one := 1 - r*r
	if one <= perfectTol {
		// perfect correlation, up to rounding in r
		reg.R = math.Copysign(1, r)
		reg.P = 0
		return reg, nil
	}
	tt := r * math.Sqrt(df/one)
	reg.P = 2 * distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Survival(math.Abs(tt))
	reg.StdErr = math.Sqrt(one * yv / xv / df)
	reg.InterceptStdErr = reg.StdErr * math.Sqrt(xv+xm*xm)
	return reg, nil
}

// Mean returns the arithmetic mean, Undefined for empty input.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return Undefined
	}
	return stat.Mean(x, nil)
}

// Median returns the median of x, the mean of the two middle values for an
// even count.  Undefined values in x are ignored.  x is not modified.
func Median(x []float64) float64 {
	s := make([]float64, 0, len(x))
	for _, v := range x {
		if !IsUndefined(v) {
			s = append(s, v)
		}
	}
	if len(s) == 0 {
		return Undefined
	}
	sort.Float64s(s)
	m := len(s) / 2
	if len(s)%2 == 1 {
		return s[m]
	}
	return (s[m-1] + s[m]) / 2
}

// RMS returns sqrt(mean(x²)).
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return Undefined
	}
	return floats.Norm(x, 2) / math.Sqrt(float64(len(x)))
}

// MAE returns the mean absolute value of x.
func MAE(x []float64) float64 {
	if len(x) == 0 {
		return Undefined
	}
	return floats.Norm(x, 1) / float64(len(x))
}

// CountBelow counts values strictly less than limit.  Undefined values are
// not counted.
func CountBelow(x []float64, limit float64) (n int) {
	for _, v := range x {
		if v < limit {
			n++
		}
	}
	return
}

// CountAbove counts values strictly greater than limit.  Undefined values
// are not counted.
func CountAbove(x []float64, limit float64) (n int) {
	for _, v := range x {
		if v > limit {
			n++
		}
	}
	return
}
