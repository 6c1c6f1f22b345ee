// Public domain.

// Package config holds program parameters, read from an optional YAML file
// over hard coded defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/geobridge/geobridge/bridge"
	"github.com/geobridge/geobridge/mlfit"
)

// DefaultFile is the configuration file looked for in the working
// directory when none is specified.
const DefaultFile = "geobridge.yaml"

var ErrInvalid = errors.New("invalid configuration")

// Error reports a problem with a configuration file.
type Error struct {
	Path  string
	Field string // empty for read and syntax errors
	Err   error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config %s: field %s: %v", e.Path, e.Field, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type Config struct {
	A0     float64 `yaml:"a0"`
	G      float64 `yaml:"g"`
	ML     ML      `yaml:"ml"`
	Bounds Bounds  `yaml:"bounds"`
	Fit    Fit     `yaml:"fit"`
	Output string  `yaml:"output"`
	Seed   uint64  `yaml:"seed"`
}

// ML holds the fit starting point and the fixed ratio of the zero
// parameter prediction.
type ML struct {
	Disk  float64 `yaml:"disk"`
	Bulge float64 `yaml:"bulge"`
	Fixed float64 `yaml:"fixed"`
}

// Bounds are [lo, hi] pairs.
type Bounds struct {
	Disk  []float64 `yaml:"disk"`
	Bulge []float64 `yaml:"bulge"`
}

type Fit struct {
	XAtol         float64 `yaml:"xatol"`
	FAtol         float64 `yaml:"fatol"`
	MaxIter       int     `yaml:"max_iter"`
	MaxIterSingle int     `yaml:"max_iter_single"`
	MinPoints     int     `yaml:"min_points"`
}

// Default returns the built in configuration.
func Default() Config {
	return Config{
		A0: bridge.A0,
		G:  bridge.G,
		ML: ML{
			Disk:  bridge.DefaultML.Disk,
			Bulge: bridge.DefaultML.Bul,
			Fixed: bridge.FixedML.Disk,
		},
		Bounds: Bounds{
			Disk:  []float64{mlfit.DiskBounds.Lo, mlfit.DiskBounds.Hi},
			Bulge: []float64{mlfit.BulgeBounds.Lo, mlfit.BulgeBounds.Hi},
		},
		Fit: Fit{
			XAtol:         mlfit.DefaultTol,
			FAtol:         mlfit.DefaultTol,
			MaxIter:       mlfit.DefaultMaxIter,
			MaxIterSingle: mlfit.DefaultMaxIterSingle,
			MinPoints:     3,
		},
		Output: "results",
		Seed:   3,
	}
}

// Load reads the file at path over the defaults.
//
// A missing file is an error only if required is true, otherwise the
// defaults are returned.
func Load(path string, required bool) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, &Error{Path: path, Err: err}
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, &Error{Path: path, Err: err}
	}
	if err := c.validate(path); err != nil {
		return c, err
	}
	return c, nil
}

func invalid(path, field, msg string) error {
	return &Error{Path: path, Field: field,
		Err: fmt.Errorf("%s: %w", msg, ErrInvalid)}
}

// Validate checks value ranges.
func (c Config) Validate() error { return c.validate("") }

func (c Config) validate(path string) error {
	switch {
	case !(c.A0 > 0):
		return invalid(path, "a0", "must be positive")
	case !(c.G > 0):
		return invalid(path, "g", "must be positive")
	case !(c.ML.Fixed > 0):
		return invalid(path, "ml.fixed", "must be positive")
	}
	for _, b := range []struct {
		field string
		v     []float64
		start float64
	}{
		{"bounds.disk", c.Bounds.Disk, c.ML.Disk},
		{"bounds.bulge", c.Bounds.Bulge, c.ML.Bulge},
	} {
		if len(b.v) != 2 {
			return invalid(path, b.field, "want [lo, hi]")
		}
		if !(b.v[0] > 0 && b.v[0] < b.v[1]) {
			return invalid(path, b.field, "want 0 < lo < hi")
		}
		if b.start < b.v[0] || b.start > b.v[1] {
			return invalid(path, b.field,
				fmt.Sprintf("start %g outside bounds", b.start))
		}
	}
	switch {
	case !(c.Fit.XAtol > 0) || !(c.Fit.FAtol > 0):
		return invalid(path, "fit", "tolerances must be positive")
	case c.Fit.MaxIter < 1 || c.Fit.MaxIterSingle < 1:
		return invalid(path, "fit", "max_iter must be positive")
	case c.Fit.MinPoints < 1:
		return invalid(path, "fit.min_points", "must be positive")
	case c.Output == "":
		return invalid(path, "output", "required")
	}
	return nil
}

// FixedML is the ratio pair of the zero parameter prediction.
func (c Config) FixedML() bridge.ML { return bridge.Shared(c.ML.Fixed) }

// Fitter returns a fitter with the configured parameters.  c must be valid.
func (c Config) Fitter() *mlfit.Fitter {
	return mlfit.New(
		mlfit.WithA0(c.A0),
		mlfit.WithStart(bridge.ML{Disk: c.ML.Disk, Bul: c.ML.Bulge}),
		mlfit.WithDiskBounds(mlfit.Bounds{Lo: c.Bounds.Disk[0], Hi: c.Bounds.Disk[1]}),
		mlfit.WithBulgeBounds(mlfit.Bounds{Lo: c.Bounds.Bulge[0], Hi: c.Bounds.Bulge[1]}),
		mlfit.WithTolerance(c.Fit.XAtol, c.Fit.FAtol),
		mlfit.WithMaxIter(c.Fit.MaxIter, c.Fit.MaxIterSingle),
	)
}
