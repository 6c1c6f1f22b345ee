// Public domain.

// Package compare tests the surface density formulas for the rotation
// curve exponent against literature samples.
//
// Three studies are provided.  Framework compares the single power law
// formula with the three phase refinement.  Correlate shows surface density
// is the property that best predicts the exponent and rederives the power
// law.  Validate is a blind test of the power law on galaxies outside the
// calibration sample.
package compare

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed samples.yaml
var samplesYAML []byte

// DasGalaxy is a galaxy of the calibration sample.
type DasGalaxy struct {
	Name  string  `yaml:"name"`
	MBar  float64 `yaml:"m_bar"` // 1e9 M_sun
	RMax  float64 `yaml:"r_max"` // kpc
	Alpha float64 `yaml:"alpha"`
}

// Anchor is a galaxy with a fiducial exponent and a Tully-Fisher mass.
type Anchor struct {
	Name  string  `yaml:"name"`
	VFlat float64 `yaml:"v_flat"` // km/s
	RMax  float64 `yaml:"r_max"`  // kpc
	H     float64 `yaml:"h"`      // disk scale length, kpc
	Alpha float64 `yaml:"alpha"`
}

// Dwarf is a LITTLE THINGS galaxy.
type Dwarf struct {
	Name     string  `yaml:"name"`
	Distance float64 `yaml:"distance"` // Mpc
	LogMHI   float64 `yaml:"log_mhi"`
	RMax     float64 `yaml:"r_max"`
	Observed string  `yaml:"observed"`
}

// Spiral is a GHASP galaxy.
type Spiral struct {
	Name     string  `yaml:"name"`
	Type     string  `yaml:"type"`
	MBar     float64 `yaml:"m_bar"` // M_sun
	RMax     float64 `yaml:"r_max"`
	Observed string  `yaml:"observed"`
}

// Samples holds all literature samples.
type Samples struct {
	Das          []DasGalaxy `yaml:"das"`
	Anchor       []Anchor    `yaml:"anchor"`
	LittleThings []Dwarf     `yaml:"little_things"`
	GHASP        []Spiral    `yaml:"ghasp"`
}

// Load returns the built in samples.
func Load() (*Samples, error) {
	var s Samples
	if err := yaml.Unmarshal(samplesYAML, &s); err != nil {
		return nil, fmt.Errorf("compare: samples: %w", err)
	}
	return &s, nil
}
