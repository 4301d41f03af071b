// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magprism/mesher"
	"github.com/katalvlaran/magprism/plane"
	"github.com/katalvlaran/magprism/supersample"
)

// Scenario describes one synthetic survey: the sample, optional grains, the
// scanning plane and the sensor.
type Scenario struct {
	Sample  SampleConfig  `yaml:"sample"`
	Grains  *GrainsConfig `yaml:"grains"`
	Scan    ScanConfig    `yaml:"scan"`
	Sensor  *SensorConfig `yaml:"sensor"` // nil means point sampling
	Workers int           `yaml:"workers"`
}

// SampleConfig is the prism array, sizes in metres.
type SampleConfig struct {
	Prisms         int                  `yaml:"prisms"`
	Lx             float64              `yaml:"lx"`
	Ly             float64              `yaml:"ly"`
	Lz             float64              `yaml:"lz"`
	Magnetizations []MagnetizationEntry `yaml:"magnetizations"`
}

// MagnetizationEntry is one prism's magnetization (A/m, degrees).
type MagnetizationEntry struct {
	Intensity   float64 `yaml:"intensity"`
	Inclination float64 `yaml:"inclination"`
	Declination float64 `yaml:"declination"`
}

// GrainsConfig scatters magnetic grains inside the sample.
type GrainsConfig struct {
	Count       int     `yaml:"count"`
	Declination float64 `yaml:"declination"`
	Inclination float64 `yaml:"inclination"`
	Std         float64 `yaml:"std"`
	Intensity   float64 `yaml:"intensity"`
	Radius      float64 `yaml:"radius"`
	Seed        int64   `yaml:"seed"`
}

// ScanConfig is the observation plane. H is in micrometres.
type ScanConfig struct {
	H     float64    `yaml:"h"`
	Nx    int        `yaml:"nx"`
	Ny    int        `yaml:"ny"`
	Area  plane.Area `yaml:"area"`
	Plane int        `yaml:"plane"`
	Theta float64    `yaml:"theta"`
}

// SensorConfig is the active sensor area in micrometres.
type SensorConfig struct {
	Lx float64 `yaml:"lx"`
	Ly float64 `yaml:"ly"`
}

var errNoGrains = errors.New("scenario: no grains configured")

// loadScenario reads and decodes a YAML scenario, rejecting unknown keys.
func loadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var sc Scenario
	if err = dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}

	return &sc, nil
}

// model builds the magnetized prism array.
func (s *Scenario) model() ([]mesher.Prism, error) {
	var mags []mesher.Magnetization
	if len(s.Sample.Magnetizations) > 0 {
		mags = make([]mesher.Magnetization, len(s.Sample.Magnetizations))
		for i, m := range s.Sample.Magnetizations {
			mags[i] = mesher.Magnetization(m)
		}
	}

	return mesher.Sample(s.Sample.Lx, s.Sample.Ly, s.Sample.Lz, s.Sample.Prisms, mags)
}

// grains draws the grain population with the scenario's seed.
func (s *Scenario) grains() ([]mesher.Sphere, error) {
	if s.Grains == nil {
		return nil, errNoGrains
	}
	g := s.Grains

	return mesher.RandomGrains(rand.New(rand.NewSource(g.Seed)), mesher.GrainSpec{
		Prisms: s.Sample.Prisms,
		Lx:     s.Sample.Lx, Ly: s.Sample.Ly, Lz: s.Sample.Lz,
		Count:       g.Count,
		Declination: g.Declination,
		Inclination: g.Inclination,
		Std:         g.Std,
		Intensity:   g.Intensity,
		Radius:      g.Radius,
	})
}

// sensors lays the observation plane. The stand-off uses the sample's
// y extent for y-normal planes and its z extent otherwise.
func (s *Scenario) sensors() (x, y, z []float64, err error) {
	alpha := plane.Alpha(s.Scan.Plane)
	if err = alpha.Validate(); err != nil {
		return nil, nil, nil, err
	}
	l := s.Sample.Lz
	if alpha.Normal() == plane.AxisY {
		l = s.Sample.Ly
	}

	return plane.CoordPlane(s.Scan.H, l, s.Scan.Nx, s.Scan.Ny, s.Scan.Area, alpha, s.Scan.Theta)
}

func (s *Scenario) alpha() plane.Alpha { return plane.Alpha(s.Scan.Plane) }

func (s *Scenario) effectiveArea() *supersample.EffectiveArea {
	if s.Sensor == nil {
		return nil
	}
	return &supersample.EffectiveArea{Lx: s.Sensor.Lx, Ly: s.Sensor.Ly}
}
