// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/SoftbearStudios/terragen/terrain"
	"github.com/SoftbearStudios/terragen/terrain/basin"
	"github.com/SoftbearStudios/terragen/terrain/noise"
	"gopkg.in/yaml.v3"
)

// Config is everything needed to generate and publish one map. It can be
// loaded from YAML; command line flags override the file.
type Config struct {
	Width           int          `yaml:"width"`
	Height          int          `yaml:"height"`
	Topology        string       `yaml:"topology"`
	Seed            int64        `yaml:"seed"`
	SeaLevel        float64      `yaml:"sea_level"`
	Tolerance       int          `yaml:"tolerance"`
	Fill            bool         `yaml:"fill"`
	KeepLakes       bool         `yaml:"keep_lakes"`
	Method          string       `yaml:"method"`
	NormalizePasses int          `yaml:"normalize_passes"`
	Workers         int          `yaml:"workers"`
	Noise           NoiseConfig  `yaml:"noise"`
	Output          OutputConfig `yaml:"output"`
}

type NoiseConfig struct {
	// Extent is the width of the map in noise space.
	Extent  float64 `yaml:"extent"`
	Scale   int     `yaml:"scale"`
	Quality string  `yaml:"quality"`

	Land       LayerConfig `yaml:"land"`
	Zone       LayerConfig `yaml:"zone"`
	Floor      LayerConfig `yaml:"floor"`
	Ridges     LayerConfig `yaml:"ridges"`
	Latitude   LayerConfig `yaml:"latitude"`
	Octaves    int         `yaml:"octaves"`
	Lacunarity float64     `yaml:"lacunarity"`
}

// LayerConfig is one term of the default field. A zero weight disables the
// ridges, latitude and floor terms. Alpha, Beta and Octaves only apply to the
// perlin layers (land, zone and floor).
type LayerConfig struct {
	Frequency float64 `yaml:"frequency"`
	Weight    float64 `yaml:"weight"`
	Alpha     float64 `yaml:"alpha"`
	Beta      float64 `yaml:"beta"`
	Octaves   int32   `yaml:"octaves"`
}

// newPerlinLayer returns a perlin layer with the given weight falloff, frequency
// multiplier and octaves.
func newPerlinLayer(frequency, weight, alpha, beta float64, octaves int32) LayerConfig {
	return LayerConfig{Frequency: frequency, Weight: weight, Alpha: alpha, Beta: beta, Octaves: octaves}
}

type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`
	Stage  string `yaml:"stage"`
	TTL    string `yaml:"ttl"`
	// Log is a CSV file that gets one row per generated map.
	Log string `yaml:"log"`
}

func DefaultConfig() *Config {
	opts := basin.DefaultOptions()
	ridged := noise.DefaultRidgedOptions()
	return &Config{
		Width:           512,
		Height:          256,
		Topology:        terrain.Cylinder.String(),
		Seed:            opts.Seed,
		SeaLevel:        opts.SeaLevel,
		Tolerance:       opts.Tolerance,
		Fill:            opts.FillBasins,
		KeepLakes:       opts.KeepSmallLakes,
		Method:          opts.Method.String(),
		NormalizePasses: 4,
		Noise: NoiseConfig{
			Extent:  4,
			Quality: ridged.Quality.String(),
			// Land detail, low frequency zone and open water floor.
			Land:       newPerlinLayer(1, 1, 1.5, 2, 4),
			Zone:       newPerlinLayer(0.15, 2, 2.5, 3, 4),
			Floor:      newPerlinLayer(0.15, 0.5, 2, 3, 3),
			Ridges:     LayerConfig{Frequency: 0.5, Weight: 0.25},
			Latitude:   LayerConfig{Frequency: 0.25, Weight: 0.1},
			Octaves:    ridged.Octaves,
			Lacunarity: ridged.Lacunarity,
		},
		Output: OutputConfig{
			Region: "us-east-1",
		},
	}
}

// LoadConfig reads path over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: %dx%d", terrain.ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("%w: got %d", terrain.ErrInvalidTolerance, c.Tolerance)
	}
	if c.NormalizePasses < 0 {
		return fmt.Errorf("normalize_passes cannot be negative")
	}
	if c.SeaLevel < 0 || c.SeaLevel > 1 {
		return fmt.Errorf("sea_level must be in [0, 1], got %g", c.SeaLevel)
	}
	for name, layer := range map[string]LayerConfig{"land": c.Noise.Land, "zone": c.Noise.Zone, "floor": c.Noise.Floor} {
		if layer.Octaves < 1 {
			return fmt.Errorf("noise.%s.octaves must be positive", name)
		}
	}
	if c.Noise.Extent <= 0 {
		return fmt.Errorf("noise.extent must be positive")
	}
	if _, err := terrain.ParseTopology(c.Topology); err != nil {
		return err
	}
	if _, err := basin.ParseMethod(c.Method); err != nil {
		return err
	}
	if _, err := noise.ParseQuality(c.Noise.Quality); err != nil {
		return err
	}
	if _, err := c.TTL(); err != nil {
		return fmt.Errorf("output.ttl invalid: %w", err)
	}
	return nil
}

// BasinOptions converts c for basin.Classify. c must be valid.
func (c *Config) BasinOptions() basin.Options {
	method, _ := basin.ParseMethod(c.Method)
	return basin.Options{
		Tolerance:      c.Tolerance,
		SeaLevel:       c.SeaLevel,
		FillBasins:     c.Fill,
		KeepSmallLakes: c.KeepLakes,
		Seed:           c.Seed,
		Method:         method,
	}
}

// SampleOptions converts c for terrain.Sample. c must be valid.
func (c *Config) SampleOptions() terrain.SampleOptions {
	topology, _ := terrain.ParseTopology(c.Topology)
	opts := terrain.DefaultSampleOptions(c.Width, c.Height)
	opts.Topology = topology
	opts.Extent = c.Noise.Extent
	opts.Scale = c.Noise.Scale
	opts.Workers = c.Workers
	opts.Normalize = true
	return opts
}

// TTL is how long catalog entries live, 0 meaning forever.
func (c *Config) TTL() (time.Duration, error) {
	if c.Output.TTL == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Output.TTL)
}

// parseFlags builds a Config from args. Flags that are set override the
// config file, if any.
func parseFlags(args []string) (cfg *Config, cpuProfile string, err error) {
	set := flag.NewFlagSet("generate", flag.ContinueOnError)

	var (
		configPath = set.String("config", "", "load YAML config from `file`")
		width      = set.Int("width", 0, "map width in cells")
		height     = set.Int("height", 0, "map height in cells")
		topology   = set.String("topology", "", "cylinder, rectangle or torus")
		seed       = set.Int64("seed", 0, "noise and fill seed")
		sea        = set.Float64("sea", 0, "sea level in [0, 1]")
		tolerance  = set.Int("tolerance", 0, "largest body of water, in cells, that counts as a lake")
		fill       = set.Bool("fill", false, "raise lakes above sea level")
		keepLakes  = set.Bool("keep-lakes", false, "keep lakes smaller than a quarter of the tolerance")
		method     = set.String("method", "", "union-find or three-pass")
		out        = set.String("out", "", "write maps to `dir`")
		bucket     = set.String("bucket", "", "S3 bucket, defaults to the stage's bucket")
		region     = set.String("region", "", "AWS region")
		stage      = set.String("stage", "", "AWS stage, enables S3 and DynamoDB")
		logFile    = set.String("log", "", "append a CSV row per map to `file`")
	)
	set.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")

	if err = set.Parse(args); err != nil {
		return nil, "", err
	}

	if *configPath != "" {
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			return nil, "", err
		}
	} else {
		cfg = DefaultConfig()
	}

	set.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "topology":
			cfg.Topology = *topology
		case "seed":
			cfg.Seed = *seed
		case "sea":
			cfg.SeaLevel = *sea
		case "tolerance":
			cfg.Tolerance = *tolerance
		case "fill":
			cfg.Fill = *fill
		case "keep-lakes":
			cfg.KeepLakes = *keepLakes
		case "method":
			cfg.Method = *method
		case "out":
			cfg.Output.Dir = *out
		case "bucket":
			cfg.Output.Bucket = *bucket
		case "region":
			cfg.Output.Region = *region
		case "stage":
			cfg.Output.Stage = *stage
		case "log":
			cfg.Output.Log = *logFile
		}
	})

	if err = cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, cpuProfile, nil
}
