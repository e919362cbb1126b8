package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/scanchain/layout"
	"github.com/katalvlaran/scanchain/render"
)

// Config holds the defaults a --config file may override. Command line
// flags that are set explicitly win over the file.
//
// Example:
//
//	strategy: slow
//	metric: manhattan
//	svg:
//	  margin: 0.05
//	generate:
//	  seed: 7
type Config struct {
	Strategy string         `yaml:"strategy"` // fast|bands or slow|greedy
	Metric   string         `yaml:"metric"`   // euclidean or manhattan
	SVG      SVGConfig      `yaml:"svg"`
	Generate GenerateConfig `yaml:"generate"`
}

// SVGConfig mirrors render.Options.
type SVGConfig struct {
	Margin float64 `yaml:"margin"` // fraction of the larger side
	Radius float64 `yaml:"radius"` // fraction of the larger side
}

// GenerateConfig holds the synthetic layout defaults.
type GenerateConfig struct {
	Seed   int64   `yaml:"seed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func defaultConfig() Config {
	r := render.DefaultOptions()

	return Config{
		Strategy: "fast",
		Metric:   "euclidean",
		SVG:      SVGConfig{Margin: r.Margin, Radius: r.Radius},
		Generate: GenerateConfig{Seed: 1, Width: layout.DefaultWidth, Height: layout.DefaultHeight},
	}
}

// loadConfig reads path over the defaults. An empty path or an empty file
// yields the defaults; unknown keys are an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// flagOr returns the flag value when the user set it, otherwise conf.
func flagOr[T any](cmd *cobra.Command, name string, flag, conf T) T {
	if cmd.Flags().Changed(name) {
		return flag
	}

	return conf
}

// svgOptions converts the drawing section.
func (c Config) svgOptions() render.Options {
	return render.Options{Margin: c.SVG.Margin, Radius: c.SVG.Radius}
}
