package config

import (
	"fmt"
	"os"

	"github.com/san-kum/chaosgen/internal/chaos"
	"github.com/san-kum/chaosgen/internal/dataset"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSweepSteps     = 200
	DefaultSweepTransient = 300
	DefaultSweepRecord    = 200
	DefaultBins           = 20
	DefaultDataDir        = "data"
	DefaultFormat         = "csv"
)

type Config struct {
	Dataset dataset.Config `yaml:"dataset"`
	Sweep   SweepConfig    `yaml:"sweep"`
	Output  OutputConfig   `yaml:"output"`
}

type SweepConfig struct {
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	Steps     int     `yaml:"steps" validate:"gte=2"`
	Transient int     `yaml:"transient" validate:"gte=0"`
	Record    int     `yaml:"record" validate:"gte=1"`
}

type OutputConfig struct {
	DataDir string `yaml:"data_dir" validate:"required"`
	Format  string `yaml:"format" validate:"oneof=csv json xlsx svg"`
	Bins    int    `yaml:"bins" validate:"gte=1"`
}

func DefaultConfig() *Config {
	return &Config{
		Dataset: dataset.DefaultConfig(),
		Sweep: SweepConfig{
			Min:       chaos.SqrtTwo,
			Max:       chaos.GoldenRatio,
			Steps:     DefaultSweepSteps,
			Transient: DefaultSweepTransient,
			Record:    DefaultSweepRecord,
		},
		Output: OutputConfig{
			DataDir: DefaultDataDir,
			Format:  DefaultFormat,
			Bins:    DefaultBins,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) InWindow() bool {
	return chaos.InTheoreticalRange(c.Dataset.Rate)
}
