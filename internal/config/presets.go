package config

import (
	"sort"

	"github.com/san-kum/chaosgen/internal/chaos"
	"github.com/san-kum/chaosgen/internal/dataset"
)

var Presets = map[string]dataset.Config{
	"reference": {Samples: 10000, Depth: 40, Rate: 1.618, Seed: 42, Workers: 1},
	"quick":     {Samples: 1000, Depth: 10, Rate: 1.618, Seed: 42, Workers: 1},
	"deep":      {Samples: 10000, Depth: 400, Rate: 1.618, Seed: 42, Workers: 4},
	"bulk":      {Samples: 1000000, Depth: 40, Rate: 1.618, Seed: 42, Workers: 8},
	"sqrt2":     {Samples: 10000, Depth: 40, Rate: chaos.SqrtTwo, Seed: 42, Workers: 1},
	"phi":       {Samples: 10000, Depth: 40, Rate: chaos.GoldenRatio, Seed: 42, Workers: 1},
}

func GetPreset(name string) *dataset.Config {
	preset, ok := Presets[name]
	if !ok {
		return nil
	}
	return &preset
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
