package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/gravitylab/internal/params"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

var Presets = map[string]params.Parameters{
	"earth-moon": params.Defaults(),
	"escape": {
		EarthMass: 5.97, MoonMass: 0.073, Distance: 350, Velocity: 1.5,
		ShowVectors: true, ShowField: true, ShowPath: true, AutoOrbit: true,
	},
	"decay": {
		EarthMass: 5.97, MoonMass: 0.073, Distance: 350, Velocity: 0.6,
		ShowVectors: true, ShowField: true, ShowPath: true, AutoOrbit: true,
	},
	"drift-gap": {
		EarthMass: 5.97, MoonMass: 0.073, Distance: 350, Velocity: 1.18,
		ShowVectors: true, ShowField: true, ShowPath: true, AutoOrbit: true,
	},
	"manual": {
		EarthMass: 5.97, MoonMass: 0.073, Distance: 250, Velocity: 1.0,
		ShowVectors: true, ShowField: true, ShowPath: false, AutoOrbit: false,
	},
	"heavy": {
		EarthMass: 15, MoonMass: 0.3, Distance: 200, Velocity: 1.0,
		ShowVectors: true, ShowField: true, ShowPath: true, AutoOrbit: true,
	},
}

// GetPreset returns a default config carrying the named preset's
// parameters, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Params = p.Clamp()
	return cfg
}

// Resolve is GetPreset with an error naming the available presets.
func Resolve(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
