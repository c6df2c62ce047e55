package config

import (
	"fmt"
	"os"

	"github.com/san-kum/gravitylab/internal/params"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS           = 60
	DefaultStars         = 200
	DefaultViewportScale = 8.0
	DefaultDataDir       = ".gravitylab"
	DefaultFrames        = 600
	DefaultWidth         = 1280.0
	DefaultHeight        = 720.0
)

type Config struct {
	Params params.Parameters `yaml:"params"`
	FPS    int               `yaml:"fps"`
	Stars  int               `yaml:"stars"`
	// Seed feeds the star field; 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`
	// ViewportScale is the number of scene pixels per braille dot in the
	// terminal view.
	ViewportScale float64 `yaml:"viewport_scale"`
	DataDir       string  `yaml:"data_dir"`
	Frames        int     `yaml:"frames"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Events        []Event `yaml:"events,omitempty"`
}

// Event merges an update into the parameters when a headless run reaches
// Frame.
type Event struct {
	Frame         int `yaml:"frame"`
	params.Update `yaml:",inline"`
}

func DefaultConfig() *Config {
	return &Config{
		Params:        params.Defaults(),
		FPS:           DefaultFPS,
		Stars:         DefaultStars,
		ViewportScale: DefaultViewportScale,
		DataDir:       DefaultDataDir,
		Frames:        DefaultFrames,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base, so fields the file leaves out keep
// base's values. base is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	base.Normalize()
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Normalize clamps parameters and replaces unusable settings with defaults.
// Nothing is rejected.
func (c *Config) Normalize() {
	c.Params = c.Params.Clamp()
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.Stars < 0 {
		c.Stars = 0
	}
	if c.ViewportScale <= 0 {
		c.ViewportScale = DefaultViewportScale
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.Frames < 0 {
		c.Frames = DefaultFrames
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	kept := c.Events[:0]
	for _, ev := range c.Events {
		if ev.Frame >= 0 && !ev.Update.Empty() {
			kept = append(kept, ev)
		}
	}
	c.Events = kept
}
