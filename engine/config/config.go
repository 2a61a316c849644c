package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hubastard/visuals/engine/anim"
	"github.com/hubastard/visuals/engine/audio"
)

const DefaultFilename = "visuals.yaml"

// Modes select where the background brightness comes from.
const (
	ModeClear = "clear"
	ModeCount = "count"
	ModeAudio = "audio"
)

// Config is the on-disk demo configuration.
type Config struct {
	Title      string     `yaml:"title"`
	Mode       string     `yaml:"mode"`
	VSync      *bool      `yaml:"vsync,omitempty"`
	Fullscreen *bool      `yaml:"fullscreen,omitempty"`
	Width      int        `yaml:"width,omitempty"`
	Height     int        `yaml:"height,omitempty"`
	Tint       string     `yaml:"tint,omitempty"`
	ClearColor [4]float32 `yaml:"clearColor,omitempty,flow"`
	Verbose    bool       `yaml:"verbose,omitempty"`

	Shaders ShaderConfig `yaml:"shaders"`
	Count   CountConfig  `yaml:"count"`
	Audio   AudioConfig  `yaml:"audio"`
}

type ShaderConfig struct {
	Dir      string `yaml:"dir,omitempty"`
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type CountConfig struct {
	Period int `yaml:"period,omitempty"`
}

type AudioConfig struct {
	Stride   int   `yaml:"stride,omitempty"`
	Play     bool  `yaml:"play,omitempty"`
	Progress *bool `yaml:"progress,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var c Config
	c.Normalize()
	return c
}

// Normalize fills unset fields with defaults.
func (c *Config) Normalize() {
	if c.Title == "" {
		c.Title = "visuals"
	}
	if c.Mode == "" {
		c.Mode = ModeAudio
	}
	if c.VSync == nil {
		c.VSync = ptr(true)
	}
	if c.Fullscreen == nil {
		c.Fullscreen = ptr(true)
	}
	if c.Width == 0 {
		c.Width = 1280
	}
	if c.Height == 0 {
		c.Height = 720
	}
	if c.Tint == "" {
		c.Tint = "white"
	}
	if c.ClearColor == [4]float32{} {
		c.ClearColor = [4]float32{0, 0, 0, 1}
	}
	if c.Shaders.Vertex == "" {
		c.Shaders.Vertex = "triangle.vert"
	}
	if c.Shaders.Fragment == "" {
		c.Shaders.Fragment = "triangle.frag"
	}
	if c.Count.Period == 0 {
		c.Count.Period = anim.DefaultPeriod
	}
	if c.Audio.Stride == 0 {
		c.Audio.Stride = audio.DefaultStride
	}
	if c.Audio.Progress == nil {
		c.Audio.Progress = ptr(true)
	}
}

// Validate rejects values the demo cannot run with.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeClear, ModeCount, ModeAudio:
	default:
		return fmt.Errorf("unknown mode %q (want %s, %s or %s)", c.Mode, ModeClear, ModeCount, ModeAudio)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("window size must not be negative: %dx%d", c.Width, c.Height)
	}
	if c.Count.Period < 0 {
		return fmt.Errorf("count.period must not be negative: %d", c.Count.Period)
	}
	if c.Audio.Stride < 0 {
		return fmt.Errorf("audio.stride must not be negative: %d", c.Audio.Stride)
	}
	return nil
}

// Load reads path. A missing file yields the defaults; any other read or
// parse error is returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func ptr[T any](v T) *T { return &v }
