// Package config loads window, asset and gameplay settings for Agility Camp.
// Files may be YAML or TOML; an embedded YAML default is used when no file
// is found.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Config is the complete game configuration.
type Config struct {
	Window WindowConfig `yaml:"window" toml:"window"`
	Assets AssetConfig  `yaml:"assets" toml:"assets"`
	Label  LabelConfig  `yaml:"label" toml:"label"`
	Tuning Tuning       `yaml:"tuning" toml:"tuning"`
}

// WindowConfig describes the game window.
type WindowConfig struct {
	Title       string `yaml:"title" toml:"title"`
	Width       int    `yaml:"width" toml:"width"`
	Height      int    `yaml:"height" toml:"height"`
	ClearColor  RGB    `yaml:"clear_color" toml:"clear_color"`
	GroundColor RGB    `yaml:"ground_color" toml:"ground_color"`
}

// AssetConfig holds sprite and font paths relative to the working directory.
// An empty font path selects the built-in Go Bold face.
type AssetConfig struct {
	Player string `yaml:"player" toml:"player"`
	Bone   string `yaml:"bone" toml:"bone"`
	Grass  string `yaml:"grass" toml:"grass"`
	Cloud  string `yaml:"cloud" toml:"cloud"`
	Hawk   string `yaml:"hawk" toml:"hawk"`
	Font   string `yaml:"font" toml:"font"`
}

// LabelConfig places the score label.
type LabelConfig struct {
	X     float32 `yaml:"x" toml:"x"`
	Y     float32 `yaml:"y" toml:"y"`
	Size  float32 `yaml:"size" toml:"size"`
	Color RGB     `yaml:"color" toml:"color"`
}

// Tuning holds the gameplay constants. Steps are per frame.
type Tuning struct {
	AscendStep  float32 `yaml:"ascend_step" toml:"ascend_step"`
	DescendStep float32 `yaml:"descend_step" toml:"descend_step"`
	Ceiling     float32 `yaml:"ceiling" toml:"ceiling"`
	Floor       float32 `yaml:"floor" toml:"floor"`

	BoneCount    int     `yaml:"bone_count" toml:"bone_count"`
	BoneStep     float32 `yaml:"bone_step" toml:"bone_step"`
	BoneSpin     float32 `yaml:"bone_spin" toml:"bone_spin"`
	BoneSpreadX  float32 `yaml:"bone_spread_x" toml:"bone_spread_x"`
	SpawnRangeY  float32 `yaml:"spawn_range_y" toml:"spawn_range_y"`
	CollectKickX float32 `yaml:"collect_kick_x" toml:"collect_kick_x"`
	CollectRange float32 `yaml:"collect_range_y" toml:"collect_range_y"`

	WrapLeft  float32 `yaml:"wrap_left" toml:"wrap_left"`
	WrapRight float32 `yaml:"wrap_right" toml:"wrap_right"`

	HawkChance   float64 `yaml:"hawk_chance" toml:"hawk_chance"`
	HawkSpeedMin float32 `yaml:"hawk_speed_min" toml:"hawk_speed_min"`
	HawkSpeedMax float32 `yaml:"hawk_speed_max" toml:"hawk_speed_max"`
	MaxHawks     int     `yaml:"max_hawks" toml:"max_hawks"`

	FloaterStep  float32 `yaml:"floater_step" toml:"floater_step"`
	HitboxOffset float32 `yaml:"hitbox_offset" toml:"hitbox_offset"`
}

// RGB is a colour with channels nominally in [0, 1].
type RGB struct {
	R float64 `yaml:"r" toml:"r"`
	G float64 `yaml:"g" toml:"g"`
	B float64 `yaml:"b" toml:"b"`
}

// Clamped returns c with every channel clamped to [0, 1].
func (c RGB) Clamped() RGB {
	return RGB{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// RGBA8 returns the clamped colour as 8-bit channels.
func (c RGB) RGBA8() (r, g, b uint8) {
	c = c.Clamped()
	return uint8(math.Round(c.R * 255)), uint8(math.Round(c.G * 255)), uint8(math.Round(c.B * 255))
}

// InRange reports whether every channel lies in [0, 1].
func (c RGB) InRange() bool {
	return c == c.Clamped()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Validate returns an error for settings the game cannot run with, and a
// list of warnings for settings it can run with after correction.
func (c Config) Validate() (warnings []string, err error) {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}

	colors := []struct {
		name  string
		color RGB
	}{
		{"window.clear_color", c.Window.ClearColor},
		{"window.ground_color", c.Window.GroundColor},
		{"label.color", c.Label.Color},
	}
	for _, entry := range colors {
		if !entry.color.InRange() {
			warnings = append(warnings, fmt.Sprintf("%s %v has channels outside [0, 1] and will be clamped", entry.name, entry.color))
		}
	}

	if err := c.Tuning.Validate(); err != nil {
		errs = append(errs, err)
	}

	return warnings, errors.Join(errs...)
}

// Validate checks that the tuning describes a playable game.
func (t Tuning) Validate() error {
	var errs []error
	if t.Floor >= t.Ceiling {
		errs = append(errs, fmt.Errorf("tuning.floor %v must be below tuning.ceiling %v", t.Floor, t.Ceiling))
	}
	if t.WrapLeft >= t.WrapRight {
		errs = append(errs, fmt.Errorf("tuning.wrap_left %v must be below tuning.wrap_right %v", t.WrapLeft, t.WrapRight))
	}
	if t.HawkSpeedMin > t.HawkSpeedMax {
		errs = append(errs, fmt.Errorf("tuning.hawk_speed_min %v exceeds tuning.hawk_speed_max %v", t.HawkSpeedMin, t.HawkSpeedMax))
	}
	if t.HawkChance < 0 || t.HawkChance > 1 {
		errs = append(errs, fmt.Errorf("tuning.hawk_chance %v must be in [0, 1]", t.HawkChance))
	}
	if t.BoneCount < 0 || t.MaxHawks < 0 {
		errs = append(errs, errors.New("tuning.bone_count and tuning.max_hawks must not be negative"))
	}
	if t.SpawnRangeY <= 0 || t.CollectRange <= 0 || t.BoneSpreadX <= 0 {
		errs = append(errs, errors.New("tuning spawn ranges must be positive"))
	}
	return errors.Join(errs...)
}
