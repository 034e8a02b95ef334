// Package config holds the user-adjustable settings of a drawing session.
//
// A Config is a plain value: the host builds a snapshot (from a TOML file,
// toolbar controls or flags), and the engine sanitizes it once on ingestion
// so every later division and modulo works on safe values.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"WigglyBoard/internal/state"
)

type Mode string

const (
	ModeDraw  Mode = "draw"
	ModeErase Mode = "erase"
)

type Capture string

const (
	CaptureStatic   Capture = "static"
	CaptureAnimated Capture = "animated"
)

type Shape string

const (
	ShapeCircle Shape = "circle"
	ShapeSquare Shape = "square"
)

const (
	DefaultColor          = "#ff3333"
	DefaultEchoDelayMs    = 1000.0
	DefaultSpeedThreshold = 3.0
	DefaultFrameRate      = 60

	// MinEchoDelayMs and EchoCountLimit bound the echo settings; every echo
	// is a full copy of its path.
	MinEchoDelayMs = 1.0
	EchoCountLimit = 20

	// MinVisibleThickness is the floor applied to speed-scaled brushes.
	MinVisibleThickness = 6.0

	maxWiggleSpeed = 20
)

type Config struct {
	Layer   state.Layer      `toml:"layer"`
	Mode    Mode             `toml:"mode"`
	Capture Capture          `toml:"capture"`
	Shape   Shape            `toml:"shape"`
	Brush   state.BrushStyle `toml:"brush"`
	Color   string           `toml:"color"`

	Thickness     float64 `toml:"thickness"`
	Jitter        float64 `toml:"jitter"`
	WiggleSpeed   int     `toml:"wiggle_speed"`
	PlaybackSpeed float64 `toml:"playback_speed"`

	Echo         bool    `toml:"echo"`
	EchoPreview  bool    `toml:"echo_preview"`
	EchoDelayMs  float64 `toml:"echo_delay_ms"`
	MaxEchoCount int     `toml:"max_echo_count"`
	EchoFade     float64 `toml:"echo_fade"`

	PencilDensity   float64 `toml:"pencil_density"`
	PencilRoughness float64 `toml:"pencil_roughness"`

	SpeedScaling   bool    `toml:"speed_scaling"`
	MinThickness   float64 `toml:"min_thickness"`
	MaxThickness   float64 `toml:"max_thickness"`
	SpeedThreshold float64 `toml:"speed_threshold"`

	EraseRadius float64 `toml:"erase_radius"`
	FrameRate   int     `toml:"frame_rate"`
}

func Default() Config {
	return Config{
		Layer:           state.Foreground,
		Mode:            ModeDraw,
		Capture:         CaptureStatic,
		Shape:           ShapeCircle,
		Brush:           state.BrushNormal,
		Color:           DefaultColor,
		Thickness:       4,
		Jitter:          2,
		WiggleSpeed:     18,
		PlaybackSpeed:   1,
		EchoPreview:     true,
		EchoDelayMs:     DefaultEchoDelayMs,
		MaxEchoCount:    5,
		EchoFade:        0.7,
		PencilDensity:   0.5,
		PencilRoughness: 0.3,
		SpeedScaling:    true,
		MinThickness:    6,
		MaxThickness:    30,
		SpeedThreshold:  DefaultSpeedThreshold,
		EraseRadius:     20,
		FrameRate:       DefaultFrameRate,
	}
}

// Load decodes the TOML file at path over the defaults. Keys the file sets
// but Config does not know are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: %w: %v", path, ErrUnknownKey, undecoded)
	}
	return cfg.Sanitize(), nil
}

var ErrUnknownKey = errors.New("unknown key")

// Sanitize returns a copy of c with every value clamped into its usable
// range. Invalid selectors fall back to their defaults.
func (c Config) Sanitize() Config {
	d := Default()

	if c.Layer != state.Foreground && c.Layer != state.Background {
		c.Layer = d.Layer
	}
	if c.Mode != ModeDraw && c.Mode != ModeErase {
		c.Mode = d.Mode
	}
	if c.Capture != CaptureStatic && c.Capture != CaptureAnimated {
		c.Capture = d.Capture
	}
	if c.Shape != ShapeCircle && c.Shape != ShapeSquare {
		c.Shape = d.Shape
	}
	if c.Brush != state.BrushNormal && c.Brush != state.BrushPencil {
		c.Brush = d.Brush
	}
	if _, err := colorful.Hex(c.Color); err != nil {
		c.Color = d.Color
	}

	c.Thickness = max(c.Thickness, 0.5)
	c.Jitter = max(c.Jitter, 0)
	c.WiggleSpeed = min(max(c.WiggleSpeed, 1), maxWiggleSpeed)
	if c.PlaybackSpeed <= 0 {
		c.PlaybackSpeed = 1
	}

	if !(c.EchoDelayMs > 0) {
		c.EchoDelayMs = DefaultEchoDelayMs
	}
	c.EchoDelayMs = max(c.EchoDelayMs, MinEchoDelayMs)
	c.MaxEchoCount = min(max(c.MaxEchoCount, 0), EchoCountLimit)
	c.EchoFade = clamp01(c.EchoFade)

	c.PencilDensity = clamp01(c.PencilDensity)
	c.PencilRoughness = clamp01(c.PencilRoughness)

	c.MinThickness = max(c.MinThickness, 0)
	c.MaxThickness = max(c.MaxThickness, c.MinThickness, MinVisibleThickness)
	if c.SpeedThreshold <= 0 {
		c.SpeedThreshold = DefaultSpeedThreshold
	}

	c.EraseRadius = max(c.EraseRadius, 1)
	if c.FrameRate <= 0 {
		c.FrameRate = DefaultFrameRate
	}
	return c
}

// HoldFrames is the number of frames a jitter offset is held before it
// refreshes. Higher wiggle speeds shorten the hold.
func (c Config) HoldFrames() int {
	return HoldFramesFor(c.WiggleSpeed)
}

func HoldFramesFor(wiggleSpeed int) int {
	return max(1, 21-wiggleSpeed)
}

// FrameInterval is the nominal time between two rendered frames.
func (c Config) FrameInterval() time.Duration {
	rate := c.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}

// StrokeColor parses Color, falling back to the default colour.
func (c Config) StrokeColor() color.NRGBA {
	col, err := ParseColor(c.Color)
	if err != nil {
		col, _ = ParseColor(DefaultColor)
	}
	return col
}

// ParseColor reads an opaque "#rrggbb" colour.
func ParseColor(hex string) (color.NRGBA, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
