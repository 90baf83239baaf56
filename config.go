package vaporgrid

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// The three variants of the effect.
const (
	// PresetBasic is an unlit, single-segment ground without post-processing.
	PresetBasic = "basic"
	// PresetLit adds a second segment for endless travel, lit by an ambient light and two spotlights.
	PresetLit = "lit"
	// PresetPostProcessed is the lit variant seen through an RGB shift and gamma correction.
	PresetPostProcessed = "postprocessed"
)

// Config describes everything needed to assemble the effect.
type Config struct {
	Variant string `toml:"variant" yaml:"variant"`

	Ground         GroundConfig         `toml:"ground" yaml:"ground"`
	Fog            FogConfig            `toml:"fog" yaml:"fog"`
	Camera         CameraConfig         `toml:"camera" yaml:"camera"`
	Ambient        AmbientConfig        `toml:"ambient" yaml:"ambient"`
	Spotlights     []SpotlightConfig    `toml:"spotlights" yaml:"spotlights"`
	PostProcessing PostProcessingConfig `toml:"postprocessing" yaml:"postprocessing"`
	Textures       TextureConfig        `toml:"textures" yaml:"textures"`

	// MaxPixelRatio caps the device scale factor used for rendering.
	MaxPixelRatio float64 `toml:"max_pixel_ratio" yaml:"max_pixel_ratio"`
}

// GroundConfig describes the scrolling ground segments.
type GroundConfig struct {
	Segments          int     `toml:"segments" yaml:"segments"`
	Width             float64 `toml:"width" yaml:"width"`
	Length            float64 `toml:"length" yaml:"length"`
	Subdivisions      int     `toml:"subdivisions" yaml:"subdivisions"`
	Speed             float64 `toml:"speed" yaml:"speed"`
	Height            float64 `toml:"height" yaml:"height"`
	DisplacementScale float64 `toml:"displacement_scale" yaml:"displacement_scale"`
	Shading           string  `toml:"shading" yaml:"shading"` // "basic" or "standard"
	Metalness         float64 `toml:"metalness" yaml:"metalness"`
	Roughness         float64 `toml:"roughness" yaml:"roughness"`
}

// FogConfig describes linear depth fog.
type FogConfig struct {
	On    bool    `toml:"on" yaml:"on"`
	Color string  `toml:"color" yaml:"color"`
	Near  float64 `toml:"near" yaml:"near"`
	Far   float64 `toml:"far" yaml:"far"`
}

// CameraConfig describes the perspective camera and its orbit controls.
type CameraConfig struct {
	FieldOfView float64    `toml:"fov" yaml:"fov"`
	Near        float64    `toml:"near" yaml:"near"`
	Far         float64    `toml:"far" yaml:"far"`
	Position    [3]float64 `toml:"position" yaml:"position"`
	Target      [3]float64 `toml:"target" yaml:"target"`
	Damping     float64    `toml:"damping" yaml:"damping"` // 0 disables damping
}

// AmbientConfig describes the ambient light. An intensity of 0 leaves it out.
type AmbientConfig struct {
	Color     string  `toml:"color" yaml:"color"`
	Intensity float64 `toml:"intensity" yaml:"intensity"`
}

// SpotlightConfig describes one spotlight.
type SpotlightConfig struct {
	Color     string     `toml:"color" yaml:"color"`
	Intensity float64    `toml:"intensity" yaml:"intensity"`
	Distance  float64    `toml:"distance" yaml:"distance"`
	Angle     float64    `toml:"angle" yaml:"angle"` // radians
	Penumbra  float64    `toml:"penumbra" yaml:"penumbra"`
	Decay     float64    `toml:"decay" yaml:"decay"`
	Position  [3]float64 `toml:"position" yaml:"position"`
	Target    [3]float64 `toml:"target" yaml:"target"`
}

// PostProcessingConfig describes the post-processing chain.
type PostProcessingConfig struct {
	Enabled         bool    `toml:"enabled" yaml:"enabled"`
	RGBShift        float64 `toml:"rgb_shift" yaml:"rgb_shift"`
	GammaCorrection bool    `toml:"gamma_correction" yaml:"gamma_correction"`
}

// TextureConfig lists asset paths. Empty texture paths use procedurally generated images; an empty mesh path uses a generated plane.
type TextureConfig struct {
	Grid         string `toml:"grid" yaml:"grid"`
	Displacement string `toml:"displacement" yaml:"displacement"`
	Metalness    string `toml:"metalness" yaml:"metalness"`
	Mesh         string `toml:"mesh" yaml:"mesh"`
}

// Preset returns the Config for the named variant.
func Preset(variant string) (Config, error) {

	cfg := Config{
		Variant: PresetBasic,
		Ground: GroundConfig{
			Segments:          1,
			Width:             1,
			Length:            DefaultSegmentLength,
			Subdivisions:      24,
			Speed:             DefaultScrollSpeed,
			DisplacementScale: 0.4,
			Shading:           "basic",
			Roughness:         1,
		},
		Fog: FogConfig{On: true, Color: "#000000", Near: 1, Far: 2.5},
		Camera: CameraConfig{
			FieldOfView: 75,
			Near:        0.01,
			Far:         20,
			Position:    [3]float64{0, 0.06, 1.1},
			Damping:     0.05,
		},
		Ambient:       AmbientConfig{Color: "#ffffff", Intensity: 0},
		MaxPixelRatio: 2,
	}

	switch variant {
	case PresetBasic:
	case PresetLit, PresetPostProcessed:
		cfg.Variant = variant
		cfg.Ground.Segments = 2
		cfg.Ground.Shading = "standard"
		cfg.Ground.Metalness = 0.96
		cfg.Ground.Roughness = 0.5
		cfg.Ambient.Intensity = 1
		for _, side := range []float64{1, -1} {
			cfg.Spotlights = append(cfg.Spotlights, SpotlightConfig{
				Color:     "#d53c3d",
				Intensity: 2,
				Distance:  25,
				Angle:     math.Pi * 0.1,
				Penumbra:  0.25,
				Decay:     2,
				Position:  [3]float64{0.5 * side, 0.75, 2.2},
				Target:    [3]float64{-0.25 * side, 0.25, 0.25},
			})
		}
		if variant == PresetPostProcessed {
			cfg.PostProcessing = PostProcessingConfig{Enabled: true, RGBShift: 0.0015, GammaCorrection: true}
		}
	default:
		return Config{}, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, variant)
	}

	return cfg, nil

}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file. The file's variant (postprocessed if absent) selects the preset,
// and every other key in the file overrides that preset's value.
func LoadConfig(path string) (Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var unmarshal func([]byte, any) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		unmarshal = toml.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return Config{}, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, filepath.Ext(path))
	}

	var header struct {
		Variant string `toml:"variant" yaml:"variant"`
	}
	if err := unmarshal(data, &header); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if header.Variant == "" {
		header.Variant = PresetPostProcessed
	}

	cfg, err := Preset(header.Variant)
	if err != nil {
		return Config{}, err
	}

	if err := unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Relative asset paths are relative to the config file.
	dir := filepath.Dir(path)
	for _, p := range []*string{&cfg.Textures.Grid, &cfg.Textures.Displacement, &cfg.Textures.Metalness, &cfg.Textures.Mesh} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}

	return cfg, cfg.Validate()

}

// Validate checks the Config for values the effect can't be built from.
func (cfg Config) Validate() error {

	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	g := cfg.Ground
	if g.Segments < 1 {
		fail("ground.segments must be at least 1, got %d", g.Segments)
	}
	if g.Length <= 0 || g.Width <= 0 {
		fail("ground.width and ground.length must be positive")
	}
	if g.Subdivisions < 1 {
		fail("ground.subdivisions must be at least 1, got %d", g.Subdivisions)
	}
	if g.Speed < 0 {
		fail("ground.speed must not be negative, got %v", g.Speed)
	}
	if _, err := ParseShading(g.Shading); err != nil {
		errs = append(errs, err)
	}
	if cfg.Fog.On && cfg.Fog.Far <= cfg.Fog.Near {
		fail("fog.far (%v) must be greater than fog.near (%v)", cfg.Fog.Far, cfg.Fog.Near)
	}
	if c := cfg.Camera; c.Near <= 0 || c.Far <= c.Near || c.FieldOfView <= 0 || c.FieldOfView >= 180 {
		fail("camera needs 0 < near < far and 0 < fov < 180")
	}
	if cfg.Camera.Damping < 0 || cfg.Camera.Damping > 1 {
		fail("camera.damping must be between 0 and 1, got %v", cfg.Camera.Damping)
	}
	if cfg.MaxPixelRatio <= 0 {
		fail("max_pixel_ratio must be positive, got %v", cfg.MaxPixelRatio)
	}

	colors := []string{cfg.Fog.Color, cfg.Ambient.Color}
	for _, spot := range cfg.Spotlights {
		colors = append(colors, spot.Color)
	}
	for _, c := range colors {
		if _, err := NewColorFromHex(c); err != nil {
			fail("%v", err)
		}
	}

	return errors.Join(errs...)

}

// ParseShading converts a shading name ("basic" or "standard") to a Shading value.
func ParseShading(name string) (Shading, error) {
	switch strings.ToLower(name) {
	case "basic":
		return ShadingBasic, nil
	case "standard":
		return ShadingStandard, nil
	}
	return ShadingBasic, fmt.Errorf("%w: unknown shading %q", ErrInvalidConfig, name)
}

// PixelRatio caps a device scale factor to the Config's MaxPixelRatio.
func (cfg Config) PixelRatio(deviceScale float64) float64 {
	if deviceScale <= 0 {
		deviceScale = 1
	}
	return math.Min(deviceScale, cfg.MaxPixelRatio)
}
