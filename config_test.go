package vaporgrid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {

	basic, err := Preset(PresetBasic)
	require.NoError(t, err)
	assert.Equal(t, 1, basic.Ground.Segments)
	assert.Equal(t, "basic", basic.Ground.Shading)
	assert.Empty(t, basic.Spotlights)
	assert.False(t, basic.PostProcessing.Enabled)

	lit, err := Preset(PresetLit)
	require.NoError(t, err)
	assert.Equal(t, PresetLit, lit.Variant)
	assert.Equal(t, 2, lit.Ground.Segments)
	assert.Equal(t, "standard", lit.Ground.Shading)
	assert.Len(t, lit.Spotlights, 2)
	assert.Equal(t, "#d53c3d", lit.Spotlights[0].Color)
	assert.Equal(t, [3]float64{0.5, 0.75, 2.2}, lit.Spotlights[0].Position)
	assert.Equal(t, [3]float64{-0.5, 0.75, 2.2}, lit.Spotlights[1].Position)
	assert.False(t, lit.PostProcessing.Enabled)

	post, err := Preset(PresetPostProcessed)
	require.NoError(t, err)
	assert.True(t, post.PostProcessing.Enabled)
	assert.Equal(t, 0.0015, post.PostProcessing.RGBShift)
	assert.True(t, post.PostProcessing.GammaCorrection)

	for _, cfg := range []Config{basic, lit, post} {
		assert.NoError(t, cfg.Validate(), cfg.Variant)
		assert.Equal(t, 0.15, cfg.Ground.Speed)
		assert.Equal(t, 2.0, cfg.Ground.Length)
		assert.Equal(t, 0.4, cfg.Ground.DisplacementScale)
		assert.Equal(t, [3]float64{0, 0.06, 1.1}, cfg.Camera.Position)
		assert.Equal(t, 1.0, cfg.Fog.Near)
		assert.Equal(t, 2.5, cfg.Fog.Far)
	}

	_, err = Preset("synthwave")
	assert.ErrorIs(t, err, ErrInvalidConfig)

}

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigTOML(t *testing.T) {

	path := writeConfig(t, "lit.toml", `
variant = "lit"
max_pixel_ratio = 1.5

[ground]
speed = 0.3

[textures]
grid = "grid.png"
mesh = "/abs/ground.glb"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, PresetLit, cfg.Variant)
	assert.Equal(t, 0.3, cfg.Ground.Speed)
	assert.Equal(t, 1.5, cfg.MaxPixelRatio)

	// Keys missing from the file keep the preset's values.
	assert.Equal(t, 2, cfg.Ground.Segments)
	assert.Equal(t, 0.4, cfg.Ground.DisplacementScale)
	assert.Len(t, cfg.Spotlights, 2)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "grid.png"), cfg.Textures.Grid)
	assert.Equal(t, "/abs/ground.glb", cfg.Textures.Mesh)
	assert.Empty(t, cfg.Textures.Displacement)

}

func TestLoadConfigYAML(t *testing.T) {

	path := writeConfig(t, "effect.yaml", `
fog:
  far: 3
camera:
  position: [0, 0.2, 1.5]
postprocessing:
  rgb_shift: 0.004
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Without a variant, the post-processed preset is used.
	assert.Equal(t, PresetPostProcessed, cfg.Variant)
	assert.Equal(t, 3.0, cfg.Fog.Far)
	assert.Equal(t, 1.0, cfg.Fog.Near)
	assert.Equal(t, [3]float64{0, 0.2, 1.5}, cfg.Camera.Position)
	assert.Equal(t, 0.004, cfg.PostProcessing.RGBShift)
	assert.True(t, cfg.PostProcessing.GammaCorrection)

}

func TestLoadConfigErrors(t *testing.T) {

	_, err := LoadConfig(writeConfig(t, "bad.toml", "[ground]\nsegments = 0\nsubdivisions = 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "ground.segments")
	assert.ErrorContains(t, err, "ground.subdivisions")

	_, err = LoadConfig(writeConfig(t, "bad.yml", "variant: vaporwave\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(writeConfig(t, "config.json", "{}"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(writeConfig(t, "broken.toml", "ground = [[["))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

}

func TestValidate(t *testing.T) {

	cfg, err := Preset(PresetLit)
	require.NoError(t, err)

	cfg.Fog.Far = 0.5
	cfg.Camera.Near = 0
	cfg.Spotlights[0].Color = "red"
	cfg.Ground.Shading = "toon"

	err = cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "fog.far")
	assert.ErrorContains(t, err, "camera")
	assert.ErrorContains(t, err, "red")
	assert.ErrorContains(t, err, "toon")

	// Fog bounds don't matter while fog is off.
	cfg, _ = Preset(PresetLit)
	cfg.Fog.On = false
	cfg.Fog.Far = 0
	assert.NoError(t, cfg.Validate())

}

func TestParseShading(t *testing.T) {

	shading, err := ParseShading("Standard")
	require.NoError(t, err)
	assert.Equal(t, ShadingStandard, shading)

	shading, err = ParseShading("basic")
	require.NoError(t, err)
	assert.Equal(t, ShadingBasic, shading)

	_, err = ParseShading("phong")
	assert.ErrorIs(t, err, ErrInvalidConfig)

}

func TestConfigPixelRatio(t *testing.T) {
	cfg, _ := Preset(PresetBasic)
	assert.Equal(t, 2.0, cfg.PixelRatio(3))
	assert.Equal(t, 1.5, cfg.PixelRatio(1.5))
	assert.Equal(t, 1.0, cfg.PixelRatio(0))
}
