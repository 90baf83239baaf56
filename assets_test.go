package vaporgrid

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProceduralAssets(t *testing.T) {

	assets := ProceduralAssets()

	assert.Equal(t, image.Rect(0, 0, 256, 512), assets.Grid.Bounds())
	assert.Equal(t, image.Rect(0, 0, 128, 256), assets.Displacement.Bounds())
	assert.Equal(t, image.Rect(0, 0, 64, 128), assets.Metalness.Bounds())
	assert.Nil(t, assets.Mesh)

}

func TestLoadAssetsFallback(t *testing.T) {

	dir := t.TempDir()
	notAnImage := filepath.Join(dir, "grid.png")
	require.NoError(t, os.WriteFile(notAnImage, []byte("not a png"), 0o644))

	assets := LoadAssets(TextureConfig{
		Grid:         notAnImage,
		Displacement: filepath.Join(dir, "missing.png"),
		Mesh:         filepath.Join(dir, "missing.glb"),
	})

	assert.Equal(t, image.Rect(0, 0, 256, 512), assets.Grid.Bounds())
	assert.Equal(t, image.Rect(0, 0, 128, 256), assets.Displacement.Bounds())
	assert.NotNil(t, assets.Metalness)
	assert.Nil(t, assets.Mesh)

}

func TestLoadAssetsFromFiles(t *testing.T) {

	dir := t.TempDir()

	gridPath := filepath.Join(dir, "grid.png")
	f, err := os.Create(gridPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, NewGridImage(32, 64, 2, 4, NewColor(1, 0, 1, 1), NewColor(0, 0, 0, 1))))
	require.NoError(t, f.Close())

	meshPath := filepath.Join(dir, "ground.glb")
	require.NoError(t, ExportGLB(NewPlaneMesh(1, 2, 3, 3), meshPath))

	assets := LoadAssets(TextureConfig{Grid: gridPath, Mesh: meshPath})

	assert.Equal(t, image.Rect(0, 0, 32, 64), assets.Grid.Bounds())
	require.NotNil(t, assets.Mesh)
	assert.Equal(t, 18, assets.Mesh.TriangleCount())

}

func TestGLBRoundTrip(t *testing.T) {

	mesh := NewPlaneMesh(1, 2, 2, 2)
	mesh.Displace(NewHeightMap(filledGray(4, 4, 255)), 0.25)

	path := filepath.Join(t.TempDir(), "segment.glb")
	require.NoError(t, ExportGLB(mesh, path))

	loaded, err := LoadSegmentMesh(path)
	require.NoError(t, err)

	require.Len(t, loaded.Vertices, len(mesh.Vertices))
	assert.Equal(t, mesh.Indices, loaded.Indices)

	for i, v := range loaded.Vertices {
		assert.True(t, v.Position.Equals(mesh.Vertices[i].Position), "vertex %d", i)
		assert.True(t, v.Normal.Equals(mesh.Vertices[i].Normal), "vertex %d", i)
		assert.InDelta(t, mesh.Vertices[i].U, v.U, 1e-6)
		assert.InDelta(t, mesh.Vertices[i].V, v.V, 1e-6)
	}

	// Loaded meshes aren't grids.
	assert.Zero(t, loaded.Columns)

}

func TestExportEmptyMesh(t *testing.T) {
	err := ExportGLB(&Mesh{}, filepath.Join(t.TempDir(), "empty.glb"))
	assert.ErrorIs(t, err, ErrNoMesh)
}

func TestLoadMissingMesh(t *testing.T) {
	_, err := LoadSegmentMesh(filepath.Join(t.TempDir(), "missing.gltf"))
	assert.Error(t, err)
}
