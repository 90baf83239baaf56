package vaporgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraResize(t *testing.T) {

	camera := NewCamera(1920, 1080)
	assert.InDelta(t, 16.0/9.0, camera.AspectRatio(), 1e-9)

	wide := camera.Projection()

	assert.True(t, camera.Resize(800, 600))
	assert.False(t, camera.Resize(800, 600))

	w, h := camera.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.InDelta(t, 1.3333, camera.AspectRatio(), 1e-4)

	proj := camera.Projection()
	assert.NotEqual(t, wide, proj)
	assert.True(t, proj.Equals(NewProjectionPerspective(75, 0.01, 20, 800.0/600.0)))

	// Degenerate sizes are clamped rather than dividing by zero.
	camera.Resize(0, 0)
	w, h = camera.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)

}

func TestCameraPixelRatio(t *testing.T) {

	camera := NewCamera(800, 600)

	w, h := camera.TextureSize()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	camera.SetPixelRatio(2)
	w, h = camera.TextureSize()
	assert.Equal(t, 1600, w)
	assert.Equal(t, 1200, h)

	// The aspect ratio follows the logical size only.
	assert.InDelta(t, 800.0/600.0, camera.AspectRatio(), 1e-9)

	camera.SetPixelRatio(-1)
	assert.Equal(t, 1.0, camera.PixelRatio())

}

func TestCameraLens(t *testing.T) {

	camera := NewCamera(800, 600)
	assert.Equal(t, 75.0, camera.FieldOfView())
	assert.Equal(t, 0.01, camera.Near())
	assert.Equal(t, 20.0, camera.Far())

	before := camera.Projection()
	camera.SetFieldOfView(50)
	camera.SetNear(0.1)
	camera.SetFar(100)
	assert.NotEqual(t, before, camera.Projection())
	assert.True(t, camera.Projection().Equals(NewProjectionPerspective(50, 0.1, 100, 800.0/600.0)))

}

func TestCameraLookAt(t *testing.T) {

	camera := NewCamera(800, 600)
	camera.SetLocalPosition(0, 0.06, 1.1)
	camera.LookAt(Vector{})

	view := camera.ViewMatrix()

	// The camera sits at the view-space origin, with the target straight ahead down -Z.
	assert.True(t, view.MultVec(camera.LocalPosition()).Equals(Vector{}))
	target := view.MultVec(Vector{})
	assert.InDelta(t, 0, target.X, 1e-9)
	assert.InDelta(t, 0, target.Y, 1e-9)
	assert.InDelta(t, -camera.LocalPosition().Magnitude(), target.Z, 1e-9)

}
