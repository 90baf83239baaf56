package vaporgrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestControls() (*Camera, *OrbitControls) {
	camera := NewCamera(800, 600)
	camera.SetLocalPosition(0, 0, 2)
	controls := NewOrbitControls(camera, Vector{})
	return camera, controls
}

func TestOrbitControlsRotate(t *testing.T) {

	camera, controls := newTestControls()

	controls.RotateLeft(0.5)
	controls.Update(1.0 / 60)

	pos := camera.LocalPosition()
	assert.InDelta(t, 2, pos.Magnitude(), 1e-9)
	assert.InDelta(t, -0.5, sphericalFromVector(pos).theta, 1e-9)

	// Without damping, queued rotation is used up in a single update.
	controls.Update(1.0 / 60)
	assert.InDelta(t, -0.5, sphericalFromVector(camera.LocalPosition()).theta, 1e-9)

	// The camera keeps facing the target.
	assert.True(t, camera.LocalRotation().Forward().Equals(pos.Unit()))

}

func TestOrbitControlsDamping(t *testing.T) {

	camera, controls := newTestControls()
	controls.EnableDamping = true
	controls.DampingFactor = 0.05

	controls.RotateLeft(1)
	controls.Update(1.0 / 60)
	assert.InDelta(t, -0.05, sphericalFromVector(camera.LocalPosition()).theta, 1e-9)

	prev := -0.05
	for i := 0; i < 1000; i++ {
		controls.Update(1.0 / 60)
		theta := sphericalFromVector(camera.LocalPosition()).theta
		assert.LessOrEqual(t, theta, prev+1e-12)
		prev = theta
	}

	// The motion eases out, converging on the full rotation.
	assert.InDelta(t, -1, prev, 1e-3)

}

func TestOrbitControlsPolarClamp(t *testing.T) {

	camera, controls := newTestControls()

	controls.RotateUp(10)
	controls.Update(1.0 / 60)

	pos := camera.LocalPosition()
	assert.False(t, math.IsNaN(pos.X) || math.IsNaN(pos.Y) || math.IsNaN(pos.Z))
	assert.InDelta(t, 2, pos.Y, 1e-3)

	controls.MaxPolarAngle = math.Pi / 2
	controls.RotateUp(-10)
	controls.Update(1.0 / 60)
	assert.InDelta(t, 0, camera.LocalPosition().Y, 1e-9)

}

func TestOrbitControlsDolly(t *testing.T) {

	camera, controls := newTestControls()

	controls.DollyIn()
	controls.Update(1.0 / 60)
	assert.InDelta(t, 1.9, camera.LocalPosition().Magnitude(), 1e-9)

	controls.DollyOut()
	controls.Update(1.0 / 60)
	assert.InDelta(t, 2, camera.LocalPosition().Magnitude(), 1e-9)

	controls.MinDistance = 1.95
	controls.DollyIn()
	controls.DollyIn()
	controls.Update(1.0 / 60)
	assert.InDelta(t, 1.95, camera.LocalPosition().Magnitude(), 1e-9)

}

func TestOrbitControlsReset(t *testing.T) {

	camera, controls := newTestControls()
	home := camera.LocalPosition()

	controls.RotateLeft(1)
	controls.RotateUp(0.3)
	controls.DollyOut()
	controls.Update(1.0 / 60)
	require.False(t, camera.LocalPosition().Equals(home))

	controls.Reset(0.5)
	assert.True(t, controls.Resetting())

	controls.Update(0.25)
	assert.True(t, controls.Resetting())
	assert.False(t, camera.LocalPosition().Equals(home))

	controls.Update(0.3)
	assert.False(t, controls.Resetting())

	pos := camera.LocalPosition()
	assert.InDelta(t, home.X, pos.X, 1e-4)
	assert.InDelta(t, home.Y, pos.Y, 1e-4)
	assert.InDelta(t, home.Z, pos.Z, 1e-4)

}

func TestOrbitControlsResetShortestPath(t *testing.T) {

	// Home sits just short of the -Z axis; rotating past it wraps the azimuth around to the other side.
	camera := NewCamera(800, 600)
	camera.SetLocalPosition(2*math.Sin(3), 0, 2*math.Cos(3))
	controls := NewOrbitControls(camera, Vector{})
	home := camera.LocalPosition()

	controls.RotateLeft(-0.5)
	controls.Update(1.0 / 60)
	start := sphericalFromVector(camera.LocalPosition()).theta
	require.Less(t, start, 0.0)

	// Going back the short way keeps turning in the same direction across the wrap.
	controls.Reset(1)
	controls.Update(0.01)
	assert.Less(t, sphericalFromVector(camera.LocalPosition()).theta, start)

	controls.Update(1)
	assert.False(t, controls.Resetting())
	pos := camera.LocalPosition()
	assert.InDelta(t, home.X, pos.X, 1e-4)
	assert.InDelta(t, home.Z, pos.Z, 1e-4)

}

func TestOrbitControlsDragFollowsPixelRatio(t *testing.T) {

	camera, controls := newTestControls()
	controls.Drag(60, 0)
	controls.Update(1.0 / 60)
	standard := sphericalFromVector(camera.LocalPosition()).theta
	assert.InDelta(t, -2*math.Pi*60/600, standard, 1e-9)

	// At a pixel ratio of 2 the cursor moves twice as many screen pixels for the same hand movement.
	hiDPICamera, hiDPIControls := newTestControls()
	hiDPICamera.SetPixelRatio(2)
	hiDPIControls.Drag(120, 0)
	hiDPIControls.Update(1.0 / 60)
	assert.InDelta(t, standard, sphericalFromVector(hiDPICamera.LocalPosition()).theta, 1e-9)

	controls.Drag(0, 30)
	controls.Update(1.0 / 60)
	assert.InDelta(t, math.Pi/2-2*math.Pi*30/600, sphericalFromVector(camera.LocalPosition()).phi, 1e-9)

}
