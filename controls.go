package vaporgrid

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const polarEpsilon = 0.000001

// spherical holds spherical coordinates around a target: radius, azimuth (theta, around +Y starting at +Z), and polar angle (phi, from +Y).
type spherical struct {
	radius, theta, phi float64
}

func sphericalFromVector(v Vector) spherical {
	s := spherical{radius: v.Magnitude()}
	if s.radius == 0 {
		return s
	}
	s.theta = math.Atan2(v.X, v.Z)
	s.phi = math.Acos(clamp(v.Y/s.radius, -1, 1))
	return s
}

func (s spherical) vector() Vector {
	sinPhi := math.Sin(s.phi)
	return NewVector(
		s.radius*sinPhi*math.Sin(s.theta),
		s.radius*math.Cos(s.phi),
		s.radius*sinPhi*math.Cos(s.theta),
	)
}

// OrbitControls orbits a Camera around a target point. Dragging with the left mouse button rotates around the target and the mouse
// wheel dollies towards or away from it. With damping on, motion eases out over several frames after input stops.
type OrbitControls struct {
	Camera *Camera
	Target Vector

	Enabled       bool
	EnableDamping bool
	DampingFactor float64
	RotateSpeed   float64
	ZoomSpeed     float64

	MinDistance, MaxDistance     float64
	MinPolarAngle, MaxPolarAngle float64

	delta spherical
	scale float64

	homePosition Vector
	homeTarget   Vector

	resetting   bool
	resetTweens [3]*gween.Tween // radius, theta, phi

	dragging     bool
	prevX, prevY int
}

// NewOrbitControls creates OrbitControls for the Camera, orbiting the target. The Camera's current position is saved as its home position.
func NewOrbitControls(camera *Camera, target Vector) *OrbitControls {
	controls := &OrbitControls{
		Camera:        camera,
		Target:        target,
		Enabled:       true,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		MinDistance:   0,
		MaxDistance:   math.Inf(1),
		MinPolarAngle: 0,
		MaxPolarAngle: math.Pi,
		scale:         1,
	}
	controls.SaveState()
	camera.LookAt(target)
	return controls
}

// SaveState records the Camera's current position and the current target as the pose Reset returns to.
func (controls *OrbitControls) SaveState() {
	controls.homePosition = controls.Camera.LocalPosition()
	controls.homeTarget = controls.Target
}

// RotateLeft queues a rotation around the target's vertical axis, in radians.
func (controls *OrbitControls) RotateLeft(angle float64) {
	controls.delta.theta -= angle
}

// RotateUp queues a change to the polar angle, in radians.
func (controls *OrbitControls) RotateUp(angle float64) {
	controls.delta.phi -= angle
}

func (controls *OrbitControls) zoomScale() float64 {
	return math.Pow(0.95, controls.ZoomSpeed)
}

// DollyIn moves the Camera one step closer to the target.
func (controls *OrbitControls) DollyIn() {
	controls.scale *= controls.zoomScale()
}

// DollyOut moves the Camera one step away from the target.
func (controls *OrbitControls) DollyOut() {
	controls.scale /= controls.zoomScale()
}

// Resetting returns true while the Camera is easing back to its home pose.
func (controls *OrbitControls) Resetting() bool {
	return controls.resetting
}

// Reset eases the Camera back to the saved home pose over the given number of seconds. Pending input is discarded.
func (controls *OrbitControls) Reset(duration float64) {

	controls.Target = controls.homeTarget
	current := sphericalFromVector(controls.Camera.LocalPosition().Sub(controls.Target))
	home := sphericalFromVector(controls.homePosition.Sub(controls.homeTarget))

	// Take the short way around.
	home.theta = current.theta + math.Remainder(home.theta-current.theta, 2*math.Pi)

	d := float32(math.Max(duration, 0.001))
	controls.resetTweens = [3]*gween.Tween{
		gween.New(float32(current.radius), float32(home.radius), d, ease.OutCubic),
		gween.New(float32(current.theta), float32(home.theta), d, ease.OutCubic),
		gween.New(float32(current.phi), float32(home.phi), d, ease.OutCubic),
	}
	controls.resetting = true
	controls.delta = spherical{}
	controls.scale = 1

}

// Drag queues the rotation for a mouse drag of (dx, dy) screen pixels. Screen pixels are the Camera's texture pixels,
// so a drag across the full height of the view turns the same amount at any pixel ratio.
func (controls *OrbitControls) Drag(dx, dy int) {
	_, h := controls.Camera.TextureSize()
	controls.RotateLeft(2 * math.Pi * float64(dx) / float64(h) * controls.RotateSpeed)
	controls.RotateUp(2 * math.Pi * float64(dy) / float64(h) * controls.RotateSpeed)
}

// HandleInput reads the mouse from ebiten and queues rotation and dolly steps.
func (controls *OrbitControls) HandleInput() {

	if !controls.Enabled || controls.resetting {
		controls.dragging = false
		return
	}

	x, y := ebiten.CursorPosition()

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if controls.dragging {
			controls.Drag(x-controls.prevX, y-controls.prevY)
		}
		controls.dragging = true
	} else {
		controls.dragging = false
	}

	controls.prevX, controls.prevY = x, y

	if _, wheel := ebiten.Wheel(); wheel > 0 {
		controls.DollyIn()
	} else if wheel < 0 {
		controls.DollyOut()
	}

}

// Update applies queued input (or the reset animation) to the Camera. dt is the time since the last update, in seconds.
func (controls *OrbitControls) Update(dt float64) {

	offset := controls.Camera.LocalPosition().Sub(controls.Target)
	s := sphericalFromVector(offset)

	if controls.resetting {

		finished := true
		values := [3]float64{}
		for i, tween := range controls.resetTweens {
			v, done := tween.Update(float32(dt))
			values[i] = float64(v)
			finished = finished && done
		}
		s = spherical{radius: values[0], theta: values[1], phi: values[2]}
		controls.resetting = !finished

	} else {

		if controls.EnableDamping {
			s.theta += controls.delta.theta * controls.DampingFactor
			s.phi += controls.delta.phi * controls.DampingFactor
		} else {
			s.theta += controls.delta.theta
			s.phi += controls.delta.phi
		}

		s.phi = clamp(s.phi, math.Max(controls.MinPolarAngle, polarEpsilon), math.Min(controls.MaxPolarAngle, math.Pi-polarEpsilon))
		s.radius = clamp(s.radius*controls.scale, controls.MinDistance, controls.MaxDistance)

		if controls.EnableDamping {
			controls.delta.theta *= 1 - controls.DampingFactor
			controls.delta.phi *= 1 - controls.DampingFactor
		} else {
			controls.delta = spherical{}
		}

		controls.scale = 1

	}

	controls.Camera.SetLocalPositionVec(controls.Target.Add(s.vector()))
	controls.Camera.LookAt(controls.Target)

}
