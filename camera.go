package vaporgrid

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Camera represents a perspective camera looking down -Z. It renders into its own color texture, sized to the Camera's
// logical size multiplied by its pixel ratio.
type Camera struct {
	*Node

	width, height int
	pixelRatio    float64

	fieldOfView float64
	near, far   float64

	updateProjectionMatrix bool
	cachedProjectionMatrix Matrix4

	resultColorTexture *ebiten.Image
	renderer           *triangleRenderer
}

// NewCamera creates a new Camera with the specified width and height. The field of view defaults to 75 degrees,
// the near plane to 0.01, and the far plane to 20.
func NewCamera(w, h int) *Camera {

	cam := &Camera{
		Node:                   NewNode("Camera"),
		pixelRatio:             1,
		fieldOfView:            75,
		near:                   0.01,
		far:                    20,
		updateProjectionMatrix: true,
		renderer:               newTriangleRenderer(),
	}

	cam.Resize(w, h)

	return cam

}

// Resize sets the logical width and height of the Camera. This updates the aspect ratio and projection, and the backing texture is
// re-created at the next render. If the size is unchanged, Resize does nothing and returns false.
func (camera *Camera) Resize(w, h int) bool {

	w = max(w, 1)
	h = max(h, 1)

	if w == camera.width && h == camera.height {
		return false
	}

	camera.width = w
	camera.height = h
	camera.updateProjectionMatrix = true

	return true

}

// SetPixelRatio sets how many texture pixels the Camera renders per logical pixel. Values <= 0 are treated as 1.
func (camera *Camera) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	camera.pixelRatio = ratio
}

// PixelRatio returns the Camera's pixel ratio.
func (camera *Camera) PixelRatio() float64 {
	return camera.pixelRatio
}

// Size returns the logical width and height of the Camera.
func (camera *Camera) Size() (w, h int) {
	return camera.width, camera.height
}

// TextureSize returns the size of the Camera's color texture in pixels (the logical size multiplied by the pixel ratio).
func (camera *Camera) TextureSize() (w, h int) {
	return scaledSize(camera.width, camera.height, camera.pixelRatio)
}

// AspectRatio returns the camera's aspect ratio (width / height).
func (camera *Camera) AspectRatio() float64 {
	return float64(camera.width) / float64(camera.height)
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float64 {
	return camera.fieldOfView
}

// SetFieldOfView sets the vertical field of view in degrees.
func (camera *Camera) SetFieldOfView(fovY float64) {
	if camera.fieldOfView == fovY {
		return
	}
	camera.fieldOfView = fovY
	camera.updateProjectionMatrix = true
}

// Near returns the near clipping plane.
func (camera *Camera) Near() float64 {
	return camera.near
}

// SetNear sets the near clipping plane.
func (camera *Camera) SetNear(near float64) {
	if camera.near == near {
		return
	}
	camera.near = near
	camera.updateProjectionMatrix = true
}

// Far returns the far clipping plane.
func (camera *Camera) Far() float64 {
	return camera.far
}

// SetFar sets the far clipping plane.
func (camera *Camera) SetFar(far float64) {
	if camera.far == far {
		return
	}
	camera.far = far
	camera.updateProjectionMatrix = true
}

// Projection returns the Camera's projection matrix. It is cached, and only rebuilt after the size or a lens property changes.
func (camera *Camera) Projection() Matrix4 {

	if !camera.updateProjectionMatrix {
		return camera.cachedProjectionMatrix
	}

	camera.updateProjectionMatrix = false
	camera.cachedProjectionMatrix = NewProjectionPerspective(camera.fieldOfView, camera.near, camera.far, camera.AspectRatio())

	return camera.cachedProjectionMatrix

}

// ViewMatrix returns the Camera's view matrix (the inverse of its transform).
func (camera *Camera) ViewMatrix() Matrix4 {
	return camera.Transform().Inverted()
}

// LookAt rotates the Camera to face the target position.
func (camera *Camera) LookAt(target Vector) {
	camera.SetLocalRotation(NewLookAtMatrix(camera.LocalPosition(), target, VecY))
}

// ColorTexture returns the Camera's color texture, (re)creating it if the Camera's texture size has changed since it was last made.
func (camera *Camera) ColorTexture() *ebiten.Image {

	w, h := camera.TextureSize()

	if camera.resultColorTexture != nil {
		size := camera.resultColorTexture.Bounds().Size()
		if size.X == w && size.Y == h {
			return camera.resultColorTexture
		}
		camera.resultColorTexture.Deallocate()
	}

	camera.resultColorTexture = ebiten.NewImageWithOptions(image.Rect(0, 0, w, h), &ebiten.NewImageOptions{Unmanaged: true})

	return camera.resultColorTexture

}

// Clear clears the Camera's color texture with the given color.
func (camera *Camera) Clear(clear Color) {
	camera.ColorTexture().Fill(clear.ToRGBA64())
}

// RenderScene clears the Camera's color texture with the Scene's clear color, then renders all visible Models in the Scene into it.
func (camera *Camera) RenderScene(scene *Scene) {
	camera.Clear(scene.World.ClearColor)
	camera.renderer.render(camera.ColorTexture(), camera, scene)
}

// RenderedTriangles returns the number of triangles drawn by the most recent RenderScene call.
func (camera *Camera) RenderedTriangles() int {
	return camera.renderer.renderedTriangles
}

func scaledSize(w, h int, ratio float64) (int, int) {
	return max(int(math.Floor(float64(w)*ratio)), 1), max(int(math.Floor(float64(h)*ratio)), 1)
}
