package vaporgrid

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animator owns a scrolling-ground Scene and everything needed to animate and draw it: the Camera, its OrbitControls,
// the ground Segments, and an optional post-processing Composer. Tick advances the animation, Resize keeps every
// size-dependent part in agreement, and Draw renders a frame.
type Animator struct {
	Scene    *Scene
	Camera   *Camera
	Controls *OrbitControls
	Loop     ScrollLoop
	Segments []*Segment
	// Composer is nil when the effect draws without post-processing.
	Composer *Composer

	elapsed      float64
	subscription *Subscription
}

// NewAnimator creates a new Animator. controls may be nil.
func NewAnimator(scene *Scene, camera *Camera, controls *OrbitControls, loop ScrollLoop) *Animator {
	return &Animator{
		Scene:    scene,
		Camera:   camera,
		Controls: controls,
		Loop:     loop,
	}
}

// AddSegment makes the Model scroll as the next ground segment, offset one segment length behind the previous one.
func (animator *Animator) AddSegment(model *Model) *Segment {
	segment := &Segment{Model: model, Offset: animator.Loop.Offset(len(animator.Segments))}
	animator.Segments = append(animator.Segments, segment)
	segment.Update(animator.Loop, animator.elapsed)
	return segment
}

// Elapsed returns the elapsed time given to the most recent Tick.
func (animator *Animator) Elapsed() float64 {
	return animator.elapsed
}

// Tick advances the animation to the given elapsed time, in seconds: the orbit controls step forward and each
// segment's depth is recomputed. Elapsed times earlier than the previous Tick are treated as no time passing.
func (animator *Animator) Tick(elapsed float64) {

	// NaN and infinite times count as no time passing, the same as a time earlier than the last.
	if !(elapsed >= animator.elapsed) || math.IsInf(elapsed, 1) {
		elapsed = animator.elapsed
	}

	dt := elapsed - animator.elapsed
	animator.elapsed = elapsed

	if animator.Controls != nil {
		animator.Controls.Update(dt)
	}

	for _, segment := range animator.Segments {
		segment.Update(animator.Loop, elapsed)
	}

}

// Resize updates the Camera's size and projection and the Composer's buffers together, so the next frame is drawn
// at the new size without stretching. Resizing to the current size changes nothing.
func (animator *Animator) Resize(width, height int, pixelRatio float64) {

	changed := animator.Camera.Resize(width, height)
	animator.Camera.SetPixelRatio(pixelRatio)

	if animator.Composer != nil {
		animator.Composer.SetSize(width, height)
		animator.Composer.SetPixelRatio(pixelRatio)
	}

	if changed {
		logger.Debug("viewport resized", "width", width, "height", height, "pixelRatio", pixelRatio, "aspect", animator.Camera.AspectRatio())
	}

}

// Attach subscribes the Animator to the Viewport's size changes, replacing any earlier subscription.
func (animator *Animator) Attach(viewport *Viewport) {
	animator.subscription.Release()
	animator.subscription = viewport.Subscribe(func(size ViewportSize) {
		animator.Resize(size.Width, size.Height, size.PixelRatio)
	})
}

// Close releases the Animator's Viewport subscription. The Animator can still be drawn, but won't follow resizes.
func (animator *Animator) Close() {
	animator.subscription.Release()
	animator.subscription = nil
}

// Draw renders the Scene to the screen, through the Composer if there is one.
func (animator *Animator) Draw(screen *ebiten.Image) {
	if animator.Composer != nil {
		animator.Composer.Render(screen)
		return
	}
	animator.Camera.RenderScene(animator.Scene)
	drawScaled(screen, animator.Camera.ColorTexture())
}
