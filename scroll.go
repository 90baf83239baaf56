package vaporgrid

import "math"

const (
	// DefaultScrollSpeed is how far, in scene units per second, the ground travels towards the camera.
	DefaultScrollSpeed = 0.15
	// DefaultSegmentLength is the depth of one ground segment.
	DefaultSegmentLength = 2.0
)

// ScrollLoop computes where each ground segment sits along the Z axis at a given time. Segments travel towards the
// camera (+Z) and wrap back by exactly one SegmentLength, so a row of identical segments offset by SegmentLength
// from each other reads as an endless floor.
type ScrollLoop struct {
	Speed         float64 // Scene units per second
	SegmentLength float64
}

// NewScrollLoop returns a ScrollLoop with the given speed and segment length.
func NewScrollLoop(speed, segmentLength float64) ScrollLoop {
	return ScrollLoop{Speed: speed, SegmentLength: segmentLength}
}

// Position returns ((elapsed * Speed) mod SegmentLength) + offset, which always lies in [offset, offset + SegmentLength).
// Negative or NaN elapsed times are treated as 0, as is a non-positive SegmentLength (the result is then just offset).
func (loop ScrollLoop) Position(elapsed, offset float64) float64 {

	if loop.SegmentLength <= 0 || !(elapsed > 0) || math.IsInf(elapsed, 0) {
		return offset
	}

	travel := math.Mod(elapsed*loop.Speed, loop.SegmentLength)
	if travel < 0 {
		travel += loop.SegmentLength
	}
	// Guard against floating point landing exactly on the upper bound.
	if travel >= loop.SegmentLength {
		travel = 0
	}

	return travel + offset

}

// Offset returns the phase offset of the segment at the given index: 0 for the first, -SegmentLength for the second, and so on.
func (loop ScrollLoop) Offset(index int) float64 {
	if index == 0 {
		return 0
	}
	return -float64(index) * loop.SegmentLength
}

// Period returns how many seconds it takes for the motion to repeat (SegmentLength / Speed), or +Inf if the loop doesn't move.
func (loop ScrollLoop) Period() float64 {
	if loop.Speed == 0 {
		return math.Inf(1)
	}
	return math.Abs(loop.SegmentLength / loop.Speed)
}

// Segment is one tile of ground geometry driven by a ScrollLoop.
type Segment struct {
	Model  *Model
	Offset float64
}

// Update writes the segment's position for the given elapsed time into its Model, leaving X and Y untouched.
func (segment *Segment) Update(loop ScrollLoop, elapsed float64) {
	pos := segment.Model.LocalPosition()
	segment.Model.SetLocalPosition(pos.X, pos.Y, loop.Position(elapsed, segment.Offset))
}
