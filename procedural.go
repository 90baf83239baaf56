package vaporgrid

import (
	"image"
	"image/color"
	"math"
)

// NewGridImage generates a neon grid texture: lines of the given color over a dark background, with a soft glow around each line.
// cellsX and cellsY give the number of grid cells across and down. Lines sit on cell edges, so the image tiles seamlessly.
func NewGridImage(width, height, cellsX, cellsY int, line, background Color) *image.RGBA {

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	cellW := float64(width) / float64(max(cellsX, 1))
	cellH := float64(height) / float64(max(cellsY, 1))

	for y := 0; y < height; y++ {
		dy := edgeDistance(float64(y)+0.5, cellH)
		for x := 0; x < width; x++ {
			dx := edgeDistance(float64(x)+0.5, cellW)
			d := math.Min(dx, dy)
			// Solid core one pixel either side of the edge, fading glow out to four pixels.
			glow := float32(clamp(1-(d-1)/3, 0, 1))
			glow *= glow
			img.SetRGBA(x, y, color.RGBA{
				R: channel(background.R + (line.R-background.R)*glow),
				G: channel(background.G + (line.G-background.G)*glow),
				B: channel(background.B + (line.B-background.B)*glow),
				A: 255,
			})
		}
	}

	return img

}

// edgeDistance returns the distance from pos to the nearest multiple of cell.
func edgeDistance(pos, cell float64) float64 {
	m := math.Mod(pos, cell)
	return math.Min(m, cell-m)
}

func channel(v float32) uint8 {
	return uint8(clamp(float64(v), 0, 1)*255 + 0.5)
}

// NewDisplacementImage generates a greyscale height map for the ground: a flat road down the middle (u around 0.5)
// and rolling hills towards both sides. Heights are periodic along v, so the top and bottom rows match and segments
// placed end to end join without a seam.
func NewDisplacementImage(width, height int) *image.Gray {

	img := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		v := float64(y) / float64(max(height-1, 1))
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(width-1, 1))

			// 0 on the road, rising to 1 at the outer edges.
			side := smoothstep(0.12, 0.45, math.Abs(u-0.5))

			hills := 0.5 +
				0.25*math.Sin(2*math.Pi*(2*v+3*u)) +
				0.15*math.Sin(2*math.Pi*(5*v-7*u)+1.3) +
				0.1*math.Cos(2*math.Pi*(9*v+11*u))

			img.SetGray(x, y, color.Gray{Y: uint8(clamp(side*hills, 0, 1) * 255)})
		}
	}

	return img

}

// NewMetalnessImage generates a metalness map that makes the road fully metallic and fades the hills to a dull finish.
func NewMetalnessImage(width, height int) *image.Gray {

	img := image.NewGray(image.Rect(0, 0, width, height))

	for x := 0; x < width; x++ {
		u := float64(x) / float64(max(width-1, 1))
		m := 1 - 0.7*smoothstep(0.12, 0.3, math.Abs(u-0.5))
		for y := 0; y < height; y++ {
			img.SetGray(x, y, color.Gray{Y: uint8(m * 255)})
		}
	}

	return img

}
