package vaporgrid

import (
	"image"

	"golang.org/x/image/draw"
)

// HeightMap is a greyscale copy of an image for per-vertex lookups. It backs both displacement maps and metalness maps.
type HeightMap struct {
	gray *image.Gray
}

// NewHeightMap converts the source image to greyscale at its own resolution. U and V of 0 and 1 land exactly on the
// first and last pixels, so an image whose top and bottom rows match displaces tiles that join without a step.
func NewHeightMap(src image.Image) *HeightMap {
	bounds := src.Bounds()
	if bounds.Empty() {
		return &HeightMap{gray: image.NewGray(image.Rect(0, 0, 1, 1))}
	}
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), src, bounds.Min, draw.Src)
	return &HeightMap{gray: gray}
}

// Size returns the size of the HeightMap in pixels.
func (hm *HeightMap) Size() (w, h int) {
	size := hm.gray.Bounds().Size()
	return size.X, size.Y
}

// At returns the bilinearly interpolated value at the texture coordinate (u, v), ranging from 0 (black) to 1 (white).
// Coordinates outside of 0-1 are clamped to the edges.
func (hm *HeightMap) At(u, v float64) float64 {

	w, h := hm.Size()

	x := clamp(u, 0, 1) * float64(w-1)
	y := clamp(v, 0, 1) * float64(h-1)

	x0, y0 := int(x), int(y)
	x1, y1 := min(x0+1, w-1), min(y0+1, h-1)
	fx, fy := x-float64(x0), y-float64(y0)

	top := hm.value(x0, y0)*(1-fx) + hm.value(x1, y0)*fx
	bottom := hm.value(x0, y1)*(1-fx) + hm.value(x1, y1)*fx

	return top*(1-fy) + bottom*fy

}

func (hm *HeightMap) value(x, y int) float64 {
	return float64(hm.gray.GrayAt(x, y).Y) / 255
}

// Displace moves every vertex of the Mesh along its normal by scale * the HeightMap value at the vertex's UV,
// then recalculates the Mesh's normals so lighting follows the new surface.
func (mesh *Mesh) Displace(hm *HeightMap, scale float64) {
	for i := range mesh.Vertices {
		v := &mesh.Vertices[i]
		v.Position = v.Position.Add(v.Normal.Scale(scale * hm.At(v.U, v.V)))
	}
	mesh.RecalculateNormals()
}

// ApplyMetalnessMap stores the HeightMap value at each vertex's UV as that vertex's metalness.
func (mesh *Mesh) ApplyMetalnessMap(hm *HeightMap) {
	for i := range mesh.Vertices {
		v := &mesh.Vertices[i]
		v.Metalness = float32(hm.At(v.U, v.V))
	}
}
