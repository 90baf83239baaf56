package vaporgrid

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Shading indicates how a Material reacts to the Lights in a Scene.
type Shading int

const (
	// ShadingBasic ignores lighting entirely; the texture is drawn as-is (aside from fog).
	ShadingBasic Shading = iota
	// ShadingStandard lights the surface with the Scene's ambient and spot lights, taking metalness and roughness into account.
	ShadingStandard
)

// Material describes how the triangles of a Model are drawn.
type Material struct {
	Name    string
	Color   Color // Color multiplies the texture and lighting result.
	Shading Shading
	// Metalness ranges from 0 (dielectric) to 1 (metal). Metallic surfaces trade diffuse light for specular highlights.
	// The value is multiplied by each vertex's metalness, which comes from a metalness map if one was applied.
	Metalness float32
	// Roughness ranges from 0 (mirror-like, tight highlights) to 1 (broad highlights).
	Roughness float32

	image   image.Image
	texture *ebiten.Image
}

// NewMaterial creates a new basic, white Material.
func NewMaterial(name string) *Material {
	return &Material{
		Name:      name,
		Color:     NewColor(1, 1, 1, 1),
		Shading:   ShadingBasic,
		Roughness: 1,
	}
}

// SetImage sets the image used as the Material's texture. The GPU texture is created the next time the Material is rendered.
func (material *Material) SetImage(img image.Image) {
	if material.texture != nil {
		material.texture.Deallocate()
		material.texture = nil
	}
	material.image = img
}

// Image returns the image used as the Material's texture, or nil if it has none.
func (material *Material) Image() image.Image {
	return material.image
}

// Texture returns the Material's texture, creating it from the Material's image if necessary.
// A Material without an image renders with a plain white texture.
func (material *Material) Texture() *ebiten.Image {
	if material.texture == nil {
		if material.image != nil {
			material.texture = ebiten.NewImageFromImage(material.image)
		} else {
			material.texture = ebiten.NewImage(1, 1)
			material.texture.Fill(NewColor(1, 1, 1, 1).ToRGBA64())
		}
	}
	return material.texture
}

// TextureSize returns the size of the Material's texture in pixels without creating it.
func (material *Material) TextureSize() (w, h int) {
	if material.image == nil {
		return 1, 1
	}
	size := material.image.Bounds().Size()
	return max(size.X, 1), max(size.Y, 1)
}

// Shade returns the light multiplier for a point on a surface using this Material.
func (material *Material) Shade(surface Surface, lights []Light) Color {

	if material.Shading == ShadingBasic {
		return material.Color
	}

	surface.Metalness *= material.Metalness
	surface.Roughness = material.Roughness

	var r, g, b float32
	for _, light := range lights {
		if !light.IsOn() {
			continue
		}
		lr, lg, lb := light.Illuminate(surface)
		r += lr
		g += lg
		b += lb
	}

	return NewColor(r*material.Color.R, g*material.Color.G, b*material.Color.B, material.Color.A)

}
