package vaporgrid

import (
	"cmp"
	_ "embed"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/base3d.kage
var base3DShaderText []byte

// maxBatchVertices keeps a single DrawTrianglesShader call within 16-bit indices.
const maxBatchVertices = 65535 - 3

type projectedVertex struct {
	vertex ebiten.Vertex
	depth  float64 // view-space distance along the camera's -Z axis
	w      float64 // clip-space W
}

type sortingTriangle struct {
	vertices [3]ebiten.Vertex
	depth    float64
	material *Material
}

// triangleBatch is a run of sorted triangles, [start, end), drawn with a single DrawTrianglesShader call.
type triangleBatch struct {
	start, end int
	material   *Material
}

// triangleRenderer draws Models by transforming their vertices on the CPU, sorting triangles back-to-front,
// and drawing them with the base 3D shader.
type triangleRenderer struct {
	shader            *ebiten.Shader
	projected         []projectedVertex
	triangles         []sortingTriangle
	batches           []triangleBatch
	vertices          []ebiten.Vertex
	indices           []uint16
	renderedTriangles int
}

func newTriangleRenderer() *triangleRenderer {
	return &triangleRenderer{}
}

func (r *triangleRenderer) ensureShader() *ebiten.Shader {
	if r.shader == nil {
		shader, err := ebiten.NewShader(base3DShaderText)
		if err != nil {
			panic(err)
		}
		r.shader = shader
	}
	return r.shader
}

func (r *triangleRenderer) render(dst *ebiten.Image, camera *Camera, scene *Scene) {
	size := dst.Bounds().Size()
	r.project(camera, scene, float64(size.X), float64(size.Y))
	r.drawTriangles(dst, scene.World.Fog.Color)
}

// project transforms, lights and fogs every visible Model's vertices for a screenW x screenH target, drops triangles
// that reach behind the near plane, and sorts the rest back-to-front into r.triangles. It touches no GPU resources.
func (r *triangleRenderer) project(camera *Camera, scene *Scene, screenW, screenH float64) {

	view := camera.ViewMatrix()
	projection := camera.Projection()
	cameraPos := camera.LocalPosition()
	fog := scene.World.Fog
	near := camera.Near()

	r.triangles = r.triangles[:0]

	for _, model := range scene.Models {

		if !model.Visible() || model.Mesh == nil || model.Material == nil {
			continue
		}

		transform := model.Transform()
		material := model.Material
		tw, th := material.TextureSize()
		texW, texH := float64(tw), float64(th)

		r.projected = r.projected[:0]

		for _, v := range model.Mesh.Vertices {

			world := transform.MultVec(v.Position)
			viewPos := view.MultVec(world)
			clip, w := projection.MultVecW(viewPos)

			light := material.Shade(Surface{
				Position:  world,
				Normal:    transform.MultDir(v.Normal).Unit(),
				ToCamera:  cameraPos.Sub(world).Unit(),
				Metalness: v.Metalness,
			}, scene.Lights)

			depth := -viewPos.Z

			pv := projectedVertex{depth: depth, w: w}
			if w > 0 {
				pv.vertex.DstX = float32((clip.X/w + 1) / 2 * screenW)
				pv.vertex.DstY = float32((1 - clip.Y/w) / 2 * screenH)
			}
			pv.vertex.SrcX = float32(v.U * texW)
			pv.vertex.SrcY = float32(v.V * texH)
			pv.vertex.ColorR = light.R
			pv.vertex.ColorG = light.G
			pv.vertex.ColorB = light.B
			pv.vertex.ColorA = float32(1 - fog.Factor(depth))

			r.projected = append(r.projected, pv)

		}

		indices := model.Mesh.Indices

		for i := 0; i+2 < len(indices); i += 3 {

			a, b, c := r.projected[indices[i]], r.projected[indices[i+1]], r.projected[indices[i+2]]

			// Triangles crossing the near plane are dropped rather than clipped.
			if a.w < near || b.w < near || c.w < near {
				continue
			}

			r.triangles = append(r.triangles, sortingTriangle{
				vertices: [3]ebiten.Vertex{a.vertex, b.vertex, c.vertex},
				depth:    (a.depth + b.depth + c.depth) / 3,
				material: material,
			})

		}

	}

	// Farthest triangles draw first.
	slices.SortStableFunc(r.triangles, func(a, b sortingTriangle) int {
		return cmp.Compare(b.depth, a.depth)
	})

	r.renderedTriangles = len(r.triangles)

}

// batch splits the sorted triangles into runs that share a Material and fit within 16-bit indices.
func (r *triangleRenderer) batch() []triangleBatch {

	r.batches = r.batches[:0]

	for i, tri := range r.triangles {
		if n := len(r.batches); n > 0 {
			last := &r.batches[n-1]
			if last.material == tri.material && (last.end-last.start+1)*3 <= maxBatchVertices {
				last.end = i + 1
				continue
			}
		}
		r.batches = append(r.batches, triangleBatch{start: i, end: i + 1, material: tri.material})
	}

	return r.batches

}

// drawTriangles draws the projected triangles in as few draw calls as the batches allow.
func (r *triangleRenderer) drawTriangles(dst *ebiten.Image, fogColor Color) {

	batches := r.batch()
	if len(batches) == 0 {
		return
	}

	shader := r.ensureShader()

	options := &ebiten.DrawTrianglesShaderOptions{
		Uniforms: map[string]any{
			"FogColor": []float32{fogColor.R, fogColor.G, fogColor.B},
		},
	}

	for _, b := range batches {
		r.vertices = r.vertices[:0]
		r.indices = r.indices[:0]
		for _, tri := range r.triangles[b.start:b.end] {
			base := uint16(len(r.vertices))
			r.vertices = append(r.vertices, tri.vertices[:]...)
			r.indices = append(r.indices, base, base+1, base+2)
		}
		options.Images[0] = b.material.Texture()
		dst.DrawTrianglesShader(r.vertices, r.indices, shader, options)
	}

}
