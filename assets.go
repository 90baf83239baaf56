package vaporgrid

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Assets holds the images and optional mesh used to build the ground.
type Assets struct {
	Grid         image.Image
	Displacement image.Image
	Metalness    image.Image
	// Mesh replaces the generated ground plane when set.
	Mesh *Mesh
}

// Procedural texture sizes; the grid is twice as tall as it is wide to match a 1x2 ground segment.
const (
	gridImageWidth          = 256
	gridImageHeight         = 512
	displacementImageWidth  = 128
	displacementImageHeight = 256
)

// ProceduralAssets returns generated stand-ins for every texture.
func ProceduralAssets() Assets {
	return Assets{
		Grid: NewGridImage(gridImageWidth, gridImageHeight, 8, 16,
			NewColor(1, 0.16, 0.75, 1),
			NewColor(0.03, 0, 0.06, 1),
		),
		Displacement: NewDisplacementImage(displacementImageWidth, displacementImageHeight),
		Metalness:    NewMetalnessImage(displacementImageWidth/2, displacementImageHeight/2),
	}
}

// LoadAssets loads the textures and mesh named in the TextureConfig. Anything that isn't configured, or fails to load,
// is replaced by its procedural stand-in (or the generated plane, for the mesh); failures are logged as warnings.
func LoadAssets(textures TextureConfig) Assets {

	assets := ProceduralAssets()

	load := func(kind, path string, dst *image.Image) {
		if path == "" {
			return
		}
		img, err := LoadImage(path)
		if err != nil {
			logger.Warn("using procedural texture", "texture", kind, "err", err)
			return
		}
		*dst = img
	}

	load("grid", textures.Grid, &assets.Grid)
	load("displacement", textures.Displacement, &assets.Displacement)
	load("metalness", textures.Metalness, &assets.Metalness)

	if textures.Mesh != "" {
		mesh, err := LoadSegmentMesh(textures.Mesh)
		if err != nil {
			logger.Warn("using generated ground plane", "err", err)
		} else {
			assets.Mesh = mesh
		}
	}

	return assets

}

// LoadImage decodes a PNG or JPEG image from disk.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadSegmentMesh loads every triangle primitive in a .gltf or .glb file into a single Mesh.
// Positions are required; UVs default to 0 and normals are recalculated if the file doesn't have them.
func LoadSegmentMesh(path string) (*Mesh, error) {

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh %s: %w", path, err)
	}

	mesh := &Mesh{Name: path}
	hasNormals := true

	for _, gltfMesh := range doc.Meshes {

		for _, prim := range gltfMesh.Primitives {

			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posIndex, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIndex], nil)
			if err != nil {
				return nil, fmt.Errorf("read positions of %s: %w", gltfMesh.Name, err)
			}

			var uvs [][2]float32
			if uvIndex, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
				if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIndex], nil); err != nil {
					return nil, fmt.Errorf("read UVs of %s: %w", gltfMesh.Name, err)
				}
			}

			var normals [][3]float32
			if normalIndex, ok := prim.Attributes[gltf.NORMAL]; ok {
				if normals, err = modeler.ReadNormal(doc, doc.Accessors[normalIndex], nil); err != nil {
					return nil, fmt.Errorf("read normals of %s: %w", gltfMesh.Name, err)
				}
			} else {
				hasNormals = false
			}

			base := len(mesh.Vertices)

			for i, p := range positions {
				v := NewVertex(float64(p[0]), float64(p[1]), float64(p[2]), 0, 0)
				if i < len(uvs) {
					v.U, v.V = float64(uvs[i][0]), float64(uvs[i][1])
				}
				if i < len(normals) {
					v.Normal = NewVector(float64(normals[i][0]), float64(normals[i][1]), float64(normals[i][2])).Unit()
				}
				mesh.Vertices = append(mesh.Vertices, v)
			}

			if prim.Indices != nil {
				indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("read indices of %s: %w", gltfMesh.Name, err)
				}
				for _, index := range indices {
					mesh.Indices = append(mesh.Indices, base+int(index))
				}
			} else {
				for i := range positions {
					mesh.Indices = append(mesh.Indices, base+i)
				}
			}

		}

	}

	if mesh.TriangleCount() == 0 {
		return nil, fmt.Errorf("load mesh %s: %w", path, ErrNoMesh)
	}

	if !hasNormals {
		mesh.RecalculateNormals()
	}

	return mesh, nil

}

// ExportGLB writes the Mesh to a binary glTF file, including positions, normals, and UVs.
func ExportGLB(mesh *Mesh, path string) error {

	if mesh.TriangleCount() == 0 {
		return fmt.Errorf("export %s: %w", path, ErrNoMesh)
	}

	positions := make([][3]float32, len(mesh.Vertices))
	normals := make([][3]float32, len(mesh.Vertices))
	uvs := make([][2]float32, len(mesh.Vertices))

	for i, v := range mesh.Vertices {
		positions[i] = [3]float32{float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z)}
		normals[i] = [3]float32{float32(v.Normal.X), float32(v.Normal.Y), float32(v.Normal.Z)}
		uvs[i] = [2]float32{float32(v.U), float32(v.V)}
	}

	indices := make([]uint32, len(mesh.Indices))
	for i, index := range mesh.Indices {
		indices[i] = uint32(index)
	}

	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{
		Name: mesh.Name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: map[string]int{
				gltf.POSITION:   modeler.WritePosition(doc, positions),
				gltf.NORMAL:     modeler.WriteNormal(doc, normals),
				gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: mesh.Name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}

	return nil

}
