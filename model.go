package vaporgrid

// Model represents a Mesh placed in a Scene with a Material.
type Model struct {
	*Node
	Mesh     *Mesh
	Material *Material
}

// NewModel creates a new Model with the given Mesh and Material. Several Models may share the same Mesh and Material;
// this is how the scrolling segments tile seamlessly.
func NewModel(name string, mesh *Mesh, material *Material) *Model {
	return &Model{
		Node:     NewNode(name),
		Mesh:     mesh,
		Material: material,
	}
}
