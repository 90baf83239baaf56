package vaporgrid

// Node holds a local transform (position, rotation, scale) for anything placed in a Scene.
// Model and Camera embed Node. vaporgrid scenes are flat, so a Node's local transform is its world transform.
type Node struct {
	name             string
	position         Vector
	scale            Vector
	rotation         Matrix4
	visible          bool
	cachedTransform  Matrix4
	isTransformDirty bool
}

// NewNode returns a new Node.
func NewNode(name string) *Node {
	return &Node{
		name:             name,
		scale:            NewVector(1, 1, 1),
		rotation:         NewMatrix4(),
		visible:          true,
		isTransformDirty: true,
		cachedTransform:  NewMatrix4(),
	}
}

// Name returns the object's name.
func (node *Node) Name() string {
	return node.name
}

// Transform returns the Node's transform Matrix4 (scale, then rotation, then translation).
func (node *Node) Transform() Matrix4 {

	if !node.isTransformDirty {
		return node.cachedTransform
	}

	transform := NewMatrix4Scale(node.scale.X, node.scale.Y, node.scale.Z)
	transform = transform.Mult(node.rotation)
	transform = transform.Mult(NewMatrix4Translate(node.position.X, node.position.Y, node.position.Z))

	node.cachedTransform = transform
	node.isTransformDirty = false

	return transform

}

// LocalPosition returns the Node's position.
func (node *Node) LocalPosition() Vector {
	return node.position
}

// SetLocalPosition sets the Node's position.
func (node *Node) SetLocalPosition(x, y, z float64) {
	node.position.X = x
	node.position.Y = y
	node.position.Z = z
	node.isTransformDirty = true
}

// SetLocalPositionVec sets the Node's position using a Vector.
func (node *Node) SetLocalPositionVec(position Vector) {
	node.SetLocalPosition(position.X, position.Y, position.Z)
}

// LocalRotation returns the Node's rotation Matrix4.
func (node *Node) LocalRotation() Matrix4 {
	return node.rotation
}

// SetLocalRotation sets the Node's rotation Matrix4.
func (node *Node) SetLocalRotation(rotation Matrix4) {
	node.rotation = rotation
	node.isTransformDirty = true
}

func (node *Node) SetLocalScale(x, y, z float64) {
	node.scale = NewVector(x, y, z)
	node.isTransformDirty = true
}

// Visible returns whether the Node is drawn.
func (node *Node) Visible() bool {
	return node.visible
}

func (node *Node) SetVisible(visible bool) {
	node.visible = visible
}
