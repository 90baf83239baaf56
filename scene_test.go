package vaporgrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeTransform(t *testing.T) {

	node := NewNode("node")
	assert.True(t, node.Transform().IsIdentity())

	node.SetLocalScale(2, 2, 2)
	node.SetLocalRotation(NewMatrix4Rotate(0, 1, 0, math.Pi/2))
	node.SetLocalPosition(0, 1, 0)

	// Scale, then rotate, then translate.
	assert.True(t, node.Transform().MultVec(VecX).Equals(NewVector(0, 1, -2)))

	// The cached transform follows later changes.
	node.SetLocalPositionVec(NewVector(5, 0, 0))
	assert.True(t, node.Transform().MultVec(Vector{}).Equals(NewVector(5, 0, 0)))

}

func TestScene(t *testing.T) {

	scene := NewScene("vaporwave")
	assert.Equal(t, "vaporwave", scene.World.Name)
	assert.False(t, scene.World.Fog.On)

	mesh := NewPlaneMesh(1, 2, 1, 1)
	material := NewMaterial("ground")
	a := NewModel("a", mesh, material)
	b := NewModel("b", mesh, material)
	scene.AddModels(a, b)

	assert.Same(t, b, scene.FindModel("b"))
	assert.Nil(t, scene.FindModel("c"))

	assert.True(t, a.Visible())
	a.SetVisible(false)
	assert.False(t, a.Visible())

}
