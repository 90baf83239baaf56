package vaporgrid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func BenchmarkMathInternalVector(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector, 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector{X: rand.Float64(), Y: rand.Float64(), Z: rand.Float64()})
	}

	b.ReportAllocs()
	b.StartTimer()

	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = vecs[i].Add(vecs[i+1]).Cross(vecs[i+1])
		}
	}

}

func TestVectorMath(t *testing.T) {

	a := NewVector(1, 2, 3)
	b := NewVector(-2, 0.5, 4)

	assert.Equal(t, NewVector(-1, 2.5, 7), a.Add(b))
	assert.Equal(t, NewVector(3, 1.5, -1), a.Sub(b))
	assert.Equal(t, NewVector(2, 4, 6), a.Scale(2))
	assert.Equal(t, NewVector(-1, -2, -3), a.Invert())
	assert.InDelta(t, 11, a.Dot(b), 1e-12)

	assert.Equal(t, VecZ, VecX.Cross(VecY))
	cross := a.Cross(b)
	assert.InDelta(t, 0, cross.Dot(a), 1e-9)
	assert.InDelta(t, 0, cross.Dot(b), 1e-9)

	assert.InDelta(t, 5, NewVector(3, 4, 0).Magnitude(), 1e-12)
	assert.InDelta(t, 5, NewVector(3, 4, 0).Distance(Vector{}), 1e-12)

}

func TestVectorUnit(t *testing.T) {
	assert.True(t, NewVector(0, 10, 0).Unit().Equals(VecY))
	assert.InDelta(t, 1, NewVector(1, -2, 3).Unit().Magnitude(), 1e-12)
	// Zero-length vectors stay zero instead of turning into NaNs.
	assert.Equal(t, Vector{}, Vector{}.Unit())
}
