package vaporgrid

import (
	"math"
	"strconv"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation. Matrix4 is row-major and uses the
// row-vector convention: a Vector is transformed as v * M, so translation lives in row 3 and
// A.Mult(B) applies A first, then B.
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4Translate returns a new identity Matrix4, but translated by the x, y, and z values provided.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the x, y, and z scale values provided.
func NewMatrix4Scale(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 rotating by angle radians around the axis given by x, y, and z.
// An empty axis defaults to +Y.
func NewMatrix4Rotate(x, y, z, angle float64) Matrix4 {

	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	mat := NewMatrix4()
	axis := NewVector(x, y, z).Unit()
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c

	mat[0][0] = m*axis.X*axis.X + c
	mat[0][1] = m*axis.X*axis.Y + axis.Z*s
	mat[0][2] = m*axis.Z*axis.X - axis.Y*s

	mat[1][0] = m*axis.X*axis.Y - axis.Z*s
	mat[1][1] = m*axis.Y*axis.Y + c
	mat[1][2] = m*axis.Y*axis.Z + axis.X*s

	mat[2][0] = m*axis.Z*axis.X + axis.Y*s
	mat[2][1] = m*axis.Y*axis.Z - axis.X*s
	mat[2][2] = m*axis.Z*axis.Z + c

	return mat

}

// NewLookAtMatrix returns a rotation Matrix4 whose +Z axis points from `to` towards `from`.
// Since cameras look down -Z, NewLookAtMatrix(cameraPosition, target, VecY) aims a camera at the target.
func NewLookAtMatrix(from, to, up Vector) Matrix4 {

	if from.Equals(to) {
		return NewMatrix4()
	}

	z := from.Sub(to).Unit()

	up = up.Unit()

	// A view direction parallel to up leaves the basis undefined, so swap up out.
	if z.Equals(up) || z.Equals(up.Invert()) {
		if !up.Equals(VecX) {
			up = VecX
		} else {
			up = VecZ
		}
	}

	x := up.Cross(z).Unit()
	y := z.Cross(x)
	return Matrix4{
		{x.X, x.Y, x.Z, 0},
		{y.X, y.Y, y.Z, 0},
		{z.X, z.Y, z.Z, 0},
		{0, 0, 0, 1},
	}

}

// NewProjectionPerspective generates a perspective frustum Matrix4 for the row-vector convention.
// fovy is the vertical field of view in degrees; aspect is width / height.
func NewProjectionPerspective(fovy, near, far, aspect float64) Matrix4 {

	f := 1 / math.Tan(fovy*math.Pi/360)

	return Matrix4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, -(far + near) / (far - near), -1},
		{0, 0, -(2 * far * near) / (far - near), 0},
	}

}

// Right returns the right-facing rotational component of the Matrix4.
func (matrix Matrix4) Right() Vector {
	return NewVector(matrix[0][0], matrix[0][1], matrix[0][2]).Unit()
}

// Up returns the upward rotational component of the Matrix4.
func (matrix Matrix4) Up() Vector {
	return NewVector(matrix[1][0], matrix[1][1], matrix[1][2]).Unit()
}

// Forward returns the forward rotational component of the Matrix4. For an identity matrix, this is +Z (towards the viewer).
func (matrix Matrix4) Forward() Vector {
	return NewVector(matrix[2][0], matrix[2][1], matrix[2][2]).Unit()
}

// Transposed transposes a Matrix4, switching the Matrix from being Row Major to being Column Major. For orthonormalized Matrices (matrices
// that have rows that are normalized (having a length of 1), like rotation matrices), this is equivalent to inverting it.
func (matrix Matrix4) Transposed() Matrix4 {
	var m Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = matrix[j][i]
		}
	}
	return m
}

// Inverted returns an inverted version of the Matrix4. A singular Matrix4 returns the identity matrix.
func (matrix Matrix4) Inverted() Matrix4 {

	a2323 := matrix[2][2]*matrix[3][3] - matrix[2][3]*matrix[3][2]
	a1323 := matrix[2][1]*matrix[3][3] - matrix[2][3]*matrix[3][1]
	a1223 := matrix[2][1]*matrix[3][2] - matrix[2][2]*matrix[3][1]
	a0323 := matrix[2][0]*matrix[3][3] - matrix[2][3]*matrix[3][0]
	a0223 := matrix[2][0]*matrix[3][2] - matrix[2][2]*matrix[3][0]
	a0123 := matrix[2][0]*matrix[3][1] - matrix[2][1]*matrix[3][0]
	a2313 := matrix[1][2]*matrix[3][3] - matrix[1][3]*matrix[3][2]
	a1313 := matrix[1][1]*matrix[3][3] - matrix[1][3]*matrix[3][1]
	a1213 := matrix[1][1]*matrix[3][2] - matrix[1][2]*matrix[3][1]
	a2312 := matrix[1][2]*matrix[2][3] - matrix[1][3]*matrix[2][2]
	a1312 := matrix[1][1]*matrix[2][3] - matrix[1][3]*matrix[2][1]
	a1212 := matrix[1][1]*matrix[2][2] - matrix[1][2]*matrix[2][1]
	a0313 := matrix[1][0]*matrix[3][3] - matrix[1][3]*matrix[3][0]
	a0213 := matrix[1][0]*matrix[3][2] - matrix[1][2]*matrix[3][0]
	a0312 := matrix[1][0]*matrix[2][3] - matrix[1][3]*matrix[2][0]
	a0212 := matrix[1][0]*matrix[2][2] - matrix[1][2]*matrix[2][0]
	a0113 := matrix[1][0]*matrix[3][1] - matrix[1][1]*matrix[3][0]
	a0112 := matrix[1][0]*matrix[2][1] - matrix[1][1]*matrix[2][0]

	det := matrix[0][0]*(matrix[1][1]*a2323-matrix[1][2]*a1323+matrix[1][3]*a1223) -
		matrix[0][1]*(matrix[1][0]*a2323-matrix[1][2]*a0323+matrix[1][3]*a0223) +
		matrix[0][2]*(matrix[1][0]*a1323-matrix[1][1]*a0323+matrix[1][3]*a0123) -
		matrix[0][3]*(matrix[1][0]*a1223-matrix[1][1]*a0223+matrix[1][2]*a0123)

	if det == 0 {
		return NewMatrix4()
	}

	det = 1 / det

	var m Matrix4

	m[0][0] = det * (matrix[1][1]*a2323 - matrix[1][2]*a1323 + matrix[1][3]*a1223)
	m[0][1] = det * -(matrix[0][1]*a2323 - matrix[0][2]*a1323 + matrix[0][3]*a1223)
	m[0][2] = det * (matrix[0][1]*a2313 - matrix[0][2]*a1313 + matrix[0][3]*a1213)
	m[0][3] = det * -(matrix[0][1]*a2312 - matrix[0][2]*a1312 + matrix[0][3]*a1212)
	m[1][0] = det * -(matrix[1][0]*a2323 - matrix[1][2]*a0323 + matrix[1][3]*a0223)
	m[1][1] = det * (matrix[0][0]*a2323 - matrix[0][2]*a0323 + matrix[0][3]*a0223)
	m[1][2] = det * -(matrix[0][0]*a2313 - matrix[0][2]*a0313 + matrix[0][3]*a0213)
	m[1][3] = det * (matrix[0][0]*a2312 - matrix[0][2]*a0312 + matrix[0][3]*a0212)
	m[2][0] = det * (matrix[1][0]*a1323 - matrix[1][1]*a0323 + matrix[1][3]*a0123)
	m[2][1] = det * -(matrix[0][0]*a1323 - matrix[0][1]*a0323 + matrix[0][3]*a0123)
	m[2][2] = det * (matrix[0][0]*a1313 - matrix[0][1]*a0313 + matrix[0][3]*a0113)
	m[2][3] = det * -(matrix[0][0]*a1312 - matrix[0][1]*a0312 + matrix[0][3]*a0112)
	m[3][0] = det * -(matrix[1][0]*a1223 - matrix[1][1]*a0223 + matrix[1][2]*a0123)
	m[3][1] = det * (matrix[0][0]*a1223 - matrix[0][1]*a0223 + matrix[0][2]*a0123)
	m[3][2] = det * -(matrix[0][0]*a1213 - matrix[0][1]*a0213 + matrix[0][2]*a0113)
	m[3][3] = det * (matrix[0][0]*a1212 - matrix[0][1]*a0212 + matrix[0][2]*a0112)

	return m

}

// MultVec transforms the Vector provided by the Matrix4 (rotating, scaling, and translating it).
func (matrix Matrix4) MultVec(vect Vector) Vector {
	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}
}

// MultVecW transforms the Vector provided by the Matrix4, additionally returning the fourth (W) component; this is used to go to clip space.
func (matrix Matrix4) MultVecW(vect Vector) (Vector, float64) {
	w := matrix[0][3]*vect.X + matrix[1][3]*vect.Y + matrix[2][3]*vect.Z + matrix[3][3]
	return matrix.MultVec(vect), w
}

// MultDir transforms a direction by the Matrix4, ignoring translation.
func (matrix Matrix4) MultDir(vect Vector) Vector {
	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z,
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z,
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z,
	}
}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {
	var m Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = matrix[i][0]*other[0][j] + matrix[i][1]*other[1][j] + matrix[i][2]*other[2][j] + matrix[i][3]*other[3][j]
		}
	}
	return m
}

// Equals returns true if the matrix equals the same values in the provided Other Matrix4 (within 0.0001).
func (matrix Matrix4) Equals(other Matrix4) bool {
	eps := 0.0001
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(matrix[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(NewMatrix4())
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, row := range matrix {
		for j := range row {
			s += strconv.FormatFloat(matrix[i][j], 'f', -1, 64)
			if j < 3 {
				s += ", "
			}
		}
		if i < 3 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
