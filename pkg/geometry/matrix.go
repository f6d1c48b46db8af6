package geometry

import (
	"fmt"
	"math"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// Mat3 is a row-major 3x3 matrix, the linear part of an affine transform
type Mat3 [3][3]float64

// IdentityMat3 returns the identity matrix
func IdentityMat3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// ScaleMat3 returns a diagonal scaling matrix
func ScaleMat3(scale core.Vec3) Mat3 {
	return Mat3{{scale.X, 0, 0}, {0, scale.Y, 0}, {0, 0, scale.Z}}
}

// UniformScaleMat3 returns a uniform scaling matrix
func UniformScaleMat3(scale float64) Mat3 {
	return ScaleMat3(core.NewVec3(scale, scale, scale))
}

// RotationMat3 returns the rotation by angle (radians) around a unit axis,
// via Rodrigues' formula.
func RotationMat3(angle float64, axis core.Vec3) Mat3 {
	axis = axis.Normalize()
	sin, cos := math.Sincos(angle)
	oneMinusCos := 1 - cos
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat3{
		{cos + x*x*oneMinusCos, x*y*oneMinusCos - z*sin, x*z*oneMinusCos + y*sin},
		{y*x*oneMinusCos + z*sin, cos + y*y*oneMinusCos, y*z*oneMinusCos - x*sin},
		{z*x*oneMinusCos - y*sin, z*y*oneMinusCos + x*sin, cos + z*z*oneMinusCos},
	}
}

// MulVec applies the matrix to a vector
func (m Mat3) MulVec(v core.Vec3) core.Vec3 {
	return core.Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m * other
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

// Transpose returns the transposed matrix
func (m Mat3) Transpose() Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[j][i]
		}
	}
	return result
}

// Determinant returns the matrix determinant
func (m Mat3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverted matrix, or an error for a singular matrix
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Mat3{}, fmt.Errorf("matrix is singular (determinant %g)", det)
	}

	invDet := 1 / det
	var result Mat3
	result[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	result[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	result[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	result[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	result[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	result[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	result[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	result[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	result[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	return result, nil
}
