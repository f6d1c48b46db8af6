package geometry

import (
	"math"
	"testing"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

func mat3ApproxEqual(a, b Mat3, epsilon float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(a[i][j]-b[i][j]) > epsilon {
				return false
			}
		}
	}
	return true
}

func TestMat3Inverse(t *testing.T) {
	m := Mat3{{2, 0, 1}, {0, 3, 0}, {1, 0, 1}}
	inverse, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if !mat3ApproxEqual(m.Mul(inverse), IdentityMat3(), 1e-12) {
		t.Errorf("m * m^-1 != I, got %v", m.Mul(inverse))
	}
	if !mat3ApproxEqual(inverse.Mul(m), IdentityMat3(), 1e-12) {
		t.Errorf("m^-1 * m != I, got %v", inverse.Mul(m))
	}
}

func TestMat3SingularInverse(t *testing.T) {
	singular := Mat3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}
	if _, err := singular.Inverse(); err == nil {
		t.Error("expected an error for a singular matrix")
	}
}

func TestRotationMat3(t *testing.T) {
	// Quarter turn around Z sends +X to +Y
	rotation := RotationMat3(math.Pi/2, core.NewVec3(0, 0, 1))
	rotated := rotation.MulVec(core.NewVec3(1, 0, 0))
	if rotated.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-12 {
		t.Errorf("rotated +X = %v, expected +Y", rotated)
	}

	// Rotations preserve length and determinant
	if math.Abs(rotation.Determinant()-1) > 1e-12 {
		t.Errorf("rotation determinant = %v, expected 1", rotation.Determinant())
	}
	v := core.NewVec3(1, 2, 3)
	if math.Abs(rotation.MulVec(v).Length()-v.Length()) > 1e-12 {
		t.Error("rotation must preserve vector length")
	}
}

func TestScaleMat3(t *testing.T) {
	scale := ScaleMat3(core.NewVec3(2, 3, 4))
	if got := scale.MulVec(core.NewVec3(1, 1, 1)); got != core.NewVec3(2, 3, 4) {
		t.Errorf("scaled: got %v", got)
	}
	if got := scale.Determinant(); math.Abs(got-24) > 1e-12 {
		t.Errorf("determinant = %v, expected 24", got)
	}
}

func TestMat3Transpose(t *testing.T) {
	m := Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	tr := m.Transpose()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if tr[i][j] != m[j][i] {
				t.Fatalf("transpose mismatch at (%d,%d)", i, j)
			}
		}
	}
}
