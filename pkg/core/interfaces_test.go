package core

import "testing"

func TestSetFaceNormal(t *testing.T) {
	outward := NewVec3(0, 0, -1)

	// Ray hitting the front face keeps the outward normal
	front := &HitRecord{}
	front.SetFaceNormal(NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), outward)
	if !front.FrontFace || front.Normal != outward {
		t.Errorf("front face: FrontFace=%v Normal=%v", front.FrontFace, front.Normal)
	}

	// Ray hitting from behind flips the normal against itself
	back := &HitRecord{}
	back.SetFaceNormal(NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), outward)
	if back.FrontFace {
		t.Error("expected back face")
	}
	if back.Normal != NewVec3(0, 0, 1) {
		t.Errorf("back face normal: got %v", back.Normal)
	}
}

func TestMaterialColorAt(t *testing.T) {
	m := &Material{}
	if got := m.ColorAt(NewVec3(1, 2, 3)); got != (Vec3{}) {
		t.Errorf("nil texture must yield black, got %v", got)
	}
	if m.IsReflective() {
		t.Error("zero reflectivity must not be reflective")
	}
	m.Reflectivity = 0.5
	if !m.IsReflective() {
		t.Error("expected reflective material")
	}
}
