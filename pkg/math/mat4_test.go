package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func approxEqual(a, b float32) bool {
	return math32.Abs(a-b) < 1e-5
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())
	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslateTransform(t *testing.T) {
	got := Translate(5, 10, 15).TransformVec3(Vec3{1, 1, 1})
	if got != (Vec3{6, 11, 16}) {
		t.Errorf("TransformVec3() = %v", got)
	}
}

func TestRotateY(t *testing.T) {
	got := RotateY(math32.Pi / 2).TransformVec3(Vec3{1, 0, 0})
	if !approxEqual(got.X, 0) || !approxEqual(got.Z, -1) {
		t.Errorf("RotateY(90°) * X = %v, want (0, 0, -1)", got)
	}
}

func TestLookAtOrigin(t *testing.T) {
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})
	got := view.TransformVec3(Vec3{})
	if !approxEqual(got.Z, -5) {
		t.Errorf("origin in view space = %v, want z=-5", got)
	}
}

func TestPerspectiveDepth(t *testing.T) {
	p := Perspective(math32.Pi/4, 1, 0.1, 100)
	near := p.TransformVec3(Vec3{0, 0, -0.1})
	far := p.TransformVec3(Vec3{0, 0, -100})
	if !approxEqual(near.Z, -1) {
		t.Errorf("near plane depth = %v, want -1", near.Z)
	}
	if math32.Abs(far.Z-1) > 1e-3 {
		t.Errorf("far plane depth = %v, want 1", far.Z)
	}
}
