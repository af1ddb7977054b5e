package math

import (
	"testing"
)

func TestVec2FlipV(t *testing.T) {
	got := Vec2{0.5, 0.25}.FlipV()
	want := Vec2{0.5, 0.75}
	if got != want {
		t.Errorf("Vec2.FlipV() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector normalized to %v", z)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 5, 3}
	if got := a.Min(b); got != (Vec3{-1, -2, 3}) {
		t.Errorf("Min() = %v", got)
	}
	if got := a.Max(b); got != (Vec3{1, 5, 3}) {
		t.Errorf("Max() = %v", got)
	}
	if got := a.MaxComponent(); got != 3 {
		t.Errorf("MaxComponent() = %v, want 3", got)
	}
}
