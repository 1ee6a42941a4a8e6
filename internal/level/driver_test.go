package level

import (
	"testing"

	"github.com/rednicstone/voxlife/internal/bsp"
)

func TestModelIndexParsesBraceModelRef(t *testing.T) {
	cases := []struct {
		ref     string
		want    int
		wantOk  bool
	}{
		{"*5", 5, true},
		{"*0", 0, true},
		{"notamodel", 0, false},
		{"*-1", 0, false},
	}
	for _, c := range cases {
		got, ok := modelIndex(c.ref)
		if got != c.want || ok != c.wantOk {
			t.Errorf("modelIndex(%q) = (%d, %v), want (%d, %v)", c.ref, got, ok, c.want, c.wantOk)
		}
	}
}

func TestVec3Mid(t *testing.T) {
	got := Vec3Mid(Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 2, Y: 4, Z: 6})
	want := Vec3{X: 1, Y: 2, Z: 3}
	if got != want {
		t.Errorf("Vec3Mid = %v, want %v", got, want)
	}
}

func TestModelBoundsConvertsAllEightCorners(t *testing.T) {
	m := bsp.Model{
		Min: bsp.Vec3{X: -10, Y: 0, Z: -20},
		Max: bsp.Vec3{X: 10, Y: 100, Z: 20},
	}
	min, max := modelBounds(m)
	if min.X >= max.X || min.Y >= max.Y || min.Z >= max.Z {
		t.Fatalf("expected a non-degenerate AABB, got min=%v max=%v", min, max)
	}
}

func TestToMetersOrigin(t *testing.T) {
	got := toMeters([3]int{0, 0, 0})
	if got != ([3]float32{0, 0, 0}) {
		t.Errorf("toMeters(origin) = %v, want zero", got)
	}
}
