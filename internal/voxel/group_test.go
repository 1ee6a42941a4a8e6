package voxel

import (
	"testing"

	"github.com/rednicstone/voxlife/internal/bsp"
)

func TestGrouperFusesSameTextureFaces(t *testing.T) {
	tex := testTexture("WALL01")
	g := NewGrouper()

	if err := g.Add(quadZ(0, 0, 100, 100, 0), bsp.PlaneZ, texInfoXY(), tex, WeakMetal, 0); err != nil {
		t.Fatalf("Add face 0: %v", err)
	}
	if err := g.Add(quadZ(100, 0, 200, 100, 0), bsp.PlaneZ, texInfoXY(), tex, WeakMetal, 1); err != nil {
		t.Fatalf("Add face 1: %v", err)
	}

	models, errs := g.Finish()
	if len(errs) != 0 {
		t.Fatalf("Finish errors: %v", errs)
	}
	if len(models) != 1 {
		t.Fatalf("got %d models, want 1 fused volume", len(models))
	}

	m := models[0]
	if m.Rotation != (Rotation{0, 0, 0}) {
		t.Errorf("Rotation = %v, want zero for a fused world-aligned volume", m.Rotation)
	}
	if m.SizeY != 1 {
		t.Errorf("SizeY = %d, want 1 for coplanar z-plane faces", m.SizeY)
	}
	// Both faces together span 200 hammer units = 50.8 voxels along X.
	if m.SizeX < 40 || m.SizeX > 52 {
		t.Errorf("SizeX = %d, want roughly 50", m.SizeX)
	}
	if m.TextureName != "WALL01" {
		t.Errorf("TextureName = %q, want WALL01", m.TextureName)
	}
	if m.ID != 0 {
		t.Errorf("ID = %d, want 0", m.ID)
	}
	if countFilled(m) == 0 {
		t.Fatal("fused volume has no voxels")
	}
}

func TestGrouperSplitsWhenUnionTooBig(t *testing.T) {
	tex := testTexture("WALL01")
	g := NewGrouper()

	if err := g.Add(quadZ(0, 0, 100, 100, 0), bsp.PlaneZ, texInfoXY(), tex, WeakMetal, 0); err != nil {
		t.Fatalf("Add face 0: %v", err)
	}
	// 1050..1150 hammer is ~267..292 voxels out: the union would span
	// past the extent cap, so this face must open a second group.
	if err := g.Add(quadZ(1050, 0, 1150, 100, 0), bsp.PlaneZ, texInfoXY(), tex, WeakMetal, 1); err != nil {
		t.Fatalf("Add face 1: %v", err)
	}

	models, errs := g.Finish()
	if len(errs) != 0 {
		t.Fatalf("Finish errors: %v", errs)
	}
	if len(models) != 2 {
		t.Fatalf("got %d models, want 2 (distant faces must not fuse)", len(models))
	}
	if models[0].ID == models[1].ID {
		t.Errorf("both models share id %d", models[0].ID)
	}
}

func TestGrouperTextureChangeSplitsLargeGroup(t *testing.T) {
	wall := testTexture("WALL01")
	other := testTexture("CRATE01")
	g := NewGrouper()

	// Two perpendicular faces stretch the group past the very-small
	// threshold on all three axes.
	if err := g.Add(quadZ(0, 0, 100, 100, 0), bsp.PlaneZ, texInfoXY(), wall, WeakMetal, 0); err != nil {
		t.Fatalf("Add face 0: %v", err)
	}
	if err := g.Add(quadX(0, 0, 100, 100, 0), bsp.PlaneX, texInfoYZ(), wall, WeakMetal, 1); err != nil {
		t.Fatalf("Add face 1: %v", err)
	}
	if err := g.Add(quadZ(0, 0, 100, 100, 100), bsp.PlaneZ, texInfoXY(), other, WeakMetal, 2); err != nil {
		t.Fatalf("Add face 2: %v", err)
	}

	models, errs := g.Finish()
	if len(errs) != 0 {
		t.Fatalf("Finish errors: %v", errs)
	}
	if len(models) != 2 {
		t.Fatalf("got %d models, want 2 (texture change on a grown group splits)", len(models))
	}
	if models[0].TextureName != "WALL01" {
		t.Errorf("first group texture = %q, want WALL01", models[0].TextureName)
	}
	if models[1].TextureName != "CRATE01" {
		t.Errorf("second group texture = %q, want CRATE01", models[1].TextureName)
	}
}

func TestGrouperVerySmallGroupAbsorbsTextureChange(t *testing.T) {
	wall := testTexture("WALL01")
	other := testTexture("CRATE01")
	g := NewGrouper()

	// A lone flat face has zero thickness, so the group stays very small
	// and the texture change must not split it.
	if err := g.Add(quadZ(0, 0, 100, 100, 0), bsp.PlaneZ, texInfoXY(), wall, WeakMetal, 0); err != nil {
		t.Fatalf("Add face 0: %v", err)
	}
	if err := g.Add(quadZ(100, 0, 200, 100, 0), bsp.PlaneZ, texInfoXY(), other, WeakMetal, 1); err != nil {
		t.Fatalf("Add face 1: %v", err)
	}

	models, errs := g.Finish()
	if len(errs) != 0 {
		t.Fatalf("Finish errors: %v", errs)
	}
	if len(models) != 1 {
		t.Fatalf("got %d models, want 1 (very small group absorbs the texture change)", len(models))
	}
	if models[0].TextureName != "WALL01" {
		t.Errorf("group texture = %q, want the first face's WALL01", models[0].TextureName)
	}
}

func TestGrouperRejectsDegenerateFace(t *testing.T) {
	tex := testTexture("WALL01")
	g := NewGrouper()
	verts := []bsp.Vec3{{X: 0}, {X: 100}}
	if err := g.Add(verts, bsp.PlaneZ, texInfoXY(), tex, WeakMetal, 0); err == nil {
		t.Fatal("expected error for a 2-vertex face")
	}
	if models, _ := g.Finish(); len(models) != 0 {
		t.Fatalf("got %d models from a rejected face, want 0", len(models))
	}
}
