package voxel

import (
	"testing"

	"github.com/rednicstone/voxlife/internal/bsp"
	"github.com/rednicstone/voxlife/internal/miptex"
)

func testTexture(name string) *miptex.Texture {
	return &miptex.Texture{
		Name:   name,
		Width:  2,
		Height: 2,
		Pixels: []byte{
			200, 10, 10, 10, 200, 10,
			10, 10, 200, 120, 120, 120,
		},
	}
}

func texInfoXY() bsp.TexInfo {
	return bsp.TexInfo{S: bsp.Vec3{X: 1}, T: bsp.Vec3{Y: 1}}
}

func texInfoYZ() bsp.TexInfo {
	return bsp.TexInfo{S: bsp.Vec3{Y: 1}, T: bsp.Vec3{Z: 1}}
}

// quadZ builds a rectangular face on the hammer plane z=const.
func quadZ(x0, y0, x1, y1, z float32) []bsp.Vec3 {
	return []bsp.Vec3{
		{X: x0, Y: y0, Z: z},
		{X: x1, Y: y0, Z: z},
		{X: x1, Y: y1, Z: z},
		{X: x0, Y: y1, Z: z},
	}
}

// quadX builds a rectangular face on the hammer plane x=const.
func quadX(y0, z0, y1, z1, x float32) []bsp.Vec3 {
	return []bsp.Vec3{
		{X: x, Y: y0, Z: z0},
		{X: x, Y: y1, Z: z0},
		{X: x, Y: y1, Z: z1},
		{X: x, Y: y0, Z: z1},
	}
}

func countFilled(m *VoxelModel) int {
	n := 0
	for _, v := range m.Voxels {
		if v.Material != Air {
			n++
		}
	}
	return n
}

func TestVoxelizeFaceFlatQuad(t *testing.T) {
	tex := testTexture("WALL01")
	model, err := VoxelizeFace(quadZ(0, 0, 100, 100, 0), bsp.PlaneZ, texInfoXY(), tex, WeakMetal, 3)
	if err != nil {
		t.Fatalf("VoxelizeFace: %v", err)
	}

	if model.SizeY != 1 {
		t.Errorf("SizeY = %d, want 1 for a flat z-plane face", model.SizeY)
	}
	// 100 hammer units are 25.4 voxels; the trim may shave edge cells but
	// must stay in that neighborhood.
	if model.SizeX < 20 || model.SizeX > 26 {
		t.Errorf("SizeX = %d, want roughly 25", model.SizeX)
	}
	if model.SizeZ < 20 || model.SizeZ > 26 {
		t.Errorf("SizeZ = %d, want roughly 25", model.SizeZ)
	}
	if model.Rotation != (Rotation{0, 0, 0}) {
		t.Errorf("Rotation = %v, want zero for a z-plane face", model.Rotation)
	}
	if model.ID != 3 {
		t.Errorf("ID = %d, want the face index 3", model.ID)
	}
	if model.TextureName != "WALL01" {
		t.Errorf("TextureName = %q, want WALL01", model.TextureName)
	}

	filled := countFilled(model)
	if filled == 0 {
		t.Fatal("no voxels written")
	}
	if max := model.SizeX * model.SizeZ * 2; filled > max {
		t.Errorf("filled %d voxels, double-tap shell bound is %d", filled, max)
	}
	for i, v := range model.Voxels {
		if v.Material != Air && v.Material != WeakMetal {
			t.Fatalf("voxel %d has material %v, want WeakMetal", i, v.Material)
		}
	}
}

func TestVoxelizeFaceRejectsOversize(t *testing.T) {
	tex := testTexture("WALL01")
	_, err := VoxelizeFace(quadZ(0, 0, 1200, 100, 0), bsp.PlaneZ, texInfoXY(), tex, WeakMetal, 0)
	if err == nil {
		t.Fatal("expected too-large error for a 305-cell face")
	}
}

func TestVoxelizeFaceRejectsDegenerate(t *testing.T) {
	tex := testTexture("WALL01")
	verts := []bsp.Vec3{{X: 0}, {X: 100}}
	if _, err := VoxelizeFace(verts, bsp.PlaneZ, texInfoXY(), tex, WeakMetal, 0); err == nil {
		t.Fatal("expected error for a 2-vertex face")
	}
}

func TestVoxelizeFaceXPlaneRotation(t *testing.T) {
	tex := testTexture("WALL01")
	model, err := VoxelizeFace(quadX(0, 0, 100, 100, 0), bsp.PlaneX, texInfoYZ(), tex, WeakMetal, 0)
	if err != nil {
		t.Fatalf("VoxelizeFace: %v", err)
	}
	if model.Rotation != (Rotation{-90, -90, 0}) {
		t.Errorf("Rotation = %v, want {-90,-90,0} for an x-plane face", model.Rotation)
	}
	if model.SizeY != 1 {
		t.Errorf("SizeY = %d, want 1 (depth axis collapses for a flat face)", model.SizeY)
	}
}
