package voxel

import (
	"testing"

	"golang.org/x/exp/rand"
)

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestOklabRoundTrip(t *testing.T) {
	colors := [][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {128, 128, 128}, {10, 200, 60}}
	for _, c := range colors {
		back := oklabToRGB(rgbToOklab(c))
		for i := 0; i < 3; i++ {
			if absDiff(c[i], back[i]) > 3 {
				t.Errorf("round-trip %v -> %v exceeds tolerance at channel %d", c, back, i)
			}
		}
	}
}

func TestKmeansSinglePointSingleCluster(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	points := []oklab{rgbToOklab([3]uint8{100, 50, 10})}
	assignments, centroids := kmeans(points, 1, 10, rng)
	if len(assignments) != 1 || assignments[0] != 0 {
		t.Fatalf("assignments = %v, want [0]", assignments)
	}
	if centroids[0] != points[0] {
		t.Fatalf("centroids[0] = %v, want %v", centroids[0], points[0])
	}
}

func TestKmeansAssignsEveryPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := make([]oklab, 50)
	for i := range points {
		points[i] = rgbToOklab([3]uint8{uint8(i * 5), uint8(255 - i*5), uint8(i)})
	}
	assignments, centroids := kmeans(points, 4, 20, rng)
	if len(assignments) != len(points) {
		t.Fatalf("got %d assignments, want %d", len(assignments), len(points))
	}
	for _, a := range assignments {
		if a < 0 || a >= 4 {
			t.Fatalf("assignment %d out of range [0,4)", a)
		}
	}
	if len(centroids) != 4 {
		t.Fatalf("got %d centroids, want 4", len(centroids))
	}
}

func TestGeneratePaletteAssignsIndexWithinMaterialSlot(t *testing.T) {
	model := &VoxelModel{
		SizeX: 1, SizeY: 1, SizeZ: 2,
		Voxels: []Voxel{
			{Material: Wood, Color: [3]uint8{100, 50, 10}},
			{}, // Air: zero value, must be skipped
		},
	}

	pal := GeneratePalette([]*VoxelModel{model}, 1, 10, 2)

	idx := model.Voxels[0].Index
	slot := Wood.Slot()
	if int(idx) < slot.Base || int(idx) >= slot.Base+slot.Count {
		t.Fatalf("voxel index %d outside Wood's slot [%d,%d)", idx, slot.Base, slot.Base+slot.Count)
	}
	if pal.RGBA[idx][3] != 255 {
		t.Fatalf("palette entry %d has alpha %d, want 255 (opaque)", idx, pal.RGBA[idx][3])
	}
	if model.Voxels[1].Index != 0 {
		t.Fatalf("air voxel got a palette index %d, want untouched (0)", model.Voxels[1].Index)
	}
}

func TestGeneratePaletteDeterministicAcrossRuns(t *testing.T) {
	build := func() *VoxelModel {
		m := &VoxelModel{SizeX: 4, SizeY: 4, SizeZ: 4}
		m.Voxels = make([]Voxel, 64)
		for i := range m.Voxels {
			m.Voxels[i] = Voxel{
				Material: WeakMetal,
				Color:    [3]uint8{uint8(i * 4), uint8(255 - i*3), uint8(i)},
			}
		}
		return m
	}

	a := build()
	b := build()
	palA := GeneratePalette([]*VoxelModel{a}, 7, 50, 3)
	palB := GeneratePalette([]*VoxelModel{b}, 7, 50, 3)

	if palA.RGBA != palB.RGBA {
		t.Fatal("same seed produced different palettes")
	}
	for i := range a.Voxels {
		if a.Voxels[i].Index != b.Voxels[i].Index {
			t.Fatalf("voxel %d index differs across runs: %d vs %d", i, a.Voxels[i].Index, b.Voxels[i].Index)
		}
	}
}

func TestGeneratePaletteHandlesNoModels(t *testing.T) {
	pal := GeneratePalette(nil, 1, 10, 2)
	for i, c := range pal.RGBA {
		if c[0] != 0 || c[1] != 0 || c[2] != 0 || c[3] != 255 {
			t.Fatalf("entry %d = %v, want black with alpha 255 for an unused slot", i, c)
		}
	}
}
