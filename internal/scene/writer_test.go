package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rednicstone/voxlife/internal/level"
	"github.com/rednicstone/voxlife/internal/voxel"
)

func TestWriteLevelProducesExpectedElements(t *testing.T) {
	info := &level.Info{
		Name:     "c1a0",
		LevelPos: [3]float32{1, 2, 3},
		SpawnPos: [3]float32{4, 5, 6},
		SpawnRot: [3]float32{0, 90, 0},
		Environment: level.Environment{
			Skybox:     "cloudy.dds",
			Brightness: 0.5,
			SunColor:   [3]float32{1, 1, 1},
			SunDir:     [3]float32{0, -1, 0},
		},
		Lights: []level.Light{
			{Pos: [3]float32{1, 1, 1}, Color: [3]uint8{255, 0, 0}, Intensity: 10},
		},
		Locations: []level.Location{
			{Name: "start_area", Pos: [3]float32{2, 2, 2}},
		},
		NPCs: []level.NPC{
			{Pos: [3]float32{3, 3, 3}, Rot: [3]float32{0, 180, 0}, PathName: "MOD/characters/monster_scientist.xml"},
		},
		Triggers: []level.Trigger{
			{Map: "c1a0a", Landmark: "c1a0_to_c1a0a", Pos: [3]float32{5, 0, 5}, Size: [3]float32{2, 2, 2}},
		},
		Models: []*voxel.VoxelModel{
			{SizeX: 4, SizeY: 4, SizeZ: 4, ID: 7},
		},
	}

	dir := t.TempDir()
	if err := WriteLevel(dir, info); err != nil {
		t.Fatalf("WriteLevel: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "c1a0.xml"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	xml := string(data)

	mustContain := []string{
		"<prefab version=\"1.6.0\">",
		"<spawnpoint",
		"tags=\"c1a0\"",
		"<environment",
		"skybox=\"MOD/cloudy.dds\"",
		"start_area",
		"monster_scientist",
		"changelevel map=c1a0a landmark=c1a0_to_c1a0a",
		"MOD/brush/c1a0/7.vox",
		"</prefab>",
	}
	for _, want := range mustContain {
		if !strings.Contains(xml, want) {
			t.Errorf("output missing %q\nfull output:\n%s", want, xml)
		}
	}
}

func TestWriteLevelCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "levels")
	info := &level.Info{Name: "empty"}
	if err := WriteLevel(dir, info); err != nil {
		t.Fatalf("WriteLevel: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "empty.xml")); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}
