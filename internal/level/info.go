package level

import "github.com/rednicstone/voxlife/internal/voxel"

// Light is a static point light placed in the Teardown scene.
type Light struct {
	Pos       [3]float32
	Color     [3]uint8
	Intensity uint32
}

// Location is a named point (an info_landmark) other levels align their
// own landmark against when transitioning in.
type Location struct {
	Name string
	Pos  [3]float32
}

// NPC is a monster spawn carried through to a Teardown character prefab
// instance.
type NPC struct {
	Pos      [3]float32
	Rot      [3]float32
	PathName string
}

// Trigger is a level-change volume (a trigger_changelevel brush), placed
// and sized from its sub-model's AABB.
type Trigger struct {
	Map      string
	Landmark string
	Pos      [3]float32
	Size     [3]float32
}

// Info bundles everything one level's scene file needs: the voxelized
// brush models plus every entity-derived placement.
type Info struct {
	Name        string
	Models      []*voxel.VoxelModel
	Lights      []Light
	Locations   []Location
	NPCs        []NPC
	Triggers    []Trigger
	SpawnPos    [3]float32
	SpawnRot    [3]float32
	LevelPos    [3]float32
	Environment Environment
}
