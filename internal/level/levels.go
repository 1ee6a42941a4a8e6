// Package level assembles a single Half-Life level's voxel models and
// entity-derived scene data (component J's "read everything for one
// level" half; the write half lives in internal/voxel and internal/scene).
package level

// AllLevels is the canonical Half-Life single-player campaign, in launch
// order. The CLI's "all" argument expands to these 96 maps.
var AllLevels = []string{
	"c1a0", "c1a0a", "c1a0b", "c1a0c", "c1a0d", "c1a0e",
	"c1a1", "c1a1a", "c1a1b", "c1a1c", "c1a1d",
	"c1a2", "c1a2a", "c1a2b", "c1a2c", "c1a2d",
	"c1a3", "c1a3a", "c1a3b", "c1a3c", "c1a3d",
	"c1a4", "c1a4i", "c1a4j", "c1a4k", "c1a4l", "c1a4m", "c1a4n",
	"c2a1", "c2a1a", "c2a1b",
	"c2a2", "c2a2a", "c2a2b", "c2a2c", "c2a2d", "c2a2e", "c2a2f", "c2a2g",
	"c2a3", "c2a3a", "c2a3b", "c2a3c", "c2a3d", "c2a3e",
	"c2a4", "c2a4a", "c2a4b", "c2a4c", "c2a4d", "c2a4e", "c2a4f", "c2a4g",
	"c2a5", "c2a5a", "c2a5b", "c2a5c", "c2a5d", "c2a5e", "c2a5f", "c2a5w",
	"c3a1", "c3a1a", "c3a1b",
	"c3a2", "c3a2a", "c3a2b", "c3a2c", "c3a2d", "c3a2e", "c3a2f",
	"c4a1", "c4a1a", "c4a1b", "c4a1c", "c4a1d", "c4a1e", "c4a1f", "c4a1g",
	"c4a2", "c4a2a", "c4a2b",
	"c4a3",
	"c5a1",
	"d1a1", "d1a1_2", "d1a1_3", "d1a1_4", "d1a1_5",
	"d1a2", "d1a3", "d2a1", "d3a1",
	"t0a0", "t0a0a",
}
