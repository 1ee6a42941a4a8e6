package voxel

import "github.com/rednicstone/voxlife/internal/bsp"

const (
	// hammerScale is the size, in meters, of one Hammer/GoldSrc map unit
	// (1 inch).
	hammerScale = 0.0254
	// teardownScale is the size, in meters, of one Teardown voxel
	// (1 decimeter).
	teardownScale = 0.1
	// gridScale converts a Hammer map unit directly into a voxel-grid
	// unit: hammerScale / teardownScale.
	gridScale = hammerScale / teardownScale
	// DecimeterToMeter converts a voxel-grid position into the meters
	// Teardown's scene XML expects. Applied only to world-space
	// positions, never to unitless voxel-grid dimensions.
	DecimeterToMeter = teardownScale
)

// Vec3 is a world-space position or direction in voxlife's own coordinate
// convention (right-handed become left-handed, Y up).
type Vec3 struct {
	X, Y, Z float32
}

// ConvertCoordinates maps a Hammer-space (Z-up, right-handed, 1 unit = 1
// inch) position into Teardown voxel-grid space (Y-up, left-handed, 1 unit
// = 1 decimeter): scale by gridScale, swap Y/Z, and negate the new Z.
func ConvertCoordinates(v bsp.Vec3) Vec3 {
	x := v.X * gridScale
	y := v.Z * gridScale
	z := -(v.Y * gridScale)
	return Vec3{x, y, z}
}

// WorldPosition converts a voxel-grid position into meters for placement
// in a Teardown scene.
func WorldPosition(v Vec3) Vec3 {
	return Vec3{v.X * DecimeterToMeter, v.Y * DecimeterToMeter, v.Z * DecimeterToMeter}
}
