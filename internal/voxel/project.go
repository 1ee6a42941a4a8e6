package voxel

import "github.com/rednicstone/voxlife/internal/bsp"

// Rotation is an Euler-angle triple, in degrees, written directly into a
// Teardown scene's rot="x y z" attribute. voxlife never composes
// rotations: every voxel model gets one of exactly three fixed orientations
// depending on which axis its source face's plane was most aligned with.
type Rotation struct {
	X, Y, Z float32
}

// RotationForPlane returns the fixed Euler rotation a voxel model
// projected along planeType's dominant axis must be placed with to appear
// upright in Teardown's left-handed, Y-up space.
func RotationForPlane(planeType int32) Rotation {
	switch planeType {
	case bsp.PlaneX, bsp.PlaneAnyX:
		return Rotation{-90, -90, 0}
	case bsp.PlaneY, bsp.PlaneAnyY:
		return Rotation{0, 90, 90}
	default: // bsp.PlaneZ, bsp.PlaneAnyZ
		return Rotation{0, 0, 0}
	}
}

// ProjectFace flattens a face's original (Hammer-space) vertex loop onto
// the 2D plane perpendicular to its dominant axis, returning the in-plane
// coordinates alongside the perpendicular "depth" of each vertex. All
// three components are pre-scaled to voxel-grid units and have the same Y
// sign flip ConvertCoordinates applies, so the projected polygon and its
// depths already live in the same space as the voxel grid being built.
func ProjectFace(verts []bsp.Vec3, planeType int32) (points []Point, depths []float32) {
	points = make([]Point, len(verts))
	depths = make([]float32, len(verts))

	for i, v := range verts {
		x := v.X * gridScale
		yNeg := -v.Y * gridScale
		z := v.Z * gridScale

		switch planeType {
		case bsp.PlaneX, bsp.PlaneAnyX:
			points[i] = Point{yNeg, z}
			depths[i] = x
		case bsp.PlaneY, bsp.PlaneAnyY:
			points[i] = Point{z, x}
			depths[i] = yNeg
		default: // bsp.PlaneZ, bsp.PlaneAnyZ
			points[i] = Point{x, yNeg}
			depths[i] = z
		}
	}

	return points, depths
}

// ComputeFaceUVs projects a face's original, untransformed vertices onto
// its texinfo's S/T basis, producing unnormalized texel coordinates.
func ComputeFaceUVs(verts []bsp.Vec3, info bsp.TexInfo) []Vec2 {
	uvs := make([]Vec2, len(verts))
	for i, v := range verts {
		s := v.X*info.S.X + v.Y*info.S.Y + v.Z*info.S.Z + info.ShiftS
		t := v.X*info.T.X + v.Y*info.T.Y + v.Z*info.T.Z + info.ShiftT
		uvs[i] = Vec2{s, t}
	}
	return uvs
}
