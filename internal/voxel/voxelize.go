package voxel

import (
	"fmt"
	"math"

	"github.com/rednicstone/voxlife/internal/bsp"
	"github.com/rednicstone/voxlife/internal/miptex"
)

// Voxel is one filled cell of a VoxelModel: the material class it was
// voxelized with plus its sampled surface color. The palette generator
// later maps (Material, Color) pairs to a single final palette index.
type Voxel struct {
	Material Material
	Color    [3]uint8
	// Index is the final 256-entry palette slot this voxel's color was
	// clustered into. Zero until GeneratePalette runs.
	Index uint8
}

// VoxelModel is one voxelized brush volume (a single face, or a fused
// group of faces), ready to be written as a MagicaVoxel model and placed
// in a Teardown scene. Dimensions and voxel indices are already in the
// export axis order MagicaVoxel expects (SizeX=width, SizeY=depth,
// SizeZ=height); see the index formula in VoxelizeFace.
type VoxelModel struct {
	SizeX, SizeY, SizeZ int
	Voxels              []Voxel // len == SizeX*SizeY*SizeZ, zero value = empty (Material Air)
	WorldPos            Vec3    // meters, scene placement
	Rotation            Rotation
	TextureName         string
	ID                  int // output file id, unique within a level
}

func (m *VoxelModel) at(x, y, z int) int {
	return z*(m.SizeX*m.SizeY) + y*m.SizeX + x
}

// faceRaster is the scan-converted attribute state of one face: the grid
// it was rasterized onto plus the interpolated depth and UV channels. The
// depth channel holds absolute projected depth; cells the polygon never
// covered stay at -MaxFloat32 and fail the depthMin/depthSpan range test.
type faceRaster struct {
	grid      GridProperties
	depth     []Scalar
	uv        []Vec2
	depthMin  float32
	depthSpan int
}

func (r *faceRaster) depthAt(x, y int) (float32, bool) {
	d := float32(r.depth[y*int(r.grid.Width)+x])
	rel := d - r.depthMin
	if rel < 0 || rel > float32(r.depthSpan) {
		return 0, false
	}
	return d, true
}

func (r *faceRaster) uvAt(x, y int) Vec2 {
	return r.uv[y*int(r.grid.Width)+x]
}

// rasterizeFaceGrids projects a face onto its dominant-axis plane and
// scan-converts it with depth and UV varyings. Faces whose projection
// exceeds 256 cells along any axis, or collapses to zero cells, are
// rejected.
func rasterizeFaceGrids(verts []bsp.Vec3, planeType int32, texInfo bsp.TexInfo, faceIndex int) (*faceRaster, error) {
	if len(verts) < 3 {
		return nil, fmt.Errorf("voxel: face %d has fewer than 3 vertices", faceIndex)
	}

	points, depths := ProjectFace(verts, planeType)
	uvs := ComputeFaceUVs(verts, texInfo)

	const maxF = math.MaxFloat32
	projMin := Point{maxF, maxF}
	projMax := Point{-maxF, -maxF}
	for _, p := range points {
		projMin.X = fmin(projMin.X, p.X)
		projMin.Y = fmin(projMin.Y, p.Y)
		projMax.X = fmax(projMax.X, p.X)
		projMax.Y = fmax(projMax.Y, p.Y)
	}

	depthMin, depthMax := float32(maxF), float32(-maxF)
	for _, d := range depths {
		depthMin = fmin(depthMin, d)
		depthMax = fmax(depthMax, d)
	}

	depthSpan := int(math.Ceil(float64(depthMax)) - math.Floor(float64(depthMin)) + 1.0)

	grid := GridProperties{
		Width:   uint32(math.Ceil(float64(projMax.X)) - math.Floor(float64(projMin.X))),
		Height:  uint32(math.Ceil(float64(projMax.Y)) - math.Floor(float64(projMin.Y))),
		OriginX: float32(math.Floor(float64(projMin.X))),
		OriginY: float32(math.Floor(float64(projMin.Y))),
	}

	if grid.Width > 256 || grid.Height > 256 || depthSpan > 256 {
		return nil, fmt.Errorf("voxel: face %d is too large for a magicavoxel model (%dx%dx%d)", faceIndex, grid.Width, grid.Height, depthSpan)
	}
	if grid.Width == 0 || grid.Height == 0 || depthSpan == 0 {
		return nil, fmt.Errorf("voxel: face %d produced an empty grid", faceIndex)
	}

	rasterizer := NewRasterizer(grid)
	depthVarying := AddVarying(rasterizer, toScalars(depths))
	uvVarying := AddVarying(rasterizer, uvs)

	depthGrid := depthVarying.Grid()
	for i := range depthGrid {
		depthGrid[i] = -maxF
	}

	if err := rasterizer.RasterizePolygon(points); err != nil {
		return nil, fmt.Errorf("voxel: face %d: %w", faceIndex, err)
	}

	return &faceRaster{
		grid:      grid,
		depth:     depthGrid,
		uv:        uvVarying.Grid(),
		depthMin:  depthMin,
		depthSpan: depthSpan,
	}, nil
}

// VoxelizeFace scan-converts one BSP face into its own VoxelModel. verts
// are the face's original (untransformed) world-space vertices in winding
// order; planeType is the face's plane classification (bsp.PlaneX et al.);
// tex is the already-resolved decoded texture to sample colors from. Faces
// that are too small, too large (over 256 voxels along any axis), or
// produce no filled voxels are reported as an error and should be skipped
// by the caller, per the per-face failure isolation policy.
func VoxelizeFace(verts []bsp.Vec3, planeType int32, texInfo bsp.TexInfo, tex *miptex.Texture, material Material, faceIndex int) (*VoxelModel, error) {
	raster, err := rasterizeFaceGrids(verts, planeType, texInfo, faceIndex)
	if err != nil {
		return nil, err
	}

	const maxF = math.MaxFloat32
	worldMin := Vec3{maxF, maxF, maxF}
	for _, v := range verts {
		w := ConvertCoordinates(v)
		worldMin.X = fmin(worldMin.X, w.X)
		worldMin.Y = fmin(worldMin.Y, w.Y)
		worldMin.Z = fmin(worldMin.Z, w.Z)
	}

	width := int(raster.grid.Width)
	height := int(raster.grid.Height)

	minX, minY, minZ := math.MaxInt32, math.MaxInt32, math.MaxInt32
	maxX, maxY, maxZ := 0, 0, 0
	found := false

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d, ok := raster.depthAt(x, y)
			if !ok {
				continue
			}
			rel := float64(d - raster.depthMin)
			// The shell write below touches both floor(rel) and
			// floor(rel+0.5), so the trim extent must reach ceil(rel)+1.
			zLo := int(math.Floor(rel))
			zHi := int(math.Ceil(rel)) + 1

			found = true
			if x+1 > maxX {
				maxX = x + 1
			}
			if y+1 > maxY {
				maxY = y + 1
			}
			if zHi > maxZ {
				maxZ = zHi
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if zLo < minZ {
				minZ = zLo
			}
		}
	}

	if !found {
		return nil, fmt.Errorf("voxel: face %d generated no valid voxels", faceIndex)
	}

	sizeWidth := maxX - minX
	sizeHeight := maxY - minY

	model := &VoxelModel{
		SizeX: sizeWidth,
		SizeY: maxZ - minZ,
		SizeZ: sizeHeight,
		ID:    faceIndex,
	}
	model.Voxels = make([]Voxel, model.SizeX*model.SizeY*model.SizeZ)

	for y := 0; y < sizeHeight; y++ {
		for x := 0; x < sizeWidth; x++ {
			gridX := x + minX
			gridY := y + minY
			d, ok := raster.depthAt(gridX, gridY)
			if !ok {
				continue
			}

			uv := raster.uvAt(gridX, gridY)
			color := BilinearSample(tex, uv.X, uv.Y)

			depthValue := d - raster.depthMin
			bottomZ := int(math.Floor(float64(depthValue))) - minZ
			topZ := int(math.Floor(float64(depthValue)+0.5)) - minZ

			model.Voxels[model.at(x, bottomZ, y)] = Voxel{Material: material, Color: color}
			model.Voxels[model.at(x, topZ, y)] = Voxel{Material: material, Color: color}
		}
	}

	model.WorldPos = Vec3{
		X: (round32(worldMin.X) + 0.5) * DecimeterToMeter,
		Y: (round32(worldMin.Y) + 0.5) * DecimeterToMeter,
		Z: (round32(worldMin.Z) + 0.5) * DecimeterToMeter,
	}
	model.Rotation = RotationForPlane(planeType)
	model.TextureName = tex.Name

	return model, nil
}

func toScalars(fs []float32) []Scalar {
	out := make([]Scalar, len(fs))
	for i, f := range fs {
		out[i] = Scalar(f)
	}
	return out
}

func fmin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
