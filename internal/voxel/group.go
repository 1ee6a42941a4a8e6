package voxel

import (
	"fmt"
	"math"

	"github.com/rednicstone/voxlife/internal/bsp"
	"github.com/rednicstone/voxlife/internal/miptex"
)

const (
	// groupMaxExtent is the largest span a fused group may reach along any
	// axis before the next face starts a new group. Kept below the
	// 256-cell MagicaVoxel limit so the double-written shell still fits.
	groupMaxExtent = 250
	// groupSmallExtent marks a group as "very small": while the group is
	// under this span on any axis, a texture change alone does not split
	// it. Tiny trim faces would otherwise each spawn their own model.
	groupSmallExtent = 20
)

// pendingFace is one face queued into the current group, voxelized only
// when the group closes and its final volume is known.
type pendingFace struct {
	verts     []bsp.Vec3
	planeType int32
	texInfo   bsp.TexInfo
	tex       *miptex.Texture
	material  Material
	index     int
}

// Grouper fuses consecutive faces into shared voxel volumes keyed by the
// texture the current group started with. Faces are accumulated in source
// order; a new group starts when fusing the next face would stretch the
// volume past groupMaxExtent on any axis, or when the face's texture
// differs from the group's and the group is no longer very small. Fused
// models are world-axis-aligned, so they carry a zero rotation.
type Grouper struct {
	models  []*VoxelModel
	pending []pendingFace
	texture string
	// min/max bound the current group in voxel-grid units along the model
	// axes (X, vertical, negated-Y).
	min, max [3]float32
	nextID   int
	errs     []error
}

func NewGrouper() *Grouper {
	return &Grouper{}
}

// faceGridBounds returns a face's voxel-grid AABB along the model axes,
// floored/ceiled to whole cells.
func faceGridBounds(verts []bsp.Vec3) (min, max [3]float32) {
	const maxF = math.MaxFloat32
	min = [3]float32{maxF, maxF, maxF}
	max = [3]float32{-maxF, -maxF, -maxF}
	for _, v := range verts {
		w := ConvertCoordinates(v)
		for i, c := range [3]float32{w.X, w.Y, w.Z} {
			min[i] = fmin(min[i], float32(math.Floor(float64(c))))
			max[i] = fmax(max[i], float32(math.Ceil(float64(c))))
		}
	}
	return min, max
}

// Add queues one face for fused voxelization, closing the current group
// first if the face cannot join it. A non-nil error means the face itself
// was rejected (degenerate or too large) and dropped; failures while
// voxelizing a closing group are collected and reported by Finish.
func (g *Grouper) Add(verts []bsp.Vec3, planeType int32, texInfo bsp.TexInfo, tex *miptex.Texture, material Material, faceIndex int) error {
	if len(verts) < 3 {
		return fmt.Errorf("voxel: face %d has fewer than 3 vertices", faceIndex)
	}

	fMin, fMax := faceGridBounds(verts)
	for i := 0; i < 3; i++ {
		if fMax[i]-fMin[i] > 256 {
			return fmt.Errorf("voxel: face %d is too large for a magicavoxel model", faceIndex)
		}
	}

	face := pendingFace{
		verts:     verts,
		planeType: planeType,
		texInfo:   texInfo,
		tex:       tex,
		material:  material,
		index:     faceIndex,
	}

	if len(g.pending) == 0 {
		g.start(face, fMin, fMax)
		return nil
	}

	var uMin, uMax [3]float32
	veryBig := false
	verySmall := false
	for i := 0; i < 3; i++ {
		uMin[i] = fmin(g.min[i], fMin[i])
		uMax[i] = fmax(g.max[i], fMax[i])
		if uMax[i]-uMin[i] > groupMaxExtent {
			veryBig = true
		}
		if g.max[i]-g.min[i] < groupSmallExtent {
			verySmall = true
		}
	}
	newTexture := tex.Name != g.texture

	if veryBig || (newTexture && !verySmall) {
		g.close()
		g.start(face, fMin, fMax)
		return nil
	}

	g.min, g.max = uMin, uMax
	g.pending = append(g.pending, face)
	return nil
}

func (g *Grouper) start(face pendingFace, min, max [3]float32) {
	g.pending = append(g.pending[:0], face)
	g.texture = face.tex.Name
	g.min, g.max = min, max
}

// Finish closes the in-progress group and returns every fused model, in
// the order the groups were started, together with any per-group or
// per-face voxelization failures collected along the way. The models are
// valid regardless of the errors; each error names one dropped group or
// face.
func (g *Grouper) Finish() ([]*VoxelModel, []error) {
	if len(g.pending) > 0 {
		g.close()
		g.pending = nil
	}
	return g.models, g.errs
}

// close voxelizes the queued faces into one shared, world-axis-aligned
// volume and appends the trimmed result to the finished models.
func (g *Grouper) close() {
	origin := [3]int{int(g.min[0]), int(g.min[1]), int(g.min[2])}
	// One spare cell per axis: the top shell write lands at
	// floor(depth+0.5), which may touch the cell just past the ceiled
	// vertex bound.
	dims := [3]int{
		int(g.max[0]) - origin[0] + 1,
		int(g.max[1]) - origin[1] + 1,
		int(g.max[2]) - origin[2] + 1,
	}

	voxels := make([]Voxel, dims[0]*dims[1]*dims[2])
	cell := func(x, y, z int) int {
		return z*(dims[0]*dims[1]) + y*dims[0] + x
	}

	for _, face := range g.pending {
		if err := g.voxelizeInto(face, voxels, dims, origin, cell); err != nil {
			g.errs = append(g.errs, err)
		}
	}

	// Trim to the tight bounds of actually-written cells.
	minC := [3]int{math.MaxInt32, math.MaxInt32, math.MaxInt32}
	maxC := [3]int{0, 0, 0}
	found := false
	for z := 0; z < dims[2]; z++ {
		for y := 0; y < dims[1]; y++ {
			for x := 0; x < dims[0]; x++ {
				if voxels[cell(x, y, z)].Material == Air {
					continue
				}
				found = true
				for i, c := range [3]int{x, y, z} {
					if c < minC[i] {
						minC[i] = c
					}
					if c+1 > maxC[i] {
						maxC[i] = c + 1
					}
				}
			}
		}
	}
	if !found {
		g.errs = append(g.errs, fmt.Errorf("voxel: group %d generated no valid voxels", g.nextID))
		return
	}

	model := &VoxelModel{
		SizeX:       maxC[0] - minC[0],
		SizeY:       maxC[1] - minC[1],
		SizeZ:       maxC[2] - minC[2],
		TextureName: g.texture,
		ID:          g.nextID,
	}
	model.Voxels = make([]Voxel, model.SizeX*model.SizeY*model.SizeZ)
	for z := 0; z < model.SizeZ; z++ {
		for y := 0; y < model.SizeY; y++ {
			for x := 0; x < model.SizeX; x++ {
				model.Voxels[model.at(x, y, z)] = voxels[cell(x+minC[0], y+minC[1], z+minC[2])]
			}
		}
	}

	model.WorldPos = Vec3{
		X: (float32(origin[0]+minC[0]) + 0.5) * DecimeterToMeter,
		Y: (float32(origin[1]+minC[1]) + 0.5) * DecimeterToMeter,
		Z: (float32(origin[2]+minC[2]) + 0.5) * DecimeterToMeter,
	}

	g.models = append(g.models, model)
	g.nextID++
}

// voxelizeInto rasterizes one face and writes its double-tapped shell into
// the group volume, mapping raster/depth coordinates back onto the model
// axes for the face's dominant axis.
func (g *Grouper) voxelizeInto(face pendingFace, voxels []Voxel, dims, origin [3]int, cell func(x, y, z int) int) error {
	raster, err := rasterizeFaceGrids(face.verts, face.planeType, face.texInfo, face.index)
	if err != nil {
		return err
	}

	gridX := int(raster.grid.OriginX)
	gridY := int(raster.grid.OriginY)

	write := func(a, b, d int, v Voxel) {
		var x, y, z int
		switch face.planeType {
		case bsp.PlaneX, bsp.PlaneAnyX:
			x, y, z = d, b, a
		case bsp.PlaneY, bsp.PlaneAnyY:
			x, y, z = b, a, d
		default: // bsp.PlaneZ, bsp.PlaneAnyZ
			x, y, z = a, d, b
		}
		x -= origin[0]
		y -= origin[1]
		z -= origin[2]
		if x < 0 || x >= dims[0] || y < 0 || y >= dims[1] || z < 0 || z >= dims[2] {
			return
		}
		voxels[cell(x, y, z)] = v
	}

	for j := 0; j < int(raster.grid.Height); j++ {
		for i := 0; i < int(raster.grid.Width); i++ {
			d, ok := raster.depthAt(i, j)
			if !ok {
				continue
			}

			uv := raster.uvAt(i, j)
			color := BilinearSample(face.tex, uv.X, uv.Y)
			v := Voxel{Material: face.material, Color: color}

			a := gridX + i
			b := gridY + j
			write(a, b, int(math.Floor(float64(d))), v)
			write(a, b, int(math.Floor(float64(d)+0.5)), v)
		}
	}

	return nil
}
