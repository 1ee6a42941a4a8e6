package voxel

import (
	"fmt"

	"github.com/rednicstone/voxlife/internal/mathutil"
)

// Point is a 2D position in the rasterizer's screen-space grid.
type Point struct {
	X, Y float32
}

// GridProperties describes the pixel grid a polygon is rasterized onto.
type GridProperties struct {
	Width, Height    uint32
	OriginX, OriginY float32
}

// Lerpable is the small arithmetic surface Varying needs from an
// attribute's value type: addition, subtraction, and uniform scaling.
type Lerpable[T any] interface {
	AddV(T) T
	SubV(T) T
	ScaleV(float32) T
}

// Scalar is a Lerpable wrapper around float32, used for the per-face depth
// varying.
type Scalar float32

func (s Scalar) AddV(o Scalar) Scalar    { return s + o }
func (s Scalar) SubV(o Scalar) Scalar    { return s - o }
func (s Scalar) ScaleV(f float32) Scalar { return Scalar(float32(s) * f) }

// Vec2 is a Lerpable 2D vector, used for the per-face UV varying.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) AddV(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) SubV(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) ScaleV(f float32) Vec2 { return Vec2{v.X * f, v.Y * f} }

type rowInfo struct {
	frontPoint1, frontPoint2 int
	backPoint1, backPoint2   int
	lineY                    int
	relativeFrontY           float32
	relativeBackY            float32
	frontIntersection        float32
	backIntersection         float32
	frontIndex, backIndex    int
}

type interpolator interface {
	interpolateRow(info rowInfo)
}

// Varying holds one per-vertex attribute (depth, UV, ...) and the grid its
// values are smoothly interpolated into as the polygon is scan-converted.
type Varying[T Lerpable[T]] struct {
	points []T
	grid   []T
	width  int
}

func newVarying[T Lerpable[T]](grid GridProperties, points []T) *Varying[T] {
	return &Varying[T]{
		points: points,
		grid:   make([]T, int(grid.Width)*int(grid.Height)),
		width:  int(grid.Width),
	}
}

// Grid returns the rasterized attribute grid in row-major (y*width+x) order.
func (v *Varying[T]) Grid() []T {
	return v.grid
}

func (v *Varying[T]) interpolateRow(info rowInfo) {
	frontP1 := v.points[info.frontPoint1]
	frontP2 := v.points[info.frontPoint2]
	backP1 := v.points[info.backPoint1]
	backP2 := v.points[info.backPoint2]

	frontValue := frontP1.AddV(frontP2.SubV(frontP1).ScaleV(info.relativeFrontY))
	backValue := backP1.AddV(backP2.SubV(backP1).ScaleV(info.relativeBackY))

	fractionInverseX := 1.0 / (info.backIntersection - info.frontIntersection)
	incremental := backValue.SubV(frontValue).ScaleV(fractionInverseX)
	value := frontValue.AddV(incremental.ScaleV(float32(info.frontIndex) - info.frontIntersection))

	for x := info.frontIndex; x < info.backIndex; x++ {
		value = value.AddV(incremental)
		v.grid[info.lineY*v.width+x] = value
	}
}

// Rasterizer scan-converts a single convex polygon into one or more
// attribute grids sharing the same dimensions.
type Rasterizer struct {
	grid     GridProperties
	varyings []interpolator
}

func NewRasterizer(grid GridProperties) *Rasterizer {
	return &Rasterizer{grid: grid}
}

// AddVarying registers a new attribute channel, sized to match the
// rasterizer's grid, sourced from points (one value per polygon vertex).
func AddVarying[T Lerpable[T]](r *Rasterizer, points []T) *Varying[T] {
	v := newVarying[T](r.grid, points)
	r.varyings = append(r.varyings, v)
	return v
}

type edge struct {
	first, second int
}

func wrapNext(i, n int) int {
	i++
	if i == n {
		i = 0
	}
	return i
}

func wrapPrev(i, n int) int {
	if i == 0 {
		i = n
	}
	return i - 1
}

func intersectRayWithLine(rayY float32, p1, p2 Point) (float32, bool) {
	if p1.Y == p2.Y {
		return 0, false
	}
	s := (rayY - p1.Y) / (p2.Y - p1.Y)
	return p1.X + s*(p2.X-p1.X), true
}

// RasterizePolygon scan-converts a convex polygon (points, in any winding
// order) and feeds every registered varying one interpolated row at a time.
func (r *Rasterizer) RasterizePolygon(points []Point) error {
	n := len(points)
	if n < 3 {
		return fmt.Errorf("voxel: polygon needs at least 3 points, got %d", n)
	}

	signedArea := float32(0)
	for i := 0; i < n-1; i++ {
		p1, p2 := points[i], points[i+1]
		signedArea += p1.X*p2.Y - p2.X*p1.Y
	}
	signedArea += points[n-1].X*points[0].Y - points[0].X*points[n-1].Y

	lineIndices := make([]edge, n)
	if signedArea < 0 {
		for i := 0; i < n-1; i++ {
			lineIndices[i] = edge{i, i + 1}
		}
		lineIndices[n-1] = edge{n - 1, 0}
	} else {
		lineIndices[0] = edge{0, n - 1}
		for i := 1; i < n; i++ {
			lineIndices[i] = edge{n - i, n - i - 1}
		}
	}

	filtered := lineIndices[:0:0]
	for _, e := range lineIndices {
		if points[e.first].Y == points[e.second].Y {
			continue
		}
		filtered = append(filtered, e)
	}
	lineIndices = filtered
	if len(lineIndices) == 0 {
		return fmt.Errorf("voxel: polygon has no vertical extent")
	}

	minFirst, maxFirst := 0, 0
	minSecond := 0
	for i, e := range lineIndices {
		if points[e.first].Y < points[lineIndices[minFirst].first].Y {
			minFirst = i
		}
		if points[e.first].Y > points[lineIndices[maxFirst].first].Y {
			maxFirst = i
		}
		if points[e.second].Y < points[lineIndices[minSecond].second].Y {
			minSecond = i
		}
	}

	minY := points[lineIndices[minFirst].first].Y
	maxY := points[lineIndices[maxFirst].first].Y

	iterationsY := int(round32(maxY) - round32(minY))
	if int(r.grid.Height) < iterationsY {
		iterationsY = int(r.grid.Height)
	}

	gridMinX := r.grid.OriginX + 0.5
	gridMinY := round32(minY) + 0.5
	if alt := round32(r.grid.OriginY) + 0.5; alt > gridMinY {
		gridMinY = alt
	}
	gridWidthMinusOne := float32(r.grid.Width) - 1

	frontIdx := minFirst
	backIdx := minSecond
	frontEdge := lineIndices[frontIdx]
	backEdge := lineIndices[backIdx]
	frontLengthY := points[frontEdge.second].Y - points[frontEdge.first].Y
	backLengthY := points[backEdge.first].Y - points[backEdge.second].Y

	nLines := len(lineIndices)
	for y := 0; y < iterationsY; y++ {
		absoluteY := float32(y) + gridMinY

		if points[frontEdge.second].Y < absoluteY {
			frontIdx = wrapNext(frontIdx, nLines)
			frontEdge = lineIndices[frontIdx]
			frontLengthY = points[frontEdge.second].Y - points[frontEdge.first].Y
		}

		if points[backEdge.first].Y < absoluteY {
			backIdx = wrapPrev(backIdx, nLines)
			backEdge = lineIndices[backIdx]
			backLengthY = points[backEdge.first].Y - points[backEdge.second].Y
		}

		frontIntersection, ok1 := intersectRayWithLine(absoluteY, points[frontEdge.first], points[frontEdge.second])
		backIntersection, ok2 := intersectRayWithLine(absoluteY, points[backEdge.second], points[backEdge.first])
		if !ok1 || !ok2 {
			return fmt.Errorf("voxel: rasterizer intersection is undefined at row %d", y)
		}

		lineFront := frontIntersection - gridMinX
		lineBack := backIntersection - gridMinX

		lineMin := mathutil.Clamp(lineFront, 0, gridWidthMinusOne)
		lineMax := mathutil.Clamp(lineBack, 0, gridWidthMinusOne)
		if lineMin > lineMax {
			return fmt.Errorf("voxel: rasterizer produced an inverted scanline at row %d", y)
		}

		info := rowInfo{
			frontPoint1:       frontEdge.first,
			frontPoint2:       frontEdge.second,
			backPoint1:        backEdge.second,
			backPoint2:        backEdge.first,
			lineY:             y,
			relativeFrontY:    (absoluteY - points[frontEdge.first].Y) / frontLengthY,
			relativeBackY:     (absoluteY - points[backEdge.second].Y) / backLengthY,
			frontIntersection: lineFront,
			backIntersection:  lineBack,
			frontIndex:        int(lineMin),
			backIndex:         int(lineMax),
		}

		for _, v := range r.varyings {
			v.interpolateRow(info)
		}
	}

	return nil
}
