package bsp

import (
	"testing"

	"github.com/rednicstone/voxlife/internal/miptex"
)

func TestFaceVerticesWindingOrder(t *testing.T) {
	lv := &Level{
		Vertices: []Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		Edges:     []Edge{{Vertex: [2]uint16{0, 1}}, {Vertex: [2]uint16{1, 2}}, {Vertex: [2]uint16{2, 3}}, {Vertex: [2]uint16{3, 0}}},
		SurfEdges: []SurfEdge{{Edge: 0}, {Edge: 1}, {Edge: 2}, {Edge: 3}},
	}
	f := Face{FirstEdge: 0, EdgeCount: 4}

	verts, err := lv.FaceVertices(f)
	if err != nil {
		t.Fatalf("FaceVertices: %v", err)
	}
	want := []Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	if len(verts) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(verts), len(want))
	}
	for i, v := range verts {
		if v != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestFaceVerticesNegativeSurfedgeReversesEdge(t *testing.T) {
	// Edge 1's vertex pair is {1, 0}; a surfedge of -1 walks it reversed,
	// i.e. vertex[1] == 0 first, which FaceVertices resolves to Vertices[0].
	lv := &Level{
		Vertices:  []Vec3{{X: 0}, {X: 1}},
		Edges:     []Edge{{Vertex: [2]uint16{0, 1}}, {Vertex: [2]uint16{1, 0}}},
		SurfEdges: []SurfEdge{{Edge: -1}},
	}
	f := Face{FirstEdge: 0, EdgeCount: 1}

	verts, err := lv.FaceVertices(f)
	if err != nil {
		t.Fatalf("FaceVertices: %v", err)
	}
	if len(verts) != 1 || verts[0] != (Vec3{X: 0}) {
		t.Fatalf("got %v, want vertex 0 from the reversed walk of edge 1", verts)
	}
}

func TestFaceVerticesOutOfBounds(t *testing.T) {
	lv := &Level{SurfEdges: make([]SurfEdge, 2)}
	f := Face{FirstEdge: 0, EdgeCount: 5}
	if _, err := lv.FaceVertices(f); err == nil {
		t.Fatal("expected out-of-bounds error")
	}
}

func TestModelFacesBounds(t *testing.T) {
	lv := &Level{Faces: make([]Face, 3)}
	if _, err := lv.ModelFaces(Model{FirstFace: 0, FaceCount: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := lv.ModelFaces(Model{FirstFace: 1, FaceCount: 3}); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestTextureNameResolvesThroughTexInfo(t *testing.T) {
	lv := &Level{
		TexInfos:     []TexInfo{{MipTexture: 2}},
		textureNames: []string{"A", "B", "WALL01"},
	}
	name, err := lv.TextureName(0)
	if err != nil {
		t.Fatalf("TextureName: %v", err)
	}
	if name != "WALL01" {
		t.Fatalf("got %q, want WALL01", name)
	}
}

func TestTextureIDUnknownNameMapsToZero(t *testing.T) {
	lv := &Level{textureNames: []string{"A", "B", "WALL01"}}
	if id := lv.TextureID("WALL01"); id != 2 {
		t.Errorf("TextureID(WALL01) = %d, want 2", id)
	}
	if id := lv.TextureID("missing"); id != 0 {
		t.Errorf("TextureID(missing) = %d, want the 0 fallback", id)
	}
}

func TestUnresolvedTextureNamesDedupesAndSkipsResolved(t *testing.T) {
	lv := &Level{
		textureNames: []string{"A", "B", "A", "", "C"},
		textures:     map[string]*miptex.Texture{"C": {Name: "C"}},
	}
	names := lv.UnresolvedTextureNames()
	if len(names) != 2 {
		t.Fatalf("got %d names, want 2 (deduped, empty and resolved skipped): %v", len(names), names)
	}
}

func TestBoundsCheckRejectsNegativeAndOverrun(t *testing.T) {
	data := make([]byte, 10)
	if err := boundsCheck(data, lump{Offset: -1, Length: 1}); err == nil {
		t.Fatal("expected error for negative offset")
	}
	if err := boundsCheck(data, lump{Offset: 5, Length: 10}); err == nil {
		t.Fatal("expected error for overrun")
	}
	if err := boundsCheck(data, lump{Offset: 0, Length: 10}); err != nil {
		t.Fatalf("unexpected error for exact fit: %v", err)
	}
}
