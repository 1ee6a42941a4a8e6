package bsp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/rednicstone/voxlife/internal/core"
	"github.com/rednicstone/voxlife/internal/miptex"
)

// Level is a fully loaded BSP file: the typed lump arrays plus the derived
// views (reconstructed face vertex loops, texture cache) that the rest of
// the pipeline consumes. It owns the raw file bytes for the lifetime of the
// conversion; every typed view borrows from that read-only arena.
type Level struct {
	data []byte

	Planes       []Plane
	Vertices     []Vec3
	Nodes        []Node
	TexInfos     []TexInfo
	Faces        []Face
	ClipNodes    []ClipNode
	Leafs        []Leaf
	MarkSurfaces []MarkSurface
	Edges        []Edge
	SurfEdges    []SurfEdge
	Models       []Model

	entityText []byte
	lighting   []LightTexel

	textureNames []string
	textures     map[string]*miptex.Texture
	// firstLoadedTexture is the fallback used by GetTextureData when a
	// lookup misses.
	firstLoadedTexture *miptex.Texture
}

// Open reads an entire BSP v30 file and decodes every lump into typed
// slices. Per-face geometry is left as indices; use Level.FaceVertices to
// walk the surfedge chain for a given face.
func Open(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bsp: could not open %q: %w", path, err)
	}
	return decode(data)
}

func decode(data []byte) (*Level, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: file too small for header", core.ErrLumpBounds)
	}

	var hdr header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("bsp: reading header: %w", err)
	}
	if hdr.Version != Version {
		return nil, fmt.Errorf("%w: got %d, want %d", core.ErrBSPVersionMismatch, hdr.Version, Version)
	}

	lv := &Level{data: data, textures: make(map[string]*miptex.Texture)}

	if err := readLump(data, hdr.Lumps[LumpPlanes], planeSize, &lv.Planes); err != nil {
		return nil, err
	}
	if err := readLump(data, hdr.Lumps[LumpVertices], 12, &lv.Vertices); err != nil {
		return nil, err
	}
	if err := readLump(data, hdr.Lumps[LumpNodes], nodeSize, &lv.Nodes); err != nil {
		return nil, err
	}
	if err := readLump(data, hdr.Lumps[LumpTexInfo], texInfoSize, &lv.TexInfos); err != nil {
		return nil, err
	}
	if err := readLump(data, hdr.Lumps[LumpFaces], faceSize, &lv.Faces); err != nil {
		return nil, err
	}
	if err := readLump(data, hdr.Lumps[LumpClipNodes], clipNodeSize, &lv.ClipNodes); err != nil {
		return nil, err
	}
	if err := readLump(data, hdr.Lumps[LumpLeafs], leafSize, &lv.Leafs); err != nil {
		return nil, err
	}
	if err := readLump(data, hdr.Lumps[LumpMarkSurfaces], markSurfaceSize, &lv.MarkSurfaces); err != nil {
		return nil, err
	}
	if err := readLump(data, hdr.Lumps[LumpEdges], edgeSize, &lv.Edges); err != nil {
		return nil, err
	}
	if err := readLump(data, hdr.Lumps[LumpSurfEdges], surfEdgeSize, &lv.SurfEdges); err != nil {
		return nil, err
	}
	if err := readLump(data, hdr.Lumps[LumpModels], modelSize, &lv.Models); err != nil {
		return nil, err
	}

	entLump := hdr.Lumps[LumpEntities]
	if err := boundsCheck(data, entLump); err != nil {
		return nil, err
	}
	lv.entityText = data[entLump.Offset : entLump.Offset+entLump.Length]

	lightLump := hdr.Lumps[LumpLighting]
	if err := readLump(data, lightLump, 3, &lv.lighting); err != nil {
		return nil, err
	}

	if err := lv.loadTextures(hdr.Lumps[LumpTextures]); err != nil {
		return nil, err
	}

	return lv, nil
}

func boundsCheck(data []byte, l lump) error {
	if l.Offset < 0 || l.Length < 0 || int64(l.Offset)+int64(l.Length) > int64(len(data)) {
		return fmt.Errorf("%w: offset %d length %d file size %d", core.ErrLumpBounds, l.Offset, l.Length, len(data))
	}
	return nil
}

// readLump decodes a lump into dst, a pointer to a slice of a fixed-size
// element type. elemSize must match binary.Size of that element exactly.
func readLump[T any](data []byte, l lump, elemSize int, dst *[]T) error {
	if err := boundsCheck(data, l); err != nil {
		return err
	}
	if elemSize <= 0 || int(l.Length)%elemSize != 0 {
		return fmt.Errorf("%w: lump length %d not a multiple of element size %d", core.ErrLumpBounds, l.Length, elemSize)
	}
	count := int(l.Length) / elemSize
	out := make([]T, count)
	r := bytes.NewReader(data[l.Offset : l.Offset+l.Length])
	if err := binary.Read(r, binary.LittleEndian, out); err != nil {
		return fmt.Errorf("bsp: decoding lump: %w", err)
	}
	*dst = out
	return nil
}

// EntityText returns the raw, NUL-terminated entity definition block.
func (lv *Level) EntityText() []byte {
	return lv.entityText
}

// FaceVertices walks a face's surfedge chain and returns its loop of world
// positions in winding order. A positive surfedge walks edge.Vertex[0..1]
// forward; a negative one walks it reversed.
func (lv *Level) FaceVertices(f Face) ([]Vec3, error) {
	if int(f.FirstEdge)+int(f.EdgeCount) > len(lv.SurfEdges) {
		return nil, fmt.Errorf("%w: face surfedge range out of bounds", core.ErrLumpBounds)
	}

	verts := make([]Vec3, 0, f.EdgeCount)
	for i := 0; i < int(f.EdgeCount); i++ {
		se := lv.SurfEdges[int(f.FirstEdge)+i].Edge
		edgeIndex := se
		if edgeIndex < 0 {
			edgeIndex = -edgeIndex
		}
		if int(edgeIndex) >= len(lv.Edges) {
			return nil, fmt.Errorf("%w: surfedge references out-of-range edge", core.ErrLumpBounds)
		}
		edge := lv.Edges[edgeIndex]

		var vi uint16
		if se >= 0 {
			vi = edge.Vertex[0]
		} else {
			vi = edge.Vertex[1]
		}
		if int(vi) >= len(lv.Vertices) {
			return nil, fmt.Errorf("%w: edge references out-of-range vertex", core.ErrLumpBounds)
		}
		verts = append(verts, lv.Vertices[vi])
	}
	return verts, nil
}

// FaceLighting returns the raw per-luxel lightmap samples for face f's
// first lightstyle, or nil if the face has none (LightOffset == -1).
func (lv *Level) FaceLighting(f Face, width, height int) []LightTexel {
	if f.LightOffset < 0 {
		return nil
	}
	start := int(f.LightOffset) / 3
	count := width * height
	if start+count > len(lv.lighting) {
		return nil
	}
	return lv.lighting[start : start+count]
}

func (lv *Level) loadTextures(l lump) error {
	if err := boundsCheck(lv.data, l); err != nil {
		return err
	}
	body := lv.data[l.Offset : l.Offset+l.Length]
	if len(body) < 4 {
		return nil
	}

	count := binary.LittleEndian.Uint32(body[0:4])
	lv.textureNames = make([]string, count)

	for i := uint32(0); i < count; i++ {
		offPos := 4 + int(i)*4
		if offPos+4 > len(body) {
			return fmt.Errorf("%w: texture directory out of bounds", core.ErrLumpBounds)
		}
		off := int32(binary.LittleEndian.Uint32(body[offPos : offPos+4]))
		if off < 0 {
			continue // no miptex stored for this slot
		}
		if int(off)+mipTextureSize > len(body) {
			return fmt.Errorf("%w: texture record %d out of bounds", core.ErrLumpBounds, i)
		}

		rec := body[off:]
		name := nullTerminated(rec[0:16])
		width := binary.LittleEndian.Uint32(rec[16:20])
		height := binary.LittleEndian.Uint32(rec[20:24])
		var offsets [4]uint32
		for j := range offsets {
			offsets[j] = binary.LittleEndian.Uint32(rec[24+j*4 : 28+j*4])
		}

		lv.textureNames[i] = name

		if miptex.HasExternalBody(offsets) {
			continue // resolved later from a WAD by name
		}

		tex, err := miptex.Decode(name, rec, width, height, offsets)
		if err != nil {
			core.LogWarn("bsp: skipping embedded texture %q: %v", name, err)
			continue
		}
		lv.textures[name] = tex
		if lv.firstLoadedTexture == nil {
			lv.firstLoadedTexture = tex
		}
	}

	return nil
}

func nullTerminated(b []byte) string {
	n := bytes.IndexByte(b, 0)
	if n < 0 {
		n = len(b)
	}
	return string(b[:n])
}

// TextureName returns the texture name referenced by a texinfo's
// MipTexture index.
func (lv *Level) TextureName(texInfoIndex uint16) (string, error) {
	if int(texInfoIndex) >= len(lv.TexInfos) {
		return "", fmt.Errorf("%w: texinfo index out of range", core.ErrLumpBounds)
	}
	mt := lv.TexInfos[texInfoIndex].MipTexture
	if int(mt) >= len(lv.textureNames) {
		return "", fmt.Errorf("%w: miptexture index out of range", core.ErrLumpBounds)
	}
	return lv.textureNames[mt], nil
}

// TextureID finds the texture-lump index for name with a linear scan of
// the directory. Unknown names map to 0, which by convention references
// the first loaded texture.
func (lv *Level) TextureID(name string) int {
	for i, n := range lv.textureNames {
		if n == name {
			return i
		}
	}
	return 0
}

// ResolveExternalTexture registers a texture decoded from a WAD archive for
// a name that had no embedded body. Called by the level driver once it has
// located the owning WAD.
func (lv *Level) ResolveExternalTexture(name string, tex *miptex.Texture) {
	lv.textures[name] = tex
	if lv.firstLoadedTexture == nil {
		lv.firstLoadedTexture = tex
	}
}

// GetTextureData returns the decoded texture for name. If name was never
// loaded (embedded or external), it falls back to the first texture that
// was successfully loaded anywhere in the level — callers that need to
// know whether the name actually resolved must check HasTexture first.
func (lv *Level) GetTextureData(name string) *miptex.Texture {
	if tex, ok := lv.textures[name]; ok {
		return tex
	}
	return lv.firstLoadedTexture
}

// HasTexture reports whether name resolved to a real (non-fallback) decoded
// texture.
func (lv *Level) HasTexture(name string) bool {
	_, ok := lv.textures[name]
	return ok
}

// UnresolvedTextureNames returns every distinct, non-empty texture name
// referenced by the level's texture directory that has no decoded body yet
// (an external texture whose embedded offsets were all zero). The level
// driver resolves these from WAD archives before voxelizing any face.
func (lv *Level) UnresolvedTextureNames() []string {
	seen := make(map[string]bool, len(lv.textureNames))
	var names []string
	for _, name := range lv.textureNames {
		if name == "" || lv.textures[name] != nil || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// ModelFaces returns the slice of faces belonging to model m.
func (lv *Level) ModelFaces(m Model) ([]Face, error) {
	if m.FirstFace < 0 || int(m.FirstFace)+int(m.FaceCount) > len(lv.Faces) {
		return nil, fmt.Errorf("%w: model face range out of bounds", core.ErrLumpBounds)
	}
	return lv.Faces[m.FirstFace : m.FirstFace+m.FaceCount], nil
}
