// Package miptex decodes GoldSrc paletted mip-texture bodies. The format is
// identical whether the body lives inline in a BSP's texture lump or inside
// a WAD3 entry, so both internal/bsp and internal/wad share this decoder.
package miptex

import "fmt"

const (
	NameMaxLength = 16
	MipLevels     = 4
)

// Texture is a decoded mip-level-0 image: width*height 24-bit RGB pixels.
type Texture struct {
	Name   string
	Width  uint32
	Height uint32
	Pixels []byte // len == Width*Height*3
}

// HasExternalBody reports whether the bitwise AND of the four mip offsets
// is zero, meaning the texture body is absent and must be resolved
// externally (from a WAD) by name.
func HasExternalBody(offsets [MipLevels]uint32) bool {
	return (offsets[0] & offsets[1] & offsets[2] & offsets[3]) == 0
}

// IsSky reports whether name is a sky texture by exact (case-sensitive)
// match.
func IsSky(name string) bool {
	return name == "SKY" || name == "sky"
}

// Decode expands the mip-level-0 indices of a mip-texture record into RGB
// pixels. body is the record's bytes starting at its own base (so offsets
// are relative to body[0]); width/height/offsets come from the record
// header (see bsp.MipTexture / wad entries of the same shape).
func Decode(name string, body []byte, width, height uint32, offsets [MipLevels]uint32) (*Texture, error) {
	texelCount := uint64(width) * uint64(height)

	paletteBase := uint64(offsets[3]) + texelCount/64 + 2
	if paletteBase+768 > uint64(len(body)) {
		return nil, fmt.Errorf("miptex %q: palette base %d out of bounds (body len %d)", name, paletteBase, len(body))
	}

	mip0Base := uint64(offsets[0])
	if mip0Base+texelCount > paletteBase {
		return nil, fmt.Errorf("miptex %q: mip0 data overlaps palette", name)
	}

	palette := body[paletteBase : paletteBase+768]
	indices := body[mip0Base : mip0Base+texelCount]

	pixels := make([]byte, texelCount*3)
	for i, idx := range indices {
		p := palette[int(idx)*3 : int(idx)*3+3]
		pixels[i*3+0] = p[0]
		pixels[i*3+1] = p[1]
		pixels[i*3+2] = p[2]
	}

	return &Texture{
		Name:   name,
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}
