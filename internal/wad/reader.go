// Package wad reads GoldSrc WAD3 texture archives.
package wad

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/rednicstone/voxlife/internal/core"
	"github.com/rednicstone/voxlife/internal/miptex"
)

// Archive is an opened, fully-read WAD3 file. It owns the raw byte buffer;
// all lookups return views into it.
type Archive struct {
	path    string
	data    []byte
	entries map[string]Entry // keyed by lower-cased, trimmed entry name
}

// Open reads and indexes a WAD3 archive. The whole file is read into
// memory once and treated as a read-only arena; all lookups return views
// into it.
func Open(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wad: could not open %q: %w", path, err)
	}

	if len(data) < 12 {
		return nil, fmt.Errorf("%w: %q is too small", core.ErrWADMagicMismatch, path)
	}
	if !bytes.Equal(data[0:4], []byte(MagicValue)) {
		return nil, fmt.Errorf("%w: %q", core.ErrWADMagicMismatch, path)
	}

	entryCount := binary.LittleEndian.Uint32(data[4:8])
	entryOffset := binary.LittleEndian.Uint32(data[8:12])

	a := &Archive{
		path:    path,
		data:    data,
		entries: make(map[string]Entry, entryCount),
	}

	for i := uint32(0); i < entryCount; i++ {
		base := int(entryOffset) + int(i)*EntrySize
		if base+EntrySize > len(data) {
			return nil, fmt.Errorf("%w: %q entry %d directory out of bounds", core.ErrLumpBounds, path, i)
		}
		rec := data[base : base+EntrySize]

		var e Entry
		e.Offset = binary.LittleEndian.Uint32(rec[0:4])
		e.DiskSize = binary.LittleEndian.Uint32(rec[4:8])
		e.Size = binary.LittleEndian.Uint32(rec[8:12])
		e.Type = rec[12]
		e.Compressed = rec[13]
		copy(e.Name[:], rec[16:32])

		if e.Compressed != 0 {
			return nil, fmt.Errorf("%w: entry %q in %q", core.ErrCompressedEntry, entryName(e.Name), path)
		}

		a.entries[normalize(entryName(e.Name))] = e
	}

	return a, nil
}

func entryName(raw [16]byte) string {
	n := bytes.IndexByte(raw[:], 0)
	if n < 0 {
		n = len(raw)
	}
	return string(raw[:n])
}

func normalize(name string) string {
	return strings.ToLower(name)
}

// Get returns the raw bytes of the named entry, or false if no entry with
// that name (case-insensitively) exists.
func (a *Archive) Get(name string) ([]byte, bool) {
	e, ok := a.entries[normalize(name)]
	if !ok {
		return nil, false
	}
	if int(e.Offset)+int(e.Size) > len(a.data) {
		return nil, false
	}
	return a.data[e.Offset : e.Offset+e.Size], true
}

// GetTexture resolves and decodes a mip-texture entry by name. WAD3 texture
// entries share the exact mip_texture record layout used inline in a BSP's
// texture lump: a 16-byte name, width, height, then four mip offsets,
// followed by the mip bodies and embedded palette.
func (a *Archive) GetTexture(name string) (*miptex.Texture, error) {
	body, ok := a.Get(name)
	if !ok {
		return nil, fmt.Errorf("wad: entry %q not found", name)
	}
	if len(body) < 16+4+4+4*4 {
		return nil, fmt.Errorf("wad: entry %q too small for mip texture header", name)
	}

	recordName := entryName([16]byte(body[0:16]))
	width := binary.LittleEndian.Uint32(body[16:20])
	height := binary.LittleEndian.Uint32(body[20:24])

	var offsets [miptex.MipLevels]uint32
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint32(body[24+i*4 : 28+i*4])
	}

	return miptex.Decode(recordName, body, width, height, offsets)
}

// Path returns the filesystem path this archive was opened from.
func (a *Archive) Path() string {
	return a.path
}
