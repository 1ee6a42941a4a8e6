package wad

// Header is the 12-byte WAD3 archive header.
type Header struct {
	Magic       [4]byte
	EntryCount  uint32
	EntryOffset uint32
}

const MagicValue = "WAD3"

// Entry is a single 32-byte WAD3 directory record.
type Entry struct {
	Offset     uint32
	DiskSize   uint32
	Size       uint32
	Type       uint8
	Compressed uint8
	_          uint16 // padding
	Name       [16]byte
}

const EntrySize = 32
