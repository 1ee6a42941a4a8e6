package core

import "errors"

// Sentinel errors for conditions the level driver must distinguish by
// identity rather than by message text.
var (
	ErrBSPVersionMismatch = errors.New("bsp: unsupported version")
	ErrLumpBounds         = errors.New("bsp: lump table inconsistent with file size")
	ErrWADMagicMismatch   = errors.New("wad: invalid magic value")
	ErrCompressedEntry    = errors.New("wad: compressed entries are not supported")
	ErrMissingWorldspawn  = errors.New("hl1: level has no worldspawn entity")
	ErrMissingPlayerStart = errors.New("hl1: level has no info_player_start entity")
)
