package level

import (
	"path/filepath"
	"strings"

	"github.com/rednicstone/voxlife/internal/bsp"
	"github.com/rednicstone/voxlife/internal/core"
	"github.com/rednicstone/voxlife/internal/wad"
)

// wadPaths splits a worldspawn "wad" field (semicolon-separated, backslash
// path separators) into filesystem paths under gamePath. Each segment has
// its separators normalized, then its first two path components dropped:
// retail levels bake the absolute Windows install path
// ("\sierra\half-life") into the wad list, and only the trailing
// "<moddir>/<file>.wad" portion is meaningful here.
func wadPaths(gamePath, wadField string) []string {
	var paths []string
	for _, segment := range strings.Split(wadField, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, `\`, "/")
		segment = strings.TrimPrefix(segment, "/")

		parts := strings.Split(segment, "/")
		if len(parts) > 2 {
			parts = parts[2:]
		} else {
			// A segment of two or fewer components has nothing left once
			// the install prefix is stripped; canonicalizing it would
			// yield the bare game directory, which can never open as a
			// WAD, so drop it here rather than fail at open time.
			continue
		}

		paths = append(paths, filepath.Join(append([]string{gamePath}, parts...)...))
	}
	return paths
}

// resolveTextures opens every WAD named in worldspawn's "wad" field and
// decodes a body for each BSP texture that had none embedded. A WAD that
// fails to open, or a texture name no opened WAD carries, is logged and
// skipped — the face referencing it stays without a resolved texture,
// which the caller's per-face HasTexture check turns into a skipped face
// rather than a fatal error.
func resolveTextures(lv *bsp.Level, gamePath, wadField string, metrics *core.LevelMetrics) {
	var archives []*wad.Archive
	for _, path := range wadPaths(gamePath, wadField) {
		a, err := wad.Open(path)
		if err != nil {
			core.LogWarn("level: could not open wad %q: %v", path, err)
			continue
		}
		archives = append(archives, a)
	}

	for _, name := range lv.UnresolvedTextureNames() {
		var resolved bool
		for _, a := range archives {
			tex, err := a.GetTexture(name)
			if err != nil {
				continue
			}
			lv.ResolveExternalTexture(name, tex)
			resolved = true
			break
		}
		if resolved {
			metrics.IncTexturesResolved()
		} else {
			core.LogWarn("level: could not find texture %q in any wad", name)
			metrics.IncTexturesMissing()
		}
	}
}
