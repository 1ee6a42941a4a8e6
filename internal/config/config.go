// Package config loads optional CLI defaults from a voxlife.toml file.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the converter's tunable settings. The command line takes no
// flags, so these values come only from Default() and the optional config
// file. A missing config file is not an error; Load returns Default() in
// that case.
type Config struct {
	// BrushDir is the output directory for per-group .vox files, joined
	// with the level name (brush/<level>/<id>.vox).
	BrushDir string `toml:"brush_dir"`
	// LevelsDir is the output directory for per-level scene XML files.
	LevelsDir string `toml:"levels_dir"`
	// PaletteSeed seeds the k-means RNG for reproducible palette output.
	PaletteSeed int64 `toml:"palette_seed"`
	// PaletteIterations caps k-means iterations per material class.
	PaletteIterations int `toml:"palette_iterations"`
	// PaletteWorkers bounds how many material classes are clustered
	// concurrently; 0 means "one goroutine per non-empty class".
	PaletteWorkers int `toml:"palette_workers"`
	// GroupFaces fuses runs of same-textured faces into shared voxel
	// volumes instead of emitting one model per face, producing far fewer
	// (but larger) .vox files per level.
	GroupFaces bool `toml:"group_faces"`
}

func Default() Config {
	return Config{
		BrushDir:          "brush",
		LevelsDir:         "levels",
		PaletteSeed:       1,
		PaletteIterations: 100,
		PaletteWorkers:    0,
		GroupFaces:        false,
	}
}

// Load reads a voxlife.toml at path, overlaying it onto Default(). If path
// does not exist, Default() is returned unmodified.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
