// Command voxlife converts Half-Life (GoldSrc) BSP levels into Teardown
// voxel scenes: one MagicaVoxel .vox per brush face (or per fused face
// group) plus one prefab XML per level.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rednicstone/voxlife/internal/config"
	"github.com/rednicstone/voxlife/internal/core"
	"github.com/rednicstone/voxlife/internal/level"
	"github.com/rednicstone/voxlife/internal/scene"
	"github.com/rednicstone/voxlife/internal/voxel"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: voxlife <game_path> <level...|all>")
		os.Exit(2)
	}

	gamePath := os.Args[1]
	levelNames := os.Args[2:]
	if len(levelNames) == 1 && levelNames[0] == "all" {
		levelNames = level.AllLevels
	}

	cfg, err := config.Load("voxlife.toml")
	if err != nil {
		core.LogWarn("main: could not load voxlife.toml: %v", err)
	}

	exitCode := 0
	for _, name := range levelNames {
		if err := convertLevel(gamePath, name, cfg); err != nil {
			core.LogError("main: level %s failed: %v", name, err)
			exitCode = 1
			continue
		}
		core.LogInfo("main: level %s converted", name)
	}

	os.Exit(exitCode)
}

// convertLevel reads one level, generates its shared palette, writes every
// face's .vox model, and writes the level's scene XML. Per-face write
// failures are logged and skipped (mirroring the per-face voxelization
// policy); only a failure to read the level or write the scene XML itself
// aborts the level.
func convertLevel(gamePath, name string, cfg config.Config) error {
	info, err := level.Load(gamePath, name, cfg.GroupFaces)
	if err != nil {
		return fmt.Errorf("reading level: %w", err)
	}

	pal := voxel.GeneratePalette(info.Models, cfg.PaletteSeed, cfg.PaletteIterations, cfg.PaletteWorkers)

	brushDir := filepath.Join(cfg.BrushDir, name)
	if err := os.MkdirAll(brushDir, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", brushDir, err)
	}
	for _, model := range info.Models {
		voxPath := filepath.Join(brushDir, fmt.Sprintf("%d.vox", model.ID))
		if err := voxel.WriteVoxFile(voxPath, model, pal); err != nil {
			core.LogWarn("main: level %s: writing %q: %v", name, voxPath, err)
		}
	}

	if err := scene.WriteLevel(cfg.LevelsDir, info); err != nil {
		return fmt.Errorf("writing scene: %w", err)
	}
	return nil
}
