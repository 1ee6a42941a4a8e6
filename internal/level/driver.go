package level

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rednicstone/voxlife/internal/bsp"
	"github.com/rednicstone/voxlife/internal/core"
	"github.com/rednicstone/voxlife/internal/hl1"
	"github.com/rednicstone/voxlife/internal/miptex"
	"github.com/rednicstone/voxlife/internal/voxel"
)

// worldModel is the BSP sub-model index that holds the level's static
// geometry; every other model index is a brush entity (doors, triggers,
// ...) referenced by its own "*N" model key.
const worldModel = 0

// levelFloor is where the world AABB's minimum Y is placed.
const levelFloor = 12.8 // meters (128 decimeters)

// npcPrefabs maps the monster classnames voxlife models as NPCs to their
// Teardown character prefab path.
var npcPrefabs = map[string]string{
	"monster_scientist": "MOD/characters/monster_scientist.xml",
	"monster_barney":    "MOD/characters/monster_barney.xml",
	"monster_gman":      "MOD/characters/monster_gman.xml",
}

// Load reads one level's BSP, resolves its WAD textures, voxelizes every
// non-sky world-model face, and assembles the entity-derived scene data.
// With groupFaces set, runs of same-textured faces are fused into shared
// voxel volumes instead of one model per face.
// Per-WAD and per-face failures are logged and skipped rather than
// treated as fatal; only a handful of structural failures
// (unreadable BSP, missing worldspawn/player start, no world model or an
// out-of-range world face range) abort the whole level. A world model
// with zero faces is not an error.
func Load(gamePath, name string, groupFaces bool) (*Info, error) {
	clock := core.NewClock()
	clock.Start()
	metrics := core.NewLevelMetrics()
	defer func() {
		clock.Stop()
		metrics.Summary(name, clock.Elapsed())
	}()

	bspPath := filepath.Join(gamePath, "valve", "maps", name+".bsp")
	lv, err := bsp.Open(bspPath)
	if err != nil {
		return nil, err
	}

	entities, err := hl1.ReadLevel(lv)
	if err != nil {
		return nil, err
	}

	resolveTextures(lv, gamePath, entities.Worldspawn.Wad, metrics)

	if int(worldModel) >= len(lv.Models) {
		return nil, fmt.Errorf("level %s: bsp has no world model", name)
	}
	model := lv.Models[worldModel]

	faces, err := lv.ModelFaces(model)
	if err != nil {
		return nil, err
	}

	info := &Info{Name: name}

	var grouper *voxel.Grouper
	if groupFaces {
		grouper = voxel.NewGrouper()
	}

	hadSky := false
	for i, f := range faces {
		texName, err := lv.TextureName(f.TexInfo)
		if err != nil {
			core.LogWarn("level %s: face %d: %v", name, i, err)
			continue
		}
		if miptex.IsSky(texName) {
			hadSky = true
			continue
		}
		if !lv.HasTexture(texName) {
			core.LogWarn("level %s: face %d references missing texture %q", name, i, texName)
			metrics.IncFacesSkipped()
			continue
		}
		if int(f.Plane) >= len(lv.Planes) {
			core.LogWarn("level %s: face %d references out-of-range plane %d", name, i, f.Plane)
			metrics.IncFacesSkipped()
			continue
		}

		verts, err := lv.FaceVertices(f)
		if err != nil {
			core.LogWarn("level %s: face %d: %v", name, i, err)
			metrics.IncFacesSkipped()
			continue
		}

		planeType := lv.Planes[f.Plane].Type
		texInfo := lv.TexInfos[f.TexInfo]
		tex := lv.GetTextureData(texName)
		material := materialForTexture(texName)

		if grouper != nil {
			if err := grouper.Add(verts, planeType, texInfo, tex, material, i); err != nil {
				core.LogWarn("level %s: face %d: %v", name, i, err)
				metrics.IncFacesSkipped()
				continue
			}
			metrics.IncFacesVoxelized()
			continue
		}

		vm, err := voxel.VoxelizeFace(verts, planeType, texInfo, tex, material, i)
		if err != nil {
			core.LogWarn("level %s: face %d: %v", name, i, err)
			metrics.IncFacesSkipped()
			continue
		}
		info.Models = append(info.Models, vm)
		metrics.IncFacesVoxelized()
	}
	if grouper != nil {
		models, errs := grouper.Finish()
		for _, err := range errs {
			core.LogWarn("level %s: %v", name, err)
			metrics.IncFacesSkipped()
		}
		info.Models = models
	}
	metrics.IncModelsWritten(len(info.Models))

	info.Environment = EnvironmentFromWorldspawn(entities.Worldspawn.Skyname, entities.LightEnvironment, hadSky)

	worldMin, worldMax := modelBounds(model)
	center := Vec3Mid(worldMin, worldMax)
	info.LevelPos = [3]float32{
		-center.X,
		levelFloor - worldMin.Y,
		-center.Z,
	}

	for _, l := range entities.Lights {
		info.Lights = append(info.Lights, Light{
			Pos:       toMeters(l.Origin),
			Color:     l.Color,
			Intensity: l.Intensity,
		})
		metrics.IncEntitiesParsed()
	}

	for _, lm := range entities.Landmarks {
		info.Locations = append(info.Locations, Location{
			Name: lm.Targetname,
			Pos:  toMeters(lm.Origin),
		})
		metrics.IncEntitiesParsed()
	}

	for _, ps := range entities.MonsterScientists {
		info.NPCs = append(info.NPCs, npcFromPlacement(ps, "monster_scientist"))
		metrics.IncEntitiesParsed()
	}
	for _, ps := range entities.MonsterBarneys {
		info.NPCs = append(info.NPCs, npcFromPlacement(ps, "monster_barney"))
		metrics.IncEntitiesParsed()
	}
	for _, ps := range entities.MonsterGmen {
		info.NPCs = append(info.NPCs, npcFromPlacement(ps, "monster_gman"))
		metrics.IncEntitiesParsed()
	}

	for _, lc := range entities.LevelChanges {
		idx, ok := modelIndex(lc.Model)
		if !ok || idx >= len(lv.Models) {
			core.LogWarn("level %s: trigger_changelevel references unknown model %q", name, lc.Model)
			metrics.IncEntitiesDiscarded()
			continue
		}
		tMin, tMax := modelBounds(lv.Models[idx])
		size := Vec3{X: tMax.X - tMin.X, Y: tMax.Y - tMin.Y, Z: tMax.Z - tMin.Z}
		info.Triggers = append(info.Triggers, Trigger{
			Map:      lc.Map,
			Landmark: lc.Landmark,
			Pos:      [3]float32{tMin.X + size.X*0.5, tMin.Y, tMin.Z + size.Z*0.5},
			Size:     [3]float32{size.X, size.Y, size.Z},
		})
		metrics.IncEntitiesParsed()
	}

	if len(entities.PlayerStarts) > 0 {
		ps := entities.PlayerStarts[0]
		info.SpawnPos = toMeters(ps.Origin)
		info.SpawnRot = [3]float32{0, ps.Angle + 90, 0}
	}

	return info, nil
}

// materialForTexture classifies a brush texture into a Teardown material
// class. There is no texture-name → material table for GoldSrc textures
// yet, so every brush face voxelizes as WeakMetal.
func materialForTexture(string) voxel.Material {
	return voxel.WeakMetal
}

func npcFromPlacement(ps hl1.PlayerStart, classname string) NPC {
	return NPC{
		Pos:      toMeters(ps.Origin),
		Rot:      [3]float32{0, ps.Angle + 90, 0},
		PathName: npcPrefabs[classname],
	}
}

// modelIndex parses a trigger_changelevel's "*N" model reference.
func modelIndex(ref string) (int, bool) {
	ref = strings.TrimPrefix(ref, "*")
	n, err := strconv.Atoi(ref)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Vec3 is a plain float triple, used for bounds arithmetic on AABBs that
// modelBounds has already converted to world-space meters.
type Vec3 = voxel.Vec3

// Vec3Mid returns the midpoint of a and b.
func Vec3Mid(a, b Vec3) Vec3 {
	return Vec3{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, Z: (a.Z + b.Z) / 2}
}

// modelBounds converts a BSP sub-model's Hammer-space AABB corners into
// Teardown world-space meters, re-deriving the min/max afterward since
// ConvertCoordinates' axis swap and Z negation can reorder which corner is
// the minimum.
func modelBounds(m bsp.Model) (min, max Vec3) {
	corners := [8]bsp.Vec3{
		{X: m.Min.X, Y: m.Min.Y, Z: m.Min.Z},
		{X: m.Max.X, Y: m.Min.Y, Z: m.Min.Z},
		{X: m.Min.X, Y: m.Max.Y, Z: m.Min.Z},
		{X: m.Max.X, Y: m.Max.Y, Z: m.Min.Z},
		{X: m.Min.X, Y: m.Min.Y, Z: m.Max.Z},
		{X: m.Max.X, Y: m.Min.Y, Z: m.Max.Z},
		{X: m.Min.X, Y: m.Max.Y, Z: m.Max.Z},
		{X: m.Max.X, Y: m.Max.Y, Z: m.Max.Z},
	}

	const maxF = 3.402823466e+38
	min = Vec3{X: maxF, Y: maxF, Z: maxF}
	max = Vec3{X: -maxF, Y: -maxF, Z: -maxF}
	for _, c := range corners {
		w := voxel.WorldPosition(voxel.ConvertCoordinates(c))
		min.X, max.X = fminLevel(min.X, w.X), fmaxLevel(max.X, w.X)
		min.Y, max.Y = fminLevel(min.Y, w.Y), fmaxLevel(max.Y, w.Y)
		min.Z, max.Z = fminLevel(min.Z, w.Z), fmaxLevel(max.Z, w.Z)
	}
	return min, max
}

func fminLevel(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmaxLevel(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// toMeters converts an entity's integer Hammer-space origin into Teardown
// world-space meters.
func toMeters(origin [3]int) [3]float32 {
	v := bsp.Vec3{X: float32(origin[0]), Y: float32(origin[1]), Z: float32(origin[2])}
	w := voxel.WorldPosition(voxel.ConvertCoordinates(v))
	return [3]float32{w.X, w.Y, w.Z}
}
