package hl1

import (
	"github.com/rednicstone/voxlife/internal/bsp"
	"github.com/rednicstone/voxlife/internal/core"
)

// LevelEntities groups every entity ConstructEntity understands, bucketed
// by kind, plus the unconsumed monster placements the level writer turns
// into Teardown NPC spawns.
type LevelEntities struct {
	Lights            []PointLight
	PlayerStarts      []PlayerStart
	LevelChanges      []LevelChange
	Landmarks         []Landmark
	Worldspawn        *WorldInfo
	LightEnvironment  *EnvironmentLight
	MonsterScientists []PlayerStart
	MonsterBarneys    []PlayerStart
	MonsterGmen       []PlayerStart
}

// ReadLevel tokenizes lv's entity lump and assembles every entity this
// package knows how to interpret. Unknown classnames and malformed
// parameters are logged and skipped rather than treated as fatal, per the
// level driver's log-and-continue error policy.
func ReadLevel(lv *bsp.Level) (*LevelEntities, error) {
	raw, err := lv.GetEntities()
	if err != nil {
		return nil, err
	}

	result := &LevelEntities{}

	for _, e := range raw {
		classname, ok := e.Pairs[parameterNames[ParamClassname]]
		if !ok {
			core.LogWarn("hl1: entity has no classname")
			continue
		}

		cls, ok := classnameTypeByName[classname]
		if !ok {
			core.LogWarn("hl1: unknown entity type %q (not among %d known classnames)", classname, len(knownClassnames))
			continue
		}

		switch cls {
		case MonsterScientist, MonsterBarney, MonsterGman:
			ps, ok := monsterPlacement(e)
			if !ok {
				continue
			}
			switch cls {
			case MonsterScientist:
				result.MonsterScientists = append(result.MonsterScientists, ps)
			case MonsterBarney:
				result.MonsterBarneys = append(result.MonsterBarneys, ps)
			case MonsterGman:
				result.MonsterGmen = append(result.MonsterGmen, ps)
			}
			continue
		}

		entity := ConstructEntity(e, cls)
		switch {
		case entity.Light != nil:
			result.Lights = append(result.Lights, *entity.Light)
		case entity.InfoPlayerStart != nil:
			result.PlayerStarts = append(result.PlayerStarts, *entity.InfoPlayerStart)
		case entity.TriggerChangelevel != nil:
			result.LevelChanges = append(result.LevelChanges, *entity.TriggerChangelevel)
		case entity.InfoLandmark != nil:
			result.Landmarks = append(result.Landmarks, *entity.InfoLandmark)
		case entity.Worldspawn != nil:
			result.Worldspawn = entity.Worldspawn
		case entity.LightEnvironment != nil:
			result.LightEnvironment = entity.LightEnvironment
		}
	}

	if result.Worldspawn == nil {
		return nil, core.ErrMissingWorldspawn
	}
	if len(result.PlayerStarts) == 0 {
		return nil, core.ErrMissingPlayerStart
	}

	return result, nil
}

// monsterPlacement reads just the origin/angle an NPC spawn needs; these
// classnames carry many AI-only keys (monsterclip flags, squad names) that
// have no Teardown equivalent and are ignored.
func monsterPlacement(e bsp.RawEntity) (PlayerStart, bool) {
	return constructInfoPlayerStart(e)
}
