package hl1

import (
	"strconv"
	"strings"

	"github.com/rednicstone/voxlife/internal/bsp"
	"github.com/rednicstone/voxlife/internal/core"
)

// PointLight is a static light source placed in the world.
type PointLight struct {
	Origin    [3]int
	Color     [3]uint8
	Intensity uint32
	Fade      uint32
}

// PlayerStart is the player's spawn position and facing angle.
type PlayerStart struct {
	Origin [3]int
	Angle  float32
}

// LevelChange names a level transition volume.
type LevelChange struct {
	Map      string
	Landmark string
	Model    string
}

// Landmark is a named point used to align the destination level of a
// trigger_changelevel with the source level.
type Landmark struct {
	Targetname string
	Origin     [3]int
}

// WorldInfo carries level-wide metadata: the loading message, sky name,
// chapter title, and the semicolon-separated list of WADs the level's
// textures may be resolved from.
type WorldInfo struct {
	Message      string
	Skyname      string
	Chaptertitle string
	Wad          string
	Gametitle    bool
	Newunit      bool
}

// tagValuesFromSpaces splits value on spaces and parses one numeric field
// per destination pointer, left to right. The last field may run to the
// end of the string; every earlier one must be followed by a space.
func tagValuesFromSpaces(value string, dsts ...interface{}) bool {
	fields := strings.SplitN(value, " ", len(dsts))
	if len(fields) < len(dsts) {
		return false
	}
	for i, dst := range dsts {
		field := strings.TrimSpace(fields[i])
		switch d := dst.(type) {
		case *int:
			n, err := strconv.Atoi(field)
			if err != nil {
				return false
			}
			*d = n
		case *float32:
			n, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return false
			}
			*d = float32(n)
		case *uint8:
			n, err := strconv.ParseUint(field, 10, 8)
			if err != nil {
				return false
			}
			*d = uint8(n)
		case *uint32:
			n, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				return false
			}
			*d = uint32(n)
		default:
			return false
		}
	}
	return true
}

func constructLight(e bsp.RawEntity) (PointLight, bool) {
	result := PointLight{Intensity: 255, Fade: 1}
	valid := true

	for key, value := range e.Pairs {
		param, ok := parameterTypeByName[key]
		if !ok {
			core.LogWarn("hl1: unknown parameter %q (not among %d known parameters)", key, len(knownParameters))
			continue
		}

		ok = true
		switch param {
		case ParamOrigin:
			ok = tagValuesFromSpaces(value, &result.Origin[0], &result.Origin[1], &result.Origin[2])
		case ParamLight:
			ok = tagValuesFromSpaces(value, &result.Color[0], &result.Color[1], &result.Color[2], &result.Intensity)
			if !ok {
				ok = tagValuesFromSpaces(value, &result.Color[0], &result.Color[1], &result.Color[2])
			}
		case ParamStyle:
			if value != "0" && value != "32" && value != "33" {
				ok = false
			}
		case ParamFade:
			ok = tagValuesFromSpaces(value, &result.Fade)
		case ParamClassname:
		default:
			core.LogWarn("hl1: unparsed light parameter %q", key)
		}

		if !ok {
			core.LogWarn("hl1: failed to parse light parameter %q=%q", key, value)
			valid = false
			break
		}
	}

	return result, valid
}

func constructInfoPlayerStart(e bsp.RawEntity) (PlayerStart, bool) {
	result := PlayerStart{}
	valid := true

	for key, value := range e.Pairs {
		param, ok := parameterTypeByName[key]
		if !ok {
			core.LogWarn("hl1: unknown parameter %q (not among %d known parameters)", key, len(knownParameters))
			continue
		}

		ok = true
		switch param {
		case ParamOrigin:
			ok = tagValuesFromSpaces(value, &result.Origin[0], &result.Origin[1], &result.Origin[2])
		case ParamAngle:
			ok = tagValuesFromSpaces(value, &result.Angle)
		case ParamClassname:
		default:
			core.LogWarn("hl1: unparsed info_player_start parameter %q", key)
		}

		if !ok {
			core.LogWarn("hl1: failed to parse info_player_start parameter %q=%q", key, value)
			valid = false
			break
		}
	}

	return result, valid
}

func constructTriggerChangelevel(e bsp.RawEntity) LevelChange {
	result := LevelChange{}

	for key, value := range e.Pairs {
		param, ok := parameterTypeByName[key]
		if !ok {
			core.LogWarn("hl1: unknown parameter %q (not among %d known parameters)", key, len(knownParameters))
			continue
		}

		switch param {
		case ParamModel:
			result.Model = value
		case ParamLandmark:
			result.Landmark = value
		case ParamMap:
			result.Map = value
		case ParamClassname:
		default:
			core.LogWarn("hl1: unparsed trigger_changelevel parameter %q", key)
		}
	}

	return result
}

func constructWorldspawn(e bsp.RawEntity) WorldInfo {
	result := WorldInfo{}

	for key, value := range e.Pairs {
		param, ok := parameterTypeByName[key]
		if !ok {
			core.LogWarn("hl1: unknown parameter %q (not among %d known parameters)", key, len(knownParameters))
			continue
		}

		switch param {
		case ParamMessage:
			result.Message = value
		case ParamSkyname:
			result.Skyname = value
		case ParamChaptertitle:
			result.Chaptertitle = value
		case ParamWad:
			result.Wad = value
		case ParamGametitle:
			result.Gametitle = value != "0" && value != ""
		case ParamNewunit:
			result.Newunit = value != "0" && value != ""
		case ParamClassname:
		default:
			core.LogWarn("hl1: unparsed worldspawn parameter %q", key)
		}
	}

	return result
}

func constructInfoLandmark(e bsp.RawEntity) (Landmark, bool) {
	result := Landmark{}
	valid := true

	for key, value := range e.Pairs {
		param, ok := parameterTypeByName[key]
		if !ok {
			core.LogWarn("hl1: unknown parameter %q (not among %d known parameters)", key, len(knownParameters))
			continue
		}

		ok = true
		switch param {
		case ParamTargetname:
			result.Targetname = value
		case ParamOrigin:
			ok = tagValuesFromSpaces(value, &result.Origin[0], &result.Origin[1], &result.Origin[2])
		case ParamClassname:
		default:
			core.LogWarn("hl1: unparsed info_landmark parameter %q", key)
		}

		if !ok {
			core.LogWarn("hl1: failed to parse info_landmark parameter %q=%q", key, value)
			valid = false
			break
		}
	}

	return result, valid
}

// EnvironmentLight carries the worldspawn-wide sun parameters read from a
// single light_environment entity. Pitch and angle compose into a unit
// direction the same way a GoldSrc light_environment orients its sun: the
// direction is rotated by pitch about X, then by angle (yaw) about Y,
// starting from +Z.
type EnvironmentLight struct {
	Pitch     float32
	Angle     float32
	Color     [3]uint8
	Intensity uint32
}

func constructLightEnvironment(e bsp.RawEntity) (EnvironmentLight, bool) {
	result := EnvironmentLight{Intensity: 255}
	valid := true

	for key, value := range e.Pairs {
		param, ok := parameterTypeByName[key]
		if !ok {
			core.LogWarn("hl1: unknown parameter %q (not among %d known parameters)", key, len(knownParameters))
			continue
		}

		ok = true
		switch param {
		case ParamAngle:
			ok = tagValuesFromSpaces(value, &result.Angle)
		case ParamPitch:
			ok = tagValuesFromSpaces(value, &result.Pitch)
		case ParamLight:
			ok = tagValuesFromSpaces(value, &result.Color[0], &result.Color[1], &result.Color[2], &result.Intensity)
			if !ok {
				ok = tagValuesFromSpaces(value, &result.Color[0], &result.Color[1], &result.Color[2])
			}
		case ParamClassname:
		default:
			core.LogWarn("hl1: unparsed light_environment parameter %q", key)
		}

		if !ok {
			core.LogWarn("hl1: failed to parse light_environment parameter %q=%q", key, value)
			valid = false
			break
		}
	}

	return result, valid
}

// Entity is the typed result of interpreting one raw entity block. At most
// one field other than ClassnameType is populated.
type Entity struct {
	ClassnameType      ClassnameType
	Light              *PointLight
	InfoPlayerStart    *PlayerStart
	TriggerChangelevel *LevelChange
	InfoLandmark       *Landmark
	Worldspawn         *WorldInfo
	LightEnvironment   *EnvironmentLight
}

// ConstructEntity interprets a raw entity block according to its
// classname. Classnames voxlife does not act on (most brush entities are
// geometry-only; monsters are handled separately during level assembly)
// yield a zero Entity with no populated pointer and should be skipped by
// the caller. A record that fails to parse is discarded the same way,
// after the constructor has logged the failing parameter.
func ConstructEntity(e bsp.RawEntity, t ClassnameType) Entity {
	switch t {
	case Light:
		if v, ok := constructLight(e); ok {
			return Entity{ClassnameType: t, Light: &v}
		}
	case InfoPlayerStart:
		if v, ok := constructInfoPlayerStart(e); ok {
			return Entity{ClassnameType: t, InfoPlayerStart: &v}
		}
	case TriggerChangelevel:
		v := constructTriggerChangelevel(e)
		return Entity{ClassnameType: t, TriggerChangelevel: &v}
	case Worldspawn:
		v := constructWorldspawn(e)
		return Entity{ClassnameType: t, Worldspawn: &v}
	case InfoLandmark:
		if v, ok := constructInfoLandmark(e); ok {
			return Entity{ClassnameType: t, InfoLandmark: &v}
		}
	case LightEnvironment:
		if v, ok := constructLightEnvironment(e); ok {
			return Entity{ClassnameType: t, LightEnvironment: &v}
		}
	}
	return Entity{ClassnameType: t}
}
