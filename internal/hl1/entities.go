// Package hl1 turns the raw key/value entity blocks read from a BSP's
// entity lump into typed level entities (lights, spawn points, level
// transitions, and the worldspawn/landmark metadata needed to place them).
package hl1

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ClassnameType enumerates every entity classname the HL1 game defines.
// Only a handful are semantically consumed by ConstructEntity; the rest
// exist so unknown-classname diagnostics can name what was skipped
// instead of just logging a raw string.
type ClassnameType int

const (
	AmbientGeneric ClassnameType = iota

	Ammo357
	Ammo9mmAR
	Ammo9mmbox
	Ammo9mmclip
	AmmoARgrenades
	AmmoBuckshot
	AmmoCrossbow
	AmmoGaussclip
	AmmoRpgclip

	ButtonTarget

	Cycler
	CyclerSprite
	CyclerWreckage
	CyclerWeapon

	EnvBeam
	EnvBeverage
	EnvBlood
	EnvBubbles
	EnvExplosion
	EnvFade
	EnvFunnel
	EnvGlow
	EnvGlobal
	EnvLaser
	EnvMessage
	EnvRain
	EnvRender
	EnvShake
	EnvShooter
	EnvSmoker
	EnvSnow
	EnvSound
	EnvSpark
	EnvSprite
	EnvFog

	FuncBreakable
	FuncButton
	FuncConveyor
	FuncDoor
	FuncDoorRotating
	FuncFriction
	FuncGuntarget
	FuncHealthcharger
	FuncIllusionary
	FuncLadder
	FuncMonsterclip
	FuncMortarField
	FuncPendulum
	FuncPlat
	FuncPlatrot
	FuncPushable
	FuncRecharge
	FuncRotButton
	FuncRotating
	FuncTank
	FuncTankcontrols
	FuncTanklaser
	FuncTankmortar
	FuncTankrocket
	FuncTrackautochange
	FuncTrackchange
	FuncTracktrain
	FuncTrain
	FuncTraincontrols
	FuncWall
	FuncWallToggle
	FuncWater

	GameCounter
	GameCounterSet
	GameEnd
	GamePlayerEquip
	GamePlayerHurt
	GamePlayerTeam
	GameScore
	GameTeamMaster
	GameTeamSet
	GameText
	GameZonePlayer

	Gibshooter

	InfoBigmomma
	InfoIntermission
	InfoLandmark
	InfoNode
	InfoNodeAir
	InfoNull
	InfoPlayerCoop
	InfoPlayerDeathmatch
	InfoPlayerStart
	InfoTarget
	InfoTeleportDestination
	InfoTexlights
	Infodecal

	ItemAirtank
	ItemAntidote
	ItemBattery
	ItemHealthkit
	ItemLongjump
	ItemSecurity
	ItemSuit
	WorldItems

	Light
	LightEnvironment
	LightSpot

	MomentaryDoor
	MomentaryRotButton

	MonsterAlienController
	MonsterAlienGrunt
	MonsterAlienSlave
	MonsterApache
	MonsterBarnacle
	MonsterBabycrab
	MonsterBarney
	MonsterBarneyDead
	MonsterBigmomma
	MonsterBullchicken
	MonsterCockroach
	MonsterFlyerFlock
	MonsterFurniture
	MonsterGargantua
	MonsterGeneric
	MonsterGman
	MonsterGruntRepel
	MonsterHandgrenade
	MonsterHeadcrab
	MonsterHevsuitDead
	MonsterHgruntDead
	MonsterHoundeye
	MonsterHumanAssassin
	MonsterHumanGrunt
	MonsterIchthyosaur
	MonsterLeech
	MonsterMiniturret
	MonsterNihilanth
	MonsterOsprey
	MonsterSatchelcharge
	MonsterScientist
	MonsterScientistDead
	MonsterSentry
	MonsterSittingScientist
	MonsterSnark
	MonsterTentacle
	MonsterTripmine
	MonsterTurret
	MonsterZombie
	Monstermaker

	MultiManager
	Multisource

	PathCorner
	PathTrack
	PlayerLoadsaved
	PlayerWeaponstrip

	ScriptedSentence
	ScriptedSequence
	AiscriptedSequence

	Speaker

	TargetCdaudio

	TriggerAuto
	TriggerAutosave
	TriggerCamera
	TriggerCdaudio
	TriggerChangelevel
	TriggerChangetarget
	TriggerCounter
	TriggerEndsection
	TriggerGravity
	TriggerHurt
	TriggerMonsterjump
	TriggerMultiple
	TriggerOnce
	TriggerPush
	TriggerRelay
	TriggerTeleport
	TriggerTransition

	Weapon357
	Weapon9mmAR
	Weapon9mmhandgun
	WeaponCrossbow
	WeaponCrowbar
	WeaponEgon
	WeaponGauss
	WeaponHandgrenade
	WeaponHornetgun
	WeaponRpg
	WeaponSatchel
	WeaponShotgun
	WeaponSnark
	WeaponTripmine
	Weaponbox

	Worldspawn

	XenHair
	XenPlantlight
	XenSporeLarge
	XenSporeMedium
	XenSporeSmall
	XenTree

	classnameTypeMax
)

var classnameNames = [...]string{
	AmbientGeneric: "ambient_generic",

	Ammo357:        "ammo_357",
	Ammo9mmAR:      "ammo_9mmAR",
	Ammo9mmbox:     "ammo_9mmbox",
	Ammo9mmclip:    "ammo_9mmclip",
	AmmoARgrenades: "ammo_ARgrenades",
	AmmoBuckshot:   "ammo_buckshot",
	AmmoCrossbow:   "ammo_crossbow",
	AmmoGaussclip:  "ammo_gaussclip",
	AmmoRpgclip:    "ammo_rpgclip",

	ButtonTarget: "button_target",

	Cycler:         "cycler",
	CyclerSprite:   "cycler_sprite",
	CyclerWreckage: "cycler_wreckage",
	CyclerWeapon:   "cycler_weapon",

	EnvBeam:      "env_beam",
	EnvBeverage:  "env_beverage",
	EnvBlood:     "env_blood",
	EnvBubbles:   "env_bubbles",
	EnvExplosion: "env_explosion",
	EnvFade:      "env_fade",
	EnvFunnel:    "env_funnel",
	EnvGlow:      "env_glow",
	EnvGlobal:    "env_global",
	EnvLaser:     "env_laser",
	EnvMessage:   "env_message",
	EnvRain:      "env_rain",
	EnvRender:    "env_render",
	EnvShake:     "env_shake",
	EnvShooter:   "env_shooter",
	EnvSmoker:    "env_smoker",
	EnvSnow:      "env_snow",
	EnvSound:     "env_sound",
	EnvSpark:     "env_spark",
	EnvSprite:    "env_sprite",
	EnvFog:       "env_fog",

	FuncBreakable:       "func_breakable",
	FuncButton:          "func_button",
	FuncConveyor:        "func_conveyor",
	FuncDoor:            "func_door",
	FuncDoorRotating:    "func_door_rotating",
	FuncFriction:        "func_friction",
	FuncGuntarget:       "func_guntarget",
	FuncHealthcharger:   "func_healthcharger",
	FuncIllusionary:     "func_illusionary",
	FuncLadder:          "func_ladder",
	FuncMonsterclip:     "func_monsterclip",
	FuncMortarField:     "func_mortar_field",
	FuncPendulum:        "func_pendulum",
	FuncPlat:            "func_plat",
	FuncPlatrot:         "func_platrot",
	FuncPushable:        "func_pushable",
	FuncRecharge:        "func_recharge",
	FuncRotButton:       "func_rot_button",
	FuncRotating:        "func_rotating",
	FuncTank:            "func_tank",
	FuncTankcontrols:    "func_tankcontrols",
	FuncTanklaser:       "func_tanklaser",
	FuncTankmortar:      "func_tankmortar",
	FuncTankrocket:      "func_tankrocket",
	FuncTrackautochange: "func_trackautochange",
	FuncTrackchange:     "func_trackchange",
	FuncTracktrain:      "func_tracktrain",
	FuncTrain:           "func_train",
	FuncTraincontrols:   "func_traincontrols",
	FuncWall:            "func_wall",
	FuncWallToggle:      "func_wall_toggle",
	FuncWater:           "func_water",

	GameCounter:     "game_counter",
	GameCounterSet:  "game_counter_set",
	GameEnd:         "game_end",
	GamePlayerEquip: "game_player_equip",
	GamePlayerHurt:  "game_player_hurt",
	GamePlayerTeam:  "game_player_team",
	GameScore:       "game_score",
	GameTeamMaster:  "game_team_master",
	GameTeamSet:     "game_team_set",
	GameText:        "game_text",
	GameZonePlayer:  "game_zone_player",

	Gibshooter: "gibshooter",

	InfoBigmomma:            "info_bigmomma",
	InfoIntermission:        "info_intermission",
	InfoLandmark:            "info_landmark",
	InfoNode:                "info_node",
	InfoNodeAir:             "info_node_air",
	InfoNull:                "info_null",
	InfoPlayerCoop:          "info_player_coop",
	InfoPlayerDeathmatch:    "info_player_deathmatch",
	InfoPlayerStart:         "info_player_start",
	InfoTarget:              "info_target",
	InfoTeleportDestination: "info_teleport_destination",
	InfoTexlights:           "info_texlights",
	Infodecal:               "infodecal",

	ItemAirtank:   "item_airtank",
	ItemAntidote:  "item_antidote",
	ItemBattery:   "item_battery",
	ItemHealthkit: "item_healthkit",
	ItemLongjump:  "item_longjump",
	ItemSecurity:  "item_security",
	ItemSuit:      "item_suit",
	WorldItems:    "world_items",

	Light:            "light",
	LightEnvironment: "light_environment",
	LightSpot:        "light_spot",

	MomentaryDoor:      "momentary_door",
	MomentaryRotButton: "momentary_rot_button",

	MonsterAlienController: "monster_alien_controller",
	MonsterAlienGrunt:      "monster_alien_grunt",
	MonsterAlienSlave:      "monster_alien_slave",
	MonsterApache:          "monster_apache",
	MonsterBarnacle:        "monster_barnacle",
	MonsterBabycrab:        "monster_babycrab",
	MonsterBarney:          "monster_barney",
	MonsterBarneyDead:      "monster_barney_dead",
	MonsterBigmomma:        "monster_bigmomma",
	MonsterBullchicken:     "monster_bullchicken",
	MonsterCockroach:       "monster_cockroach",
	MonsterFlyerFlock:      "monster_flyer_flock",
	MonsterFurniture:       "monster_furniture",
	MonsterGargantua:       "monster_gargantua",
	MonsterGeneric:         "monster_generic",
	MonsterGman:            "monster_gman",
	MonsterGruntRepel:      "monster_grunt_repel",
	MonsterHandgrenade:     "monster_handgrenade",
	MonsterHeadcrab:        "monster_headcrab",
	MonsterHevsuitDead:     "monster_hevsuit_dead",
	MonsterHgruntDead:      "monster_hgrunt_dead",
	MonsterHoundeye:        "monster_houndeye",
	MonsterHumanAssassin:   "monster_human_assassin",
	MonsterHumanGrunt:      "monster_human_grunt",
	MonsterIchthyosaur:     "monster_ichthyosaur",
	MonsterLeech:           "monster_leech",
	MonsterMiniturret:      "monster_miniturret",
	MonsterNihilanth:       "monster_nihilanth",
	MonsterOsprey:          "monster_osprey",
	MonsterSatchelcharge:   "monster_satchelcharge",
	MonsterScientist:       "monster_scientist",
	MonsterScientistDead:   "monster_scientist_dead",
	MonsterSentry:          "monster_sentry",
	MonsterSittingScientist: "monster_sitting_scientist",
	MonsterSnark:            "monster_snark",
	MonsterTentacle:         "monster_tentacle",
	MonsterTripmine:         "monster_tripmine",
	MonsterTurret:           "monster_turret",
	MonsterZombie:           "monster_zombie",
	Monstermaker:            "monstermaker",

	MultiManager: "multi_manager",
	Multisource:  "multisource",

	PathCorner:         "path_corner",
	PathTrack:          "path_track",
	PlayerLoadsaved:    "player_loadsaved",
	PlayerWeaponstrip:  "player_weaponstrip",

	ScriptedSentence:    "scripted_sentence",
	ScriptedSequence:    "scripted_sequence",
	AiscriptedSequence:  "aiscripted_sequence",

	Speaker: "speaker",

	TargetCdaudio: "target_cdaudio",

	TriggerAuto:         "trigger_auto",
	TriggerAutosave:     "trigger_autosave",
	TriggerCamera:       "trigger_camera",
	TriggerCdaudio:      "trigger_cdaudio",
	TriggerChangelevel:  "trigger_changelevel",
	TriggerChangetarget: "trigger_changetarget",
	TriggerCounter:      "trigger_counter",
	TriggerEndsection:   "trigger_endsection",
	TriggerGravity:      "trigger_gravity",
	TriggerHurt:         "trigger_hurt",
	TriggerMonsterjump:  "trigger_monsterjump",
	TriggerMultiple:     "trigger_multiple",
	TriggerOnce:         "trigger_once",
	TriggerPush:         "trigger_push",
	TriggerRelay:        "trigger_relay",
	TriggerTeleport:     "trigger_teleport",
	TriggerTransition:   "trigger_transition",

	Weapon357:         "weapon_357",
	Weapon9mmAR:       "weapon_9mmAR",
	Weapon9mmhandgun:  "weapon_9mmhandgun",
	WeaponCrossbow:    "weapon_crossbow",
	WeaponCrowbar:     "weapon_crowbar",
	WeaponEgon:        "weapon_egon",
	WeaponGauss:       "weapon_gauss",
	WeaponHandgrenade: "weapon_handgrenade",
	WeaponHornetgun:   "weapon_hornetgun",
	WeaponRpg:         "weapon_rpg",
	WeaponSatchel:     "weapon_satchel",
	WeaponShotgun:     "weapon_shotgun",
	WeaponSnark:       "weapon_snark",
	WeaponTripmine:    "weapon_tripmine",
	Weaponbox:         "weaponbox",

	Worldspawn: "worldspawn",

	XenHair:        "xen_hair",
	XenPlantlight:  "xen_plantlight",
	XenSporeLarge:  "xen_spore_large",
	XenSporeMedium: "xen_spore_medium",
	XenSporeSmall:  "xen_spore_small",
	XenTree:        "xen_tree",
}

var classnameTypeByName = func() map[string]ClassnameType {
	m := make(map[string]ClassnameType, classnameTypeMax)
	for i, name := range classnameNames {
		if name != "" {
			m[name] = ClassnameType(i)
		}
	}
	return m
}()

// ParameterType enumerates the entity key names ConstructEntity parses.
type ParameterType int

const (
	ParamClassname ParameterType = iota
	ParamTargetname
	ParamOrigin
	ParamLight
	ParamPattern
	ParamStyle
	ParamFade
	ParamAngle
	ParamMap
	ParamLandmark
	ParamModel
	ParamMessage
	ParamSkyname
	ParamChaptertitle
	ParamGametitle
	ParamNewunit
	ParamWad
	ParamPitch

	parameterTypeMax
)

// parameterNames gives each ParameterType's wire key. Two diverge from the
// enum's own name: HL1 keys the light color/intensity and fade duration as
// "_light" / "_fade" in the entity text.
var parameterNames = [...]string{
	ParamClassname:    "classname",
	ParamTargetname:   "targetname",
	ParamOrigin:       "origin",
	ParamLight:        "_light",
	ParamPattern:      "pattern",
	ParamStyle:        "style",
	ParamFade:         "_fade",
	ParamAngle:        "angle",
	ParamMap:          "map",
	ParamLandmark:     "landmark",
	ParamModel:        "model",
	ParamMessage:      "message",
	ParamSkyname:      "skyname",
	ParamChaptertitle: "chaptertitle",
	ParamGametitle:    "gametitle",
	ParamNewunit:      "newunit",
	ParamWad:          "wad",
	ParamPitch:        "pitch",
}

var parameterTypeByName = func() map[string]ParameterType {
	m := make(map[string]ParameterType, parameterTypeMax)
	for i, name := range parameterNames {
		m[name] = ParameterType(i)
	}
	return m
}()

// knownClassnames and knownParameters give the two dispatch tables'
// entries in sorted order, built once at startup. Sorting a map's keys
// through golang.org/x/exp/{maps,slices} rather than ranging the map
// directly keeps "unknown classname"/"unknown key" diagnostics — and the
// tests that assert against the dispatch tables' contents — independent of
// Go's randomized map iteration order.
var knownClassnames = sortedKeys(classnameTypeByName)
var knownParameters = sortedKeys(parameterTypeByName)

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
