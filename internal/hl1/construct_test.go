package hl1

import (
	"testing"

	"github.com/rednicstone/voxlife/internal/bsp"
)

func rawEntity(pairs map[string]string) bsp.RawEntity {
	return bsp.RawEntity{Pairs: pairs}
}

func TestConstructLightFourComponentColor(t *testing.T) {
	e := rawEntity(map[string]string{
		"classname": "light",
		"origin":    "10 -20 30",
		"_light":    "255 128 64 200",
	})
	light, ok := constructLight(e)
	if !ok {
		t.Fatal("light rejected")
	}
	if light.Origin != [3]int{10, -20, 30} {
		t.Errorf("Origin = %v, want {10 -20 30}", light.Origin)
	}
	if light.Color != [3]uint8{255, 128, 64} {
		t.Errorf("Color = %v, want {255 128 64}", light.Color)
	}
	if light.Intensity != 200 {
		t.Errorf("Intensity = %d, want 200", light.Intensity)
	}
}

func TestConstructLightThreeComponentColorDefaultsIntensity(t *testing.T) {
	e := rawEntity(map[string]string{
		"classname": "light",
		"_light":    "10 20 30",
	})
	light, ok := constructLight(e)
	if !ok {
		t.Fatal("light rejected")
	}
	if light.Color != [3]uint8{10, 20, 30} {
		t.Errorf("Color = %v, want {10 20 30}", light.Color)
	}
	if light.Intensity != 255 {
		t.Errorf("Intensity = %d, want the 255 default", light.Intensity)
	}
}

func TestConstructLightAcceptedStyles(t *testing.T) {
	for _, style := range []string{"0", "32", "33"} {
		e := rawEntity(map[string]string{"classname": "light", "style": style})
		if _, ok := constructLight(e); !ok {
			t.Errorf("style %q rejected, want accepted", style)
		}
	}
}

func TestConstructEntityDropsLightWithBadStyle(t *testing.T) {
	e := rawEntity(map[string]string{
		"classname": "light",
		"origin":    "0 0 0",
		"_light":    "255 255 255 200",
		"style":     "5",
	})
	entity := ConstructEntity(e, Light)
	if entity.Light != nil {
		t.Fatal("light with style 5 survived, want the record discarded")
	}
}

func TestConstructEntityDropsLightWithBadOrigin(t *testing.T) {
	e := rawEntity(map[string]string{
		"classname": "light",
		"origin":    "not numbers here",
	})
	if entity := ConstructEntity(e, Light); entity.Light != nil {
		t.Fatal("light with malformed origin survived, want the record discarded")
	}
}

func TestConstructTriggerChangelevel(t *testing.T) {
	e := rawEntity(map[string]string{
		"classname": "trigger_changelevel",
		"map":       "c1a1",
		"landmark":  "lm1",
		"model":     "*7",
	})
	entity := ConstructEntity(e, TriggerChangelevel)
	if entity.TriggerChangelevel == nil {
		t.Fatal("trigger_changelevel rejected")
	}
	lc := entity.TriggerChangelevel
	if lc.Map != "c1a1" || lc.Landmark != "lm1" || lc.Model != "*7" {
		t.Errorf("got %+v, want map=c1a1 landmark=lm1 model=*7", lc)
	}
}

func TestConstructWorldspawn(t *testing.T) {
	e := rawEntity(map[string]string{
		"classname": "worldspawn",
		"skyname":   "desert",
		"wad":       `\sierra\half-life\valve\halflife.wad`,
		"message":   "Anomalous Materials",
		"newunit":   "1",
	})
	entity := ConstructEntity(e, Worldspawn)
	if entity.Worldspawn == nil {
		t.Fatal("worldspawn rejected")
	}
	ws := entity.Worldspawn
	if ws.Skyname != "desert" {
		t.Errorf("Skyname = %q, want desert", ws.Skyname)
	}
	if ws.Wad == "" {
		t.Error("Wad field not captured")
	}
	if !ws.Newunit {
		t.Error("Newunit = false, want true for value \"1\"")
	}
}

func TestConstructEntityUnhandledClassnameHasNoPayload(t *testing.T) {
	e := rawEntity(map[string]string{"classname": "func_door", "origin": "0 0 0"})
	entity := ConstructEntity(e, FuncDoor)
	if entity.Light != nil || entity.InfoPlayerStart != nil || entity.TriggerChangelevel != nil ||
		entity.InfoLandmark != nil || entity.Worldspawn != nil || entity.LightEnvironment != nil {
		t.Fatal("unhandled classname populated a payload")
	}
}

func TestTagValuesFromSpaces(t *testing.T) {
	var x, y, z int
	if !tagValuesFromSpaces("1 -2 3", &x, &y, &z) {
		t.Fatal("parse failed")
	}
	if x != 1 || y != -2 || z != 3 {
		t.Errorf("got %d %d %d, want 1 -2 3", x, y, z)
	}

	var f float32
	if !tagValuesFromSpaces("90.5", &f) || f != 90.5 {
		t.Errorf("float parse got %v, want 90.5", f)
	}

	if tagValuesFromSpaces("1 2", &x, &y, &z) {
		t.Error("accepted two fields for three destinations")
	}
}
