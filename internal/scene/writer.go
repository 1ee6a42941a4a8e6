// Package scene writes a level's Teardown prefab XML, the textual
// counterpart to internal/voxel's binary .vox models.
//
// The XML is hand-assembled with formatted strings rather than
// encoding/xml, since the exact attribute text (ordering, unquoted numeric
// formatting, space-separated vector attributes) is the wire contract
// Teardown's own importer expects and encoding/xml's generic marshaling
// cannot reproduce faithfully.
package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rednicstone/voxlife/internal/level"
)

// WriteLevel renders info as a single prefab XML document and writes it to
// dir/<info.Name>.xml, creating dir if necessary.
func WriteLevel(dir string, info *level.Info) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("scene: creating %q: %w", dir, err)
	}

	var b strings.Builder

	b.WriteString("<prefab version=\"1.6.0\">\n")
	fmt.Fprintf(&b, "<group name=\"instance=MOD/levels/%s.xml\">\n", info.Name)
	fmt.Fprintf(&b, "<group tags=\"%s\" pos=\"%.3f %.3f %.3f\" rot=\"0.000 0.000 0.000\">\n",
		info.Name, info.LevelPos[0], info.LevelPos[1], info.LevelPos[2])

	fmt.Fprintf(&b, "<spawnpoint tags=\"%s\" pos=\"%.3f %.3f %.3f\" rot=\"%.3f %.3f %.3f\"/>\n",
		info.Name, info.SpawnPos[0], info.SpawnPos[1], info.SpawnPos[2],
		info.SpawnRot[0], info.SpawnRot[1], info.SpawnRot[2])

	fmt.Fprintf(&b, "<location tags=\"playerspawn %s\" pos=\"%.3f %.3f %.3f\" rot=\"%.3f %.3f %.3f\"/>\n",
		info.Name, info.SpawnPos[0], info.SpawnPos[1], info.SpawnPos[2],
		info.SpawnRot[0], -info.SpawnRot[1], info.SpawnRot[2])

	env := info.Environment
	skybox := env.Skybox
	if !strings.HasSuffix(skybox, ".dds") {
		skybox += ".dds"
	}
	fmt.Fprintf(&b, "<location tags=\"env %s tag_skybox=MOD/%s tag_skyboxbrightness=%.3f tag_sunColorTintR=%.3f tag_sunColorTintG=%.3f tag_sunColorTintB=%.3f tag_sunDirX=%.3f tag_sunDirY=%.3f tag_sunDirZ=%.3f\"/>\n",
		info.Name, skybox, env.Brightness,
		env.SunColor[0], env.SunColor[1], env.SunColor[2],
		env.SunDir[0], env.SunDir[1], env.SunDir[2])

	fmt.Fprintf(&b, "<environment tags=\"%s\" skybox=\"MOD/%s\" skyboxbrightness=\"%.3f\" skyboxrot=\"-90\" constant=\"0.003 0.003 0.003\" ambient=\"1\" fogParams=\"0 0 0 0\" sunColorTint=\"%.3f %.3f %.3f\" sunDir=\"%.3f %.3f %.3f\" sunSpread=\"0\"/>\n",
		info.Name, skybox, env.Brightness,
		env.SunColor[0], env.SunColor[1], env.SunColor[2],
		env.SunDir[0], env.SunDir[1], env.SunDir[2])

	for _, loc := range info.Locations {
		fmt.Fprintf(&b, "<location tags=\"%s targetname_%s\" name=\"%s\" pos=\"%.3f %.3f %.3f\"/>\n",
			info.Name, loc.Name, loc.Name, loc.Pos[0], loc.Pos[1], loc.Pos[2])
	}

	for _, npc := range info.NPCs {
		classname := strings.TrimSuffix(filepath.Base(npc.PathName), ".xml")
		fmt.Fprintf(&b, "<script tags=\"%s\" pos=\"0.0 0.0 0.0\" file=\"MOD/characters/idle-anim.lua\">\n", info.Name)
		fmt.Fprintf(&b, "<instance tags=\"%s\" pos=\"%.3f %.3f %.3f\" rot=\"%.3f %.3f %.3f\" file=\"MOD/characters/%s.xml\"/>\n",
			info.Name, npc.Pos[0], npc.Pos[1]+0.15, npc.Pos[2], npc.Rot[0], npc.Rot[1], npc.Rot[2], classname)
		b.WriteString("</script>\n")
	}

	for _, trig := range info.Triggers {
		fmt.Fprintf(&b, "<trigger tags=\"%s changelevel map=%s landmark=%s\" name=\"%s\" pos=\"%.3f %.3f %.3f\" type=\"box\" size=\"%.3f %.3f %.3f\"/>\n",
			info.Name, trig.Map, trig.Landmark, trig.Map,
			trig.Pos[0], trig.Pos[1], trig.Pos[2],
			trig.Size[0], trig.Size[1], trig.Size[2])
	}

	for _, light := range info.Lights {
		fmt.Fprintf(&b, "<light tags=\"%s\" pos=\"%.3f %.3f %.3f\" color=\"%.3f %.3f %.3f\" scale=\"%.3f\"/>\n",
			info.Name, light.Pos[0], light.Pos[1], light.Pos[2],
			float32(light.Color[0])/255, float32(light.Color[1])/255, float32(light.Color[2])/255,
			float32(light.Intensity)*0.1)
	}

	for _, model := range info.Models {
		voxPath := fmt.Sprintf("MOD/brush/%s/%s.vox", info.Name, strconv.Itoa(model.ID))
		fmt.Fprintf(&b, "<voxbox name=\"%s\" tags=\"%s\" pos=\"%.3f %.3f %.3f\" rot=\"%.3f %.3f %.3f\" size=\"%d %d %d\" brush=\"%s\"/>\n",
			voxPath, info.Name,
			model.WorldPos.X, model.WorldPos.Y, model.WorldPos.Z,
			model.Rotation.X, model.Rotation.Y, model.Rotation.Z,
			model.SizeX, model.SizeY, model.SizeZ,
			voxPath)
	}

	b.WriteString("</group>\n</group>\n</prefab>\n")

	path := filepath.Join(dir, info.Name+".xml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("scene: writing %q: %w", path, err)
	}
	return nil
}
