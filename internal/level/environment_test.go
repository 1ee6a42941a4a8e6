package level

import (
	"math"
	"testing"

	"github.com/rednicstone/voxlife/internal/hl1"
)

func TestEnvironmentFromWorldspawnNoLightEnvironmentUsesDefaults(t *testing.T) {
	env := EnvironmentFromWorldspawn("", nil, true)
	want := DefaultEnvironment()
	if env != want {
		t.Errorf("got %+v, want default %+v", env, want)
	}
}

func TestEnvironmentFromWorldspawnSkyboxAlwaysHonored(t *testing.T) {
	env := EnvironmentFromWorldspawn("desert", nil, false)
	if env.Skybox != "desert" {
		t.Errorf("Skybox = %q, want %q even without a light_environment", env.Skybox, "desert")
	}
}

func TestEnvironmentFromWorldspawnRequiresSkyFace(t *testing.T) {
	sun := &hl1.EnvironmentLight{Pitch: -45, Angle: 90, Color: [3]uint8{255, 200, 100}, Intensity: 128}

	withoutSky := EnvironmentFromWorldspawn("", sun, false)
	if withoutSky.SunColor != (DefaultEnvironment().SunColor) {
		t.Errorf("sun color applied without a sky face present: %v", withoutSky.SunColor)
	}

	withSky := EnvironmentFromWorldspawn("", sun, true)
	wantColor := [3]float32{1, float32(200) / 255, float32(100) / 255}
	if withSky.SunColor != wantColor {
		t.Errorf("SunColor = %v, want %v", withSky.SunColor, wantColor)
	}
	if withSky.Brightness != float32(128)/255 {
		t.Errorf("Brightness = %v, want %v", withSky.Brightness, float32(128)/255)
	}
}

func TestSunDirectionIsUnitLength(t *testing.T) {
	dir := sunDirection(-45, 90)
	length := math.Sqrt(float64(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2]))
	if math.Abs(length-1) > 1e-4 {
		t.Errorf("sunDirection length = %v, want ~1", length)
	}
}
