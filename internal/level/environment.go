package level

import (
	"math"

	"github.com/rednicstone/voxlife/internal/hl1"
)

// Environment is the worldspawn-wide skybox/sun description written into a
// level's <environment> element and its paired env/playerspawn locations.
type Environment struct {
	Skybox     string
	Brightness float32
	SunColor   [3]float32 // normalized [0,1]
	SunDir     [3]float32
}

// DefaultEnvironment is used when a level has no light_environment entity.
func DefaultEnvironment() Environment {
	return Environment{
		Skybox:     "cloudy.dds",
		Brightness: 0.5,
		SunColor:   [3]float32{0, 0, 0},
		SunDir:     [3]float32{0, -1, 0},
	}
}

// sunDirection rotates the unit vector (0,0,1) by pitch about X, then by
// angle (yaw) about Y, matching a GoldSrc light_environment's orientation
// convention.
func sunDirection(pitch, angle float32) [3]float32 {
	p := float64(pitch) * math.Pi / 180
	a := float64(angle) * math.Pi / 180

	// Start at +Z, rotate about X by pitch.
	x, y, z := 0.0, 0.0, 1.0
	y, z = y*math.Cos(p)-z*math.Sin(p), y*math.Sin(p)+z*math.Cos(p)

	// Then rotate about Y by angle.
	x, z = x*math.Cos(a)+z*math.Sin(a), -x*math.Sin(a)+z*math.Cos(a)

	return [3]float32{float32(x), float32(y), float32(z)}
}

// EnvironmentFromWorldspawn builds an Environment from the level's
// worldspawn skyname and, if present, its single light_environment entity.
// A light_environment only determines the sun when the world model also
// contains a sky-textured face (hadSkyFace); otherwise
// the sun falls back to DefaultEnvironment's parameters even if a
// light_environment entity exists, while the skybox path is still honored
// unconditionally.
func EnvironmentFromWorldspawn(skyname string, sun *hl1.EnvironmentLight, hadSkyFace bool) Environment {
	env := DefaultEnvironment()
	if skyname != "" {
		env.Skybox = skyname
	}
	if !hadSkyFace || sun == nil {
		return env
	}

	env.SunDir = sunDirection(sun.Pitch, sun.Angle)
	env.SunColor = [3]float32{
		float32(sun.Color[0]) / 255,
		float32(sun.Color[1]) / 255,
		float32(sun.Color[2]) / 255,
	}
	env.Brightness = float32(sun.Intensity) / 255
	return env
}
