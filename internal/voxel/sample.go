package voxel

import (
	"math"

	"github.com/rednicstone/voxlife/internal/miptex"
)

// BilinearSample samples tex at unnormalized texel coordinates (u, v),
// wrapping (tiling) out-of-range coordinates in both axes, and blending
// the four nearest texels.
func BilinearSample(tex *miptex.Texture, u, v float32) [3]uint8 {
	w := int(tex.Width)
	h := int(tex.Height)

	fu := u - float32(math.Floor(float64(u)))
	fv := v - float32(math.Floor(float64(v)))

	x0 := wrapIndex(int(math.Floor(float64(u))), w)
	y0 := wrapIndex(int(math.Floor(float64(v))), h)
	x1 := wrapIndex(x0+1, w)
	y1 := wrapIndex(y0+1, h)

	c00 := texel(tex, x0, y0)
	c10 := texel(tex, x1, y0)
	c01 := texel(tex, x0, y1)
	c11 := texel(tex, x1, y1)

	var out [3]uint8
	for i := 0; i < 3; i++ {
		top := lerp(float32(c00[i]), float32(c10[i]), fu)
		bottom := lerp(float32(c01[i]), float32(c11[i]), fu)
		out[i] = uint8(lerp(top, bottom, fv))
	}
	return out
}

func texel(tex *miptex.Texture, x, y int) [3]byte {
	i := (y*int(tex.Width) + x) * 3
	return [3]byte{tex.Pixels[i], tex.Pixels[i+1], tex.Pixels[i+2]}
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
