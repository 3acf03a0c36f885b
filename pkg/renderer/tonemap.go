package renderer

import (
	"image/color"
	"math"

	"github.com/df07/raest/pkg/core"
)

// ToneMap converts a sum of radiance samples into a packed 0x00RRGGBB pixel:
// average, gamma 2, clamp to [0, 0.999] and scale to 8 bits. NaN channels count as zero.
func ToneMap(sum core.Vec3, samples int) uint32 {
	return toneChannel(sum.X, samples)<<16 | toneChannel(sum.Y, samples)<<8 | toneChannel(sum.Z, samples)
}

func toneChannel(x float64, samples int) uint32 {
	x = zeroNaN(x)
	v := math.Sqrt(math.Max(0, x/float64(samples)))
	v = math.Min(v, 0.999)
	return uint32(v * 255)
}

func zeroNaN(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return x
}

// sanitize zeroes the NaN channels of a color
func sanitize(c core.Vec3) core.Vec3 {
	return core.NewVec3(zeroNaN(c.X), zeroNaN(c.Y), zeroNaN(c.Z))
}

// unpackColor expands a packed pixel into an opaque RGBA color
func unpackColor(pixel uint32) color.RGBA {
	return color.RGBA{
		R: uint8(pixel >> 16),
		G: uint8(pixel >> 8),
		B: uint8(pixel),
		A: 255,
	}
}
