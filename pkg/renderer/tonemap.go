package renderer

import (
	"math"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// RGB is an 8-bit display color
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color with a fully opaque alpha
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// ToneMap averages a sum of samples, applies gamma 2 and quantizes to 8 bits per channel.
// A sample count of zero yields black, and so does any NaN or infinite channel.
func ToneMap(sum core.Color, samples int) RGB {
	if samples <= 0 {
		return RGB{}
	}

	c := zeroNonFinite(sum.Divide(float64(samples)).Sqrt()).Clamp(0, 0.999)
	return RGB{
		R: uint8(255.999 * c.X),
		G: uint8(255.999 * c.Y),
		B: uint8(255.999 * c.Z),
	}
}

// zeroNonFinite replaces NaN and infinite channels with 0. Clamping passes NaN
// through, and converting NaN to an integer is implementation defined.
func zeroNonFinite(c core.Color) core.Color {
	channel := func(x float64) float64 {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return x
	}
	return core.NewVec3(channel(c.X), channel(c.Y), channel(c.Z))
}
