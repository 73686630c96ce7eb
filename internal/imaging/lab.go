package imaging

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lab is a color in the CIE L*a*b* space relative to the D65 white point.
//
// L ranges over [0,100]; A and B fall roughly within [-128,127] for colors
// reachable from sRGB.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// CIE constants for the XYZ -> L*a*b* transform.
const (
	labEpsilon = 0.008856
	labKappa   = 903.3
)

// whiteD65 is the reference white (Xn, Yn, Zn).
var whiteD65 = [3]float64{0.95047, 1.00000, 1.08883}

// RGBToLab converts an 8-bit sRGB color to CIE L*a*b*.
//
// The transform runs sRGB -> linear RGB (inverse gamma companding) -> CIE XYZ
// -> L*a*b* against the D65 white. Below the 0.008856 threshold the cube root
// is replaced by the linear segment (903.3*t + 16) / 116.
//
// The conversion is a pure float64 computation: the same input always yields
// bit-identical output.
func RGBToLab(c RGBColor) Lab {
	lr, lg, lb := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.LinearRgb()
	x, y, z := colorful.LinearRgbToXyz(lr, lg, lb)

	fx := labF(x / whiteD65[0])
	fy := labF(y / whiteD65[1])
	fz := labF(z / whiteD65[2])

	// Explicit conversions round each product so the compiler cannot fuse
	// them into multiply-adds on architectures that support FMA.
	return Lab{
		L: float64(116*fy) - 16,
		A: float64(500 * (fx - fy)),
		B: float64(200 * (fy - fz)),
	}
}

// RGBToLabBatch converts a sequence of colors, preserving order.
//
// Repeated colors are converted once.
func RGBToLabBatch(colors []RGBColor) []Lab {
	out := make([]Lab, len(colors))
	seen := make(map[RGBColor]Lab)
	for i, c := range colors {
		lab, ok := seen[c]
		if !ok {
			lab = RGBToLab(c)
			seen[c] = lab
		}
		out[i] = lab
	}
	return out
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (float64(labKappa*t) + 16) / 116
}
