package emath

import "math"

// Some functions that only operate on basic types, that are useful

func GammaExpand_F64(f float64) float64 {
	if f <= 0.0031308 {
		return 12.92 * f
	}
	return 1.055 * math.Pow(f, 1.0/2.4) - 0.055
}

func ClampInt(v, min, max int) int {
	if v < min { return min }
	if v > max { return max }
	return v
}

func ClampF64(v, min, max float64) float64 {
	if v < min { return min }
	if v > max { return max }
	return v
}

// ToByte rounds to nearest, and clamps into [0,255]
func ToByte(f float64) uint8 {
	if f <= 0   { return 0 }
	if f >= 255 { return 255 }
	return uint8(math.Round(f))
}

// GammaDecode_F64 is the inverse of GammaExpand_F64: sRGB to linear.
func GammaDecode_F64(f float64) float64 {
	if f <= 0.04045 {
		return f / 12.92
	}
	return math.Pow((f + 0.055) / 1.055, 2.4)
}
