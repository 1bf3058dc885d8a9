package fir

import "math/rand/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Range is a general-purpose min/max range.
// Used by the snow layer (SnowConfig) and potentially other systems.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max] drawn from r.
func (rg Range) Random(r *rand.Rand) float64 {
	if rg.Min == rg.Max {
		return rg.Min
	}
	return rg.Min + r.Float64()*(rg.Max-rg.Min)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
