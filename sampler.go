package fir

import (
	"math"
	"math/rand/v2"
)

// Sampler produces one random point per call from some geometric region.
// Samplers are stateless: all randomness comes from the supplied source,
// so a seeded *rand.Rand reproduces the same sequence.
type Sampler func(r *rand.Rand) Vec3

// SolidSphere returns a sampler that draws points uniformly from the volume
// of a ball of the given radius centered at the origin.
//
// The radial coordinate is radius*cbrt(u), not radius*u; a linear radius
// would pile samples up near the center.
func SolidSphere(radius float64) Sampler {
	return func(r *rand.Rand) Vec3 {
		rad := radius * math.Cbrt(r.Float64())
		phi := math.Acos(2*r.Float64() - 1)
		theta := 2 * math.Pi * r.Float64()
		sinPhi, cosPhi := math.Sincos(phi)
		sinTheta, cosTheta := math.Sincos(theta)
		return Vec3{
			X: rad * sinPhi * cosTheta,
			Y: rad * cosPhi,
			Z: rad * sinPhi * sinTheta,
		}
	}
}

// SolidCone returns a sampler that draws points uniformly from the volume of
// an upright cone: circular base of baseRadius on the y=0 plane, apex at
// (0, height, 0).
//
// Height uses height*(1-cbrt(u)) so sample density follows the cross-section
// area, putting most mass near the wide base. At each height the point is
// uniform in the disk of the local radius.
func SolidCone(height, baseRadius float64) Sampler {
	return func(r *rand.Rand) Vec3 {
		y := height * (1 - math.Cbrt(r.Float64()))
		maxR := baseRadius * (1 - y/height)
		rad := maxR * math.Sqrt(r.Float64())
		theta := 2 * math.Pi * r.Float64()
		sin, cos := math.Sincos(theta)
		return Vec3{X: rad * cos, Y: y, Z: rad * sin}
	}
}

// ConeSurface returns a sampler that draws points from the lateral surface of
// the same upright cone: base of baseRadius at y=0 tapering linearly to the
// apex at y=height. Only the shell is sampled, never the interior.
//
// Height is uniform in [0, height), which concentrates points toward the apex
// relative to true surface measure and keeps the narrow top dense.
func ConeSurface(height, baseRadius float64) Sampler {
	return func(r *rand.Rand) Vec3 {
		y := height * r.Float64()
		rad := baseRadius * (1 - y/height)
		theta := 2 * math.Pi * r.Float64()
		sin, cos := math.Sincos(theta)
		return Vec3{X: rad * cos, Y: y, Z: rad * sin}
	}
}
