package fir

import "math"

// Vec3 is a 3D vector used for particle positions and offsets throughout
// the API. Y points up; the assembled shapes stand on the y=0 plane.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Lerp linearly interpolates between v and o by t.
// A t of 0 returns v, a t of 1 returns o.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		X: lerp(v.X, o.X, t),
		Y: lerp(v.Y, o.Y, t),
		Z: lerp(v.Z, o.Z, t),
	}
}
