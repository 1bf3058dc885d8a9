package fir

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// cameraNear is the minimum camera-space depth; points closer than this
// (or behind the eye) are not projected.
const cameraNear = 0.1

// OrbitCamera orbits the origin at a given distance and height, always
// looking at LookAt. Distance and height changes requested via ZoomTo and
// RiseTo are smoothed with a damped spring instead of snapping.
type OrbitCamera struct {
	// Yaw is the orbit angle around the Y axis in radians. Mutate freely;
	// yaw is not spring-smoothed.
	Yaw float64
	// LookAt is the world-space point the camera faces.
	LookAt Vec3
	// FOV is the vertical field of view in radians.
	FOV float64

	distance, distanceVel float64
	height, heightVel     float64
	targetDistance        float64
	targetHeight          float64
	spring                harmonica.Spring
}

// NewOrbitCamera creates a camera at the given orbit distance and height
// with a 50 degree vertical FOV. The spring is tuned for a 60 TPS update
// and a soft, slightly underdamped settle.
func NewOrbitCamera(distance, height float64) *OrbitCamera {
	return &OrbitCamera{
		FOV:            50 * math.Pi / 180,
		distance:       distance,
		height:         height,
		targetDistance: distance,
		targetHeight:   height,
		spring:         harmonica.NewSpring(harmonica.FPS(60), 4.0, 0.9),
	}
}

// Distance returns the current (smoothed) orbit distance.
func (c *OrbitCamera) Distance() float64 {
	return c.distance
}

// Height returns the current (smoothed) camera height.
func (c *OrbitCamera) Height() float64 {
	return c.height
}

// ZoomTo sets the orbit distance the spring pulls toward.
func (c *OrbitCamera) ZoomTo(distance float64) {
	c.targetDistance = distance
}

// RiseTo sets the camera height the spring pulls toward.
func (c *OrbitCamera) RiseTo(height float64) {
	c.targetHeight = height
}

// Update advances the distance and height springs by one tick. Call once
// per frame, like Morpher.Update.
func (c *OrbitCamera) Update() {
	c.distance, c.distanceVel = c.spring.Update(c.distance, c.distanceVel, c.targetDistance)
	c.height, c.heightVel = c.spring.Update(c.height, c.heightVel, c.targetHeight)
}

// Eye returns the camera's current world-space position.
func (c *OrbitCamera) Eye() Vec3 {
	sin, cos := math.Sincos(c.Yaw)
	return Vec3{X: c.distance * sin, Y: c.height, Z: c.distance * cos}
}

// Project maps a world-space point to screen coordinates for a viewport of
// the given pixel size. Returns the screen position, the camera-space depth,
// and ok=false for points at or behind the near plane.
func (c *OrbitCamera) Project(p Vec3, width, height int) (sx, sy, depth float64, ok bool) {
	eye := c.Eye()

	// Camera basis: forward toward LookAt, right and up orthonormal.
	f := c.LookAt.Sub(eye)
	fl := f.Len()
	if fl == 0 {
		return 0, 0, 0, false
	}
	f = f.Scale(1 / fl)
	right := Vec3{X: -f.Z, Y: 0, Z: f.X}
	rl := right.Len()
	if rl == 0 {
		// Looking straight up or down; pick an arbitrary right axis.
		right = Vec3{X: 1}
	} else {
		right = right.Scale(1 / rl)
	}
	up := Vec3{
		X: right.Y*f.Z - right.Z*f.Y,
		Y: right.Z*f.X - right.X*f.Z,
		Z: right.X*f.Y - right.Y*f.X,
	}

	d := p.Sub(eye)
	cz := d.X*f.X + d.Y*f.Y + d.Z*f.Z
	if cz < cameraNear {
		return 0, 0, 0, false
	}
	cx := d.X*right.X + d.Y*right.Y + d.Z*right.Z
	cy := d.X*up.X + d.Y*up.Y + d.Z*up.Z

	focal := float64(height) / 2 / math.Tan(c.FOV/2)
	sx = float64(width)/2 + cx/cz*focal
	sy = float64(height)/2 - cy/cz*focal
	return sx, sy, cz, true
}

// SpriteScale returns the on-screen scale factor for a unit-sized sprite at
// the given camera-space depth, for the given viewport height.
func (c *OrbitCamera) SpriteScale(depth float64, height int) float64 {
	if depth < cameraNear {
		return 0
	}
	return float64(height) / 2 / math.Tan(c.FOV/2) / depth
}
