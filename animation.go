package fir

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenFloat, TweenVec3, TweenColor) and call
// Update(dt) each frame. Used for decorative motion around a morph — star
// pulses, ornament fades — anything that wants a fixed duration and an
// easing curve rather than the morpher's damping.
//
// There is no global animation manager — users call Update themselves, or
// register the group with a Stage.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Once every tween finishes, Done is set and further calls are no-ops.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenFloat creates a TweenGroup that animates a single float64 to the given
// target over the specified duration using the easing function.
func TweenFloat(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenVec3 creates a TweenGroup that animates all three components of a Vec3
// to the target over the specified duration using the easing function.
func TweenVec3(v *Vec3, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3}
	g.tweens[0] = gween.New(float32(v.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(v.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(v.Z), float32(to.Z), duration, fn)
	g.fields[0] = &v.X
	g.fields[1] = &v.Y
	g.fields[2] = &v.Z
	return g
}

// TweenColor creates a TweenGroup that animates all four components of a
// Color to the target color over the specified duration.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g
}
