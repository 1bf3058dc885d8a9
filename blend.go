package fir

import "math"

// Default damping rates, in 1/seconds. Scattering snaps a little faster than
// assembling eases in. Both are cosmetic and safe to tune per Blend.
const (
	DefaultAssembleRate = 3.0
	DefaultScatterRate  = 5.0
)

// Blend is the scalar interpolation state between the scattered (0) and
// assembled (1) configurations of a particle group.
//
// The value approaches its target by exponential damping rather than a
// fixed-duration tween, so the motion is frame-rate independent: any
// decomposition of an elapsed span into Update calls lands on the same
// value. "Scattered" and "assembled" are the two asymptotes of one
// continuous scalar, not discrete states.
type Blend struct {
	// AssembleRate is the damping rate used while the target is 1.
	AssembleRate float64
	// ScatterRate is the damping rate used while the target is 0.
	ScatterRate float64

	value  float64
	target float64
}

// NewBlend creates a Blend already settled at the given intent: assembled
// starts at value 1 with target 1, otherwise 0/0.
func NewBlend(assembled bool) *Blend {
	b := &Blend{
		AssembleRate: DefaultAssembleRate,
		ScatterRate:  DefaultScatterRate,
	}
	if assembled {
		b.value = 1
		b.target = 1
	}
	return b
}

// SetTarget retargets the blend: true heads toward 1, false toward 0.
// The value itself never snaps; the transition is always gradual.
// Idempotent when the target is unchanged, and safe to call from UI
// handlers between Update calls.
func (b *Blend) SetTarget(assembled bool) {
	if assembled {
		b.target = 1
	} else {
		b.target = 0
	}
}

// Target reports the current intent: true when heading toward assembled.
func (b *Blend) Target() bool {
	return b.target == 1
}

// Value returns the current interpolation factor in [0, 1].
func (b *Blend) Value() float64 {
	return b.value
}

// Update advances the blend by dt seconds of exponential damping:
//
//	value = target + (value - target) * exp(-rate*dt)
//
// A dt of 0 is a no-op; negative dt is clamped to 0 rather than
// reversing time.
func (b *Blend) Update(dt float64) {
	if dt <= 0 {
		return
	}
	rate := b.AssembleRate
	if b.target == 0 {
		rate = b.ScatterRate
	}
	b.value = b.target + (b.value-b.target)*math.Exp(-rate*dt)
}
