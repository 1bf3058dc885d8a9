package fir

import "math"

// Drift is the cosmetic breathing displacement layered on top of a morpher's
// interpolated positions: each particle sways on a slow sine keyed off its
// seed, so the cloud shimmers instead of freezing once the blend settles.
//
// The offset is a pure function of (time, seed). It never feeds back into the
// blend, and a zero Amplitude produces an identically zero offset.
type Drift struct {
	// Amplitude is the maximum displacement on each axis. Zero disables drift.
	Amplitude float64
	// Frequency is the sway speed in radians per second.
	Frequency float64
}

// offset returns the displacement for a particle with the given seed at the
// given time in seconds.
func (d Drift) offset(time, seed float64) Vec3 {
	if d.Amplitude == 0 {
		return Vec3{}
	}
	// Each particle gets its own phase and slightly detuned per-axis
	// frequencies so neighbors never move in lockstep.
	phase := seed * 2 * math.Pi
	t := time * d.Frequency
	return Vec3{
		X: d.Amplitude * math.Sin(t+phase),
		Y: d.Amplitude * 0.5 * math.Sin(t*1.31+phase*2),
		Z: d.Amplitude * math.Cos(t*0.87+phase),
	}
}
