package fir

// Morpher animates a Cloud between its scattered and assembled endpoint
// configurations in response to discrete assemble/scatter requests, and
// exposes the instantaneous position of every particle for rendering.
//
// One Update call per frame, strictly sequential; a Morpher is not safe for
// concurrent use from multiple goroutines, and doesn't need to be — the
// simulation loop owns it.
type Morpher struct {
	// Drift is the cosmetic displacement added on top of the interpolated
	// base position. The zero value disables it.
	Drift Drift

	cloud *Cloud
	blend *Blend
}

// NewMorpher creates a Morpher over the given cloud, with the blend already
// settled at the given initial intent. Panics if cloud is nil.
func NewMorpher(cloud *Cloud, assembled bool) *Morpher {
	if cloud == nil {
		panic("fir: NewMorpher requires a non-nil cloud")
	}
	return &Morpher{
		cloud: cloud,
		blend: NewBlend(assembled),
	}
}

// Cloud returns the morpher's particle cloud.
func (m *Morpher) Cloud() *Cloud {
	return m.cloud
}

// Blend returns the morpher's blend state for rate tuning.
func (m *Morpher) Blend() *Blend {
	return m.blend
}

// SetAssembled retargets the morph: true eases the cloud into its assembled
// shape, false scatters it. Safe to call from an input handler between
// Update calls; only the target changes, never the current value.
func (m *Morpher) SetAssembled(assembled bool) {
	m.blend.SetTarget(assembled)
}

// Assembled reports the current intent, not the current position: it flips
// the moment SetAssembled is called, while Value catches up over the
// following frames.
func (m *Morpher) Assembled() bool {
	return m.blend.Target()
}

// Value returns the current blend factor in [0, 1]: 0 is fully scattered,
// 1 fully assembled. Renderers can key secondary effects off this (fading
// decorations in as the shape forms, say).
func (m *Morpher) Value() float64 {
	return m.blend.Value()
}

// Update advances the blend by dt seconds. Call once per frame.
func (m *Morpher) Update(dt float64) {
	m.blend.Update(dt)
}

// At returns particle i's current position at the given time in seconds:
// the blend-interpolated point between its two endpoints, plus the drift
// offset. With zero drift the endpoints are hit exactly at blend 0 and 1.
//
// An out-of-range i panics; it means the caller's buffer size and the
// cloud's particle count disagree.
func (m *Morpher) At(i int, time float64) Vec3 {
	base := m.cloud.scatter[i].Lerp(m.cloud.assembled[i], m.blend.Value())
	if m.Drift.Amplitude == 0 {
		return base
	}
	return base.Add(m.Drift.offset(time, m.cloud.seeds[i]))
}
