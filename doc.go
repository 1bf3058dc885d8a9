// Package fir animates point clouds between a scattered and an assembled
// shape for [Ebitengine].
//
// Fir provides the morph simulation, uniform shape samplers, decorative
// particle layers, an orbit camera, and a point-sprite renderer used by
// "assemble the scene from dust" style visuals.
//
// # Quick start
//
// Build a [Cloud] from two samplers, wrap it in a [Morpher], and tick it
// once per frame:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	cloud, err := fir.NewCloud(4000, fir.SolidSphere(16), fir.ConeSurface(9, 4), rng)
//	if err != nil {
//		log.Fatal(err)
//	}
//	m := fir.NewMorpher(cloud, false)
//	m.SetAssembled(true)
//
//	// each frame:
//	m.Update(dt)
//	for i := 0; i < cloud.Len(); i++ {
//		p := m.At(i, elapsed)
//		// hand p to the renderer
//	}
//
// The morpher approaches its target with exponential damping, so motion
// stays smooth under irregular frame times: ten small ticks land on the
// same blend value as one big tick of the same total duration.
//
// # Rendering
//
// [PointRenderer] projects particles through an [OrbitCamera] and draws
// depth-sorted point sprites onto an *ebiten.Image. For full control,
// consume [Morpher.At] and [Morpher.Value] directly and draw however
// you like.
//
// # Decoration
//
// [Snowfall] is a pooled, zero-allocation falling-particle layer.
// [TweenGroup] animates arbitrary float64 fields (via [gween]) for
// pulses and fades keyed off the morph blend.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package fir
