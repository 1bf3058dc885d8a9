package fir

import (
	"fmt"
	"math/rand/v2"
)

// Cloud holds the two endpoint configurations of a particle group: one
// scattered point and one assembled point per particle, index-aligned for
// the cloud's lifetime, plus a per-particle seed in [0, 1) for cosmetic
// variation (drift phase, size jitter).
//
// A Cloud is immutable after construction and never remapped.
type Cloud struct {
	scatter   []Vec3
	assembled []Vec3
	seeds     []float64
}

// NewCloud samples count particles: the scattered endpoint from scatterSampler,
// the assembled endpoint from assembledSampler, each drawn independently.
// No correlation is assumed between a particle's two endpoints; the travel
// between them is whatever the morpher interpolates.
//
// Returns an error if count is not positive or a sampler is nil.
func NewCloud(count int, scatterSampler, assembledSampler Sampler, r *rand.Rand) (*Cloud, error) {
	if count < 1 {
		return nil, fmt.Errorf("fir: cloud count must be positive, got %d", count)
	}
	if scatterSampler == nil || assembledSampler == nil {
		return nil, fmt.Errorf("fir: cloud samplers must not be nil")
	}
	c := &Cloud{
		scatter:   make([]Vec3, count),
		assembled: make([]Vec3, count),
		seeds:     make([]float64, count),
	}
	for i := 0; i < count; i++ {
		c.scatter[i] = scatterSampler(r)
		c.assembled[i] = assembledSampler(r)
		c.seeds[i] = r.Float64()
	}
	return c, nil
}

// Len returns the number of particles in the cloud.
func (c *Cloud) Len() int {
	return len(c.scatter)
}

// Scatter returns particle i's scattered endpoint.
func (c *Cloud) Scatter(i int) Vec3 {
	return c.scatter[i]
}

// Assembled returns particle i's assembled endpoint.
func (c *Cloud) Assembled(i int) Vec3 {
	return c.assembled[i]
}

// Seed returns particle i's cosmetic seed in [0, 1).
func (c *Cloud) Seed(i int) float64 {
	return c.seeds[i]
}
