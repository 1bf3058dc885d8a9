package fir

import (
	"strings"
	"testing"
)

func TestNewCloudLengthsAligned(t *testing.T) {
	c, err := NewCloud(500, SolidSphere(10), ConeSurface(9, 4), testRand())
	if err != nil {
		t.Fatalf("NewCloud: %v", err)
	}
	if c.Len() != 500 {
		t.Errorf("Len = %d, want 500", c.Len())
	}
	if len(c.scatter) != 500 || len(c.assembled) != 500 || len(c.seeds) != 500 {
		t.Errorf("lengths = %d/%d/%d, want 500 each",
			len(c.scatter), len(c.assembled), len(c.seeds))
	}
}

func TestNewCloudInvalidCount(t *testing.T) {
	for _, count := range []int{0, -1, -100} {
		_, err := NewCloud(count, SolidSphere(1), SolidSphere(1), testRand())
		if err == nil {
			t.Errorf("NewCloud(%d) should fail", count)
		}
	}
}

func TestNewCloudNilSampler(t *testing.T) {
	_, err := NewCloud(10, nil, SolidSphere(1), testRand())
	if err == nil || !strings.Contains(err.Error(), "fir:") {
		t.Errorf("nil scatter sampler: err = %v, want fir error", err)
	}
	_, err = NewCloud(10, SolidSphere(1), nil, testRand())
	if err == nil {
		t.Error("nil assembled sampler should fail")
	}
}

func TestCloudIndexPairingStable(t *testing.T) {
	c, err := NewCloud(100, SolidSphere(10), SolidCone(9, 4), testRand())
	if err != nil {
		t.Fatalf("NewCloud: %v", err)
	}

	type pair struct {
		s, a Vec3
		seed float64
	}
	before := make([]pair, c.Len())
	for i := range before {
		before[i] = pair{c.Scatter(i), c.Assembled(i), c.Seed(i)}
	}

	// Drive a morpher over the cloud; the endpoints must not move.
	m := NewMorpher(c, false)
	m.SetAssembled(true)
	for i := 0; i < 100; i++ {
		m.Update(1.0 / 60.0)
	}

	for i := range before {
		if c.Scatter(i) != before[i].s || c.Assembled(i) != before[i].a || c.Seed(i) != before[i].seed {
			t.Fatalf("particle %d endpoints changed during animation", i)
		}
	}
}

func TestCloudSeedsInRange(t *testing.T) {
	c, err := NewCloud(1000, SolidSphere(1), SolidSphere(1), testRand())
	if err != nil {
		t.Fatalf("NewCloud: %v", err)
	}
	for i := 0; i < c.Len(); i++ {
		s := c.Seed(i)
		if s < 0 || s >= 1 {
			t.Fatalf("seed %d = %f, outside [0, 1)", i, s)
		}
	}
}

func TestCloudDeterministicDraws(t *testing.T) {
	a, _ := NewCloud(10, SolidSphere(1), SolidSphere(1), testRand())
	b, _ := NewCloud(10, SolidSphere(1), SolidSphere(1), testRand())
	// Same seed, same sequence: sanity-checks that the draw order inside
	// NewCloud is deterministic.
	for i := 0; i < 10; i++ {
		if a.Scatter(i) != b.Scatter(i) {
			t.Fatalf("clouds from identical sources diverge at %d", i)
		}
	}
}
