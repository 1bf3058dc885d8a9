package fir

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// pointDot is the source sprite drawn for each particle: a small white
// square scaled per-depth at submission time. Created lazily so importing
// the package never touches the graphics backend.
var pointDot *ebiten.Image

func dotImage() *ebiten.Image {
	if pointDot == nil {
		pointDot = ebiten.NewImage(2, 2)
		pointDot.Fill(color.White)
	}
	return pointDot
}

// drawPoint is one projected particle queued for depth-sorted submission.
type drawPoint struct {
	x, y  float64
	depth float64
	size  float64
	col   Color
}

// PointRenderer projects particles through an OrbitCamera and draws them as
// depth-sorted, distance-attenuated point sprites. One renderer per target
// size; the internal queue is reused across frames.
type PointRenderer struct {
	// BaseSize is the world-space size of a particle sprite.
	BaseSize float64
	// MinAlpha clamps how far distance attenuation can fade a point.
	MinAlpha float64

	camera *OrbitCamera
	queue  []drawPoint
}

// NewPointRenderer creates a renderer using the given camera.
// Panics if camera is nil.
func NewPointRenderer(camera *OrbitCamera) *PointRenderer {
	if camera == nil {
		panic("fir: NewPointRenderer requires a non-nil camera")
	}
	return &PointRenderer{
		BaseSize: 0.12,
		MinAlpha: 0.25,
		camera:   camera,
	}
}

// QueueMorpher projects every particle of the morpher at the given time and
// queues it with the given tint. Points behind the camera are skipped.
func (r *PointRenderer) QueueMorpher(m *Morpher, time float64, tint Color, width, height int) {
	n := m.Cloud().Len()
	for i := 0; i < n; i++ {
		r.QueuePoint(m.At(i, time), r.BaseSize, tint, width, height)
	}
}

// QueueSnowfall projects every flake of the snow layer and queues it.
func (r *PointRenderer) QueueSnowfall(s *Snowfall, tint Color, width, height int) {
	n := s.Count()
	for i := 0; i < n; i++ {
		r.QueuePoint(s.At(i), r.BaseSize*s.SizeOf(i), tint, width, height)
	}
}

// QueuePoint projects a single world-space point and queues it with the
// given world-space size and tint.
func (r *PointRenderer) QueuePoint(p Vec3, size float64, tint Color, width, height int) {
	sx, sy, depth, ok := r.camera.Project(p, width, height)
	if !ok {
		return
	}
	r.queue = append(r.queue, drawPoint{x: sx, y: sy, depth: depth, size: size, col: tint})
}

// Flush depth-sorts the queued points back to front and draws them to dst,
// then clears the queue. Farther points are smaller and dimmer.
func (r *PointRenderer) Flush(dst *ebiten.Image) {
	sort.Slice(r.queue, func(i, j int) bool {
		return r.queue[i].depth > r.queue[j].depth
	})

	h := dst.Bounds().Dy()
	dot := dotImage()
	var op ebiten.DrawImageOptions
	op.Blend = ebiten.BlendLighter
	for i := range r.queue {
		p := &r.queue[i]
		px := r.camera.SpriteScale(p.depth, h) * p.size
		if px <= 0 {
			continue
		}

		// Fade with distance, clamped so the far side of the cloud
		// never disappears entirely.
		a := p.col.A * (r.camera.Distance() / p.depth)
		if a > 1 {
			a = 1
		}
		if a < r.MinAlpha {
			a = r.MinAlpha
		}

		op.GeoM.Reset()
		op.GeoM.Scale(px/2, px/2)
		op.GeoM.Translate(p.x-px/2, p.y-px/2)
		op.ColorScale.Reset()
		fa := float32(a)
		op.ColorScale.Scale(float32(p.col.R)*fa, float32(p.col.G)*fa, float32(p.col.B)*fa, fa)
		dst.DrawImage(dot, &op)
	}
	r.queue = r.queue[:0]
}

// QueueLen returns the number of points currently queued. Mostly useful
// for tests and debug overlays.
func (r *PointRenderer) QueueLen() int {
	return len(r.queue)
}
