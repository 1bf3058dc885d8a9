package fir

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestStageFansOutIntent(t *testing.T) {
	s := NewStage()
	tree := NewMorpher(testCloud(t, 20), false)
	star := NewMorpher(testCloud(t, 5), false)
	s.AddMorpher(tree)
	s.AddMorpher(star)

	s.SetAssembled(true)
	if !tree.Assembled() || !star.Assembled() {
		t.Error("SetAssembled should reach every registered morpher")
	}
	if !s.Assembled() {
		t.Error("stage should report the primary morpher's intent")
	}
}

func TestStageUpdateAdvancesEverything(t *testing.T) {
	s := NewStage()
	m := NewMorpher(testCloud(t, 10), false)
	s.AddMorpher(m)

	snow := NewSnowfall(defaultSnowConfig(50), testRand())
	s.AddSnowfall(snow)

	cam := NewOrbitCamera(10, 4)
	cam.ZoomTo(20)
	s.SetCamera(cam)

	flakeBefore := snow.flakes[0].pos.Y

	s.SetAssembled(true)
	s.Update(0.5)

	if m.Value() <= 0 {
		t.Error("morpher did not advance")
	}
	if snow.flakes[0].pos.Y >= flakeBefore {
		t.Error("snow did not advance")
	}
	if cam.Distance() == 10 {
		t.Error("camera spring did not advance")
	}
	assertNear(t, "elapsed", s.Elapsed(), 0.5)
}

func TestStageValueTracksPrimary(t *testing.T) {
	s := NewStage()
	if s.Value() != 0 || s.Assembled() {
		t.Error("empty stage should report zero value, scattered intent")
	}

	m := NewMorpher(testCloud(t, 10), false)
	s.AddMorpher(m)
	s.SetAssembled(true)
	s.Update(0.25)
	assertNear(t, "stage value", s.Value(), m.Value())
}

func TestStageDropsFinishedTweens(t *testing.T) {
	s := NewStage()
	v := 0.0
	s.AddTween(TweenFloat(&v, 10, 0.5, ease.Linear))

	s.Update(0.25)
	if len(s.tweens) != 1 {
		t.Fatalf("tweens = %d, want 1 mid-flight", len(s.tweens))
	}
	s.Update(0.3)
	if len(s.tweens) != 0 {
		t.Errorf("tweens = %d, want 0 after completion", len(s.tweens))
	}
	if v < 9.5 {
		t.Errorf("v = %f, want ~10", v)
	}
}

func TestStageNegativeDtClamped(t *testing.T) {
	s := NewStage()
	m := NewMorpher(testCloud(t, 10), false)
	s.AddMorpher(m)
	s.SetAssembled(true)
	s.Update(0.25)
	before := m.Value()

	s.Update(-1)
	assertNear(t, "value after negative dt", m.Value(), before)
	assertNear(t, "elapsed after negative dt", s.Elapsed(), 0.25)
}

func TestStageNilRegistrationPanics(t *testing.T) {
	s := NewStage()
	for name, fn := range map[string]func(){
		"morpher":  func() { s.AddMorpher(nil) },
		"snowfall": func() { s.AddSnowfall(nil) },
		"tween":    func() { s.AddTween(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Add nil %s should panic", name)
				}
			}()
			fn()
		}()
	}
}
