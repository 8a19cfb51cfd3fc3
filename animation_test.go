package rowan

import "testing"

func TestNewAnimationFrameGeometry(t *testing.T) {
	// 6 frames of 16x16 tiled row-major across a 64px-wide sheet (4 per row).
	a := NewAnimation(64, 16, 16, 6, 0.1)

	if len(a.Frames) != 6 {
		t.Fatalf("len(Frames) = %d, want 6", len(a.Frames))
	}
	checks := []struct {
		i          int
		x, y, w, h int
	}{
		{0, 0, 0, 16, 16},
		{3, 48, 0, 16, 16},
		{4, 0, 16, 16, 16},
		{5, 16, 16, 16, 16},
	}
	for _, c := range checks {
		r := a.Frames[c.i]
		if r.Min.X != c.x || r.Min.Y != c.y || r.Dx() != c.w || r.Dy() != c.h {
			t.Errorf("frame %d = %v, want (%d,%d %dx%d)", c.i, r, c.x, c.y, c.w, c.h)
		}
	}
}

func TestAnimationLoopingAdvance(t *testing.T) {
	e := NewAnimatedSprite("anim")
	e.AddAnimation("walk", NewAnimation(64, 16, 16, 4, 0.1))

	f := &Frame{DT: 0.1}
	want := []int{1, 2, 3, 0, 1}
	for i, w := range want {
		e.Update(f)
		if got := e.Animation("walk").Frame; got != w {
			t.Errorf("tick %d: frame = %d, want %d", i, got, w)
		}
	}
}

func TestAnimationNonLoopingClamps(t *testing.T) {
	e := NewAnimatedSprite("anim")
	e.AddAnimation("die", NewAnimation(64, 16, 16, 4, 0.1))
	e.PlayAnimation("die", false)

	f := &Frame{DT: 0.1}
	for i := 0; i < 5; i++ {
		e.Update(f)
	}

	a := e.Animation("die")
	if a.Frame != 3 {
		t.Errorf("frame = %d, want 3", a.Frame)
	}
	if a.IsPlaying() {
		t.Error("clip should have stopped")
	}

	// Further ticks stay clamped at the last frame.
	e.Update(f)
	if a.Frame != 3 {
		t.Errorf("frame after extra tick = %d, want 3", a.Frame)
	}
}

func TestAnimationLargeDeltaAdvancesOneFrame(t *testing.T) {
	a := NewAnimation(64, 16, 16, 4, 0.1)
	a.playing = true
	a.looping = true

	// A delta covering many frame durations still advances exactly one frame,
	// and the accumulator resets to zero rather than keeping the overshoot.
	a.advance(1.0)
	if a.Frame != 1 {
		t.Errorf("frame = %d, want 1", a.Frame)
	}
	if a.elapsed != 0 {
		t.Errorf("elapsed = %f, want 0", a.elapsed)
	}
}

func TestFirstClipAutoPlays(t *testing.T) {
	e := NewAnimatedSprite("anim")
	e.AddAnimation("idle", NewAnimation(64, 16, 16, 2, 0.1))
	e.AddAnimation("walk", NewAnimation(64, 16, 16, 4, 0.1))

	if e.CurrentClip() != "idle" {
		t.Errorf("current clip = %q, want %q", e.CurrentClip(), "idle")
	}
	if !e.Animation("idle").IsPlaying() {
		t.Error("first added clip should auto-play")
	}
	if e.Animation("walk").IsPlaying() {
		t.Error("second clip should not play")
	}
}

func TestPlayAnimationUnknownClipIsNoOp(t *testing.T) {
	e := NewAnimatedSprite("anim")
	e.AddAnimation("idle", NewAnimation(64, 16, 16, 2, 0.1))

	e.PlayAnimation("missing", true)

	if e.CurrentClip() != "idle" {
		t.Errorf("current clip = %q, want %q", e.CurrentClip(), "idle")
	}
}

func TestPlayAnimationResetsPlaybackState(t *testing.T) {
	e := NewAnimatedSprite("anim")
	e.AddAnimation("walk", NewAnimation(64, 16, 16, 4, 0.1))

	f := &Frame{DT: 0.1}
	e.Update(f)
	e.Update(f)

	e.PlayAnimation("walk", true)
	a := e.Animation("walk")
	if a.Frame != 0 {
		t.Errorf("frame = %d, want 0 after replay", a.Frame)
	}
	if a.elapsed != 0 {
		t.Errorf("elapsed = %f, want 0 after replay", a.elapsed)
	}
}

func TestAnimatedUpdateWritesSrcRect(t *testing.T) {
	e := NewAnimatedSprite("anim")
	e.AddAnimation("walk", NewAnimation(64, 16, 16, 4, 0.1))

	e.Update(&Frame{DT: 0.1})

	if e.SrcRect == nil {
		t.Fatal("SrcRect should be set after update")
	}
	want := e.Animation("walk").Frames[1]
	if *e.SrcRect != want {
		t.Errorf("SrcRect = %v, want %v", *e.SrcRect, want)
	}
}

func TestStopAnimationHaltsAtCurrentFrame(t *testing.T) {
	e := NewAnimatedSprite("anim")
	e.AddAnimation("walk", NewAnimation(64, 16, 16, 4, 0.1))

	f := &Frame{DT: 0.1}
	e.Update(f)
	e.StopAnimation()
	e.Update(f)
	e.Update(f)

	if got := e.Animation("walk").Frame; got != 1 {
		t.Errorf("frame = %d, want 1 after stop", got)
	}
}
