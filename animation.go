package rowan

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation is one named clip: immutable frame geometry cut row-major from a
// sprite sheet, plus mutable playback state. One Animation instance backs a
// clip for the lifetime of its sprite and is reused across play/stop cycles.
type Animation struct {
	FrameWidth    int
	FrameHeight   int
	FrameCount    int
	FrameDuration float64           // seconds per frame
	Frames        []image.Rectangle // row-major frame rectangles

	// Playback state
	Frame   int     // current frame index
	elapsed float64 // time accumulated toward the next frame
	playing bool
	looping bool
}

// NewAnimation computes the clip's frame rectangles tiled row-major across a
// sheet of the given pixel width.
func NewAnimation(sheetWidth, frameWidth, frameHeight, frameCount int, frameDuration float64) *Animation {
	perRow := sheetWidth / frameWidth
	if perRow < 1 {
		perRow = 1
	}
	frames := make([]image.Rectangle, frameCount)
	for i := range frames {
		x := (i % perRow) * frameWidth
		y := (i / perRow) * frameHeight
		frames[i] = image.Rect(x, y, x+frameWidth, y+frameHeight)
	}
	return &Animation{
		FrameWidth:    frameWidth,
		FrameHeight:   frameHeight,
		FrameCount:    frameCount,
		FrameDuration: frameDuration,
		Frames:        frames,
	}
}

// IsPlaying reports whether the clip is currently advancing.
func (a *Animation) IsPlaying() bool {
	return a.playing
}

// IsLooping reports whether the clip wraps at its last frame.
func (a *Animation) IsLooping() bool {
	return a.looping
}

// advance accumulates dt and steps the frame index by at most one. A large
// delta time never advances more than one frame per call; the accumulator
// resets to zero on each step rather than keeping the overshoot. Looping
// clips wrap to frame 0; non-looping clips stop clamped at the last frame.
func (a *Animation) advance(dt float64) {
	if !a.playing {
		return
	}
	a.elapsed += dt
	if a.elapsed < a.FrameDuration {
		return
	}
	a.elapsed = 0
	a.Frame++
	if a.Frame >= a.FrameCount {
		if a.looping {
			a.Frame = 0
		} else {
			a.playing = false
			a.Frame = a.FrameCount - 1
		}
	}
}

// SpriteSheet pairs a texture with a uniform frame grid and cuts clips from it.
type SpriteSheet struct {
	Texture     *ebiten.Image
	FrameWidth  int
	FrameHeight int
}

// Clip returns an Animation of frameCount frames cut row-major from the sheet.
func (s SpriteSheet) Clip(frameCount int, frameDuration float64) *Animation {
	return NewAnimation(s.Texture.Bounds().Dx(), s.FrameWidth, s.FrameHeight, frameCount, frameDuration)
}

// --- Animated sprite behavior ---

// AddAnimation registers a clip under name. The first clip added starts
// playing immediately, looping.
func (e *Entity) AddAnimation(name string, a *Animation) {
	if e.animations == nil {
		e.animations = make(map[string]*Animation)
	}
	e.animations[name] = a
	if e.currentClip == "" {
		e.PlayAnimation(name, true)
	}
}

// PlayAnimation makes the named clip active and (re)starts it from frame 0.
// Unknown names are a silent no-op; the active clip is unchanged.
func (e *Entity) PlayAnimation(name string, loop bool) {
	a, ok := e.animations[name]
	if !ok {
		return
	}
	e.currentClip = name
	a.playing = true
	a.looping = loop
	a.Frame = 0
	a.elapsed = 0
}

// StopAnimation halts the active clip at its current frame.
func (e *Entity) StopAnimation() {
	if a := e.animations[e.currentClip]; a != nil {
		a.playing = false
	}
}

// CurrentClip returns the name of the active clip, or "" if none.
func (e *Entity) CurrentClip() string {
	return e.currentClip
}

// Animation returns the clip registered under name, or nil.
func (e *Entity) Animation(name string) *Animation {
	return e.animations[name]
}

// updateAnimated advances the active clip and writes its current frame
// rectangle into the sprite's SrcRect every tick.
func updateAnimated(e *Entity, f *Frame) {
	a := e.animations[e.currentClip]
	if a == nil || len(a.Frames) == 0 {
		return
	}
	a.advance(f.DT)
	rect := a.Frames[a.Frame]
	e.SrcRect = &rect
}
