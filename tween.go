package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on an Entity simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenRotation) and call Update(dt) each frame, typically from the scene's
// UpdateFunc or the entity's OnUpdate callback.
//
// There is no global tween manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Done is set once every tween has finished.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that animates entity.X and entity.Y to
// the given target coordinates over the specified duration using the easing
// function.
func TweenPosition(e *Entity, toX, toY float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(e.X), float32(toX), float32(duration), fn)
	g.tweens[1] = gween.New(float32(e.Y), float32(toY), float32(duration), fn)
	g.fields[0] = &e.X
	g.fields[1] = &e.Y
	return g
}

// TweenScale creates a TweenGroup that animates entity.Scale to the given
// target value over the specified duration using the easing function.
func TweenScale(e *Entity, to float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(e.Scale), float32(to), float32(duration), fn)
	g.fields[0] = &e.Scale
	return g
}

// TweenRotation creates a TweenGroup that animates entity.Rotation to the
// target value over the specified duration using the easing function.
func TweenRotation(e *Entity, to float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(e.Rotation), float32(to), float32(duration), fn)
	g.fields[0] = &e.Rotation
	return g
}
