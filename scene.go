package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one game screen: an ordered entity list (insertion order is
// update and render order) plus a UI widget tree rendered on top.
//
// Traversal uses snapshot semantics: each pass copies the entity list at call
// start, so every entity present at frame start is visited exactly once even
// when a callback adds or removes entities mid-pass. Structural changes take
// effect on the next pass.
type Scene struct {
	engine   *Engine // non-owning back-reference, set by Engine.AddScene
	entities []*Entity
	iterBuf  []*Entity // reused snapshot buffer
	ui       *Widget

	// Lifecycle hooks, all optional.
	OnEnter    func()
	OnExit     func()
	UpdateFunc func(*Frame) // runs before the entity pass each tick
}

// NewScene creates an empty scene with a bare UI root.
func NewScene() *Scene {
	ui := NewPanel("ui_root", 0, 0)
	ui.Background = nil
	return &Scene{ui: ui}
}

// Engine returns the engine this scene is registered with, or nil.
func (s *Scene) Engine() *Engine {
	return s.engine
}

// UI returns the root of the scene's widget tree. The root is an invisible
// panel; attach widgets to it.
func (s *Scene) UI() *Widget {
	return s.ui
}

// AddEntity appends the entity to the scene's list and sets its scene
// back-reference. An entity should live in at most one scene at a time;
// that contract is the caller's to keep.
func (s *Scene) AddEntity(e *Entity) {
	s.entities = append(s.entities, e)
	e.scene = s
}

// RemoveEntity removes the entity from the scene's list and clears its scene
// back-reference. No-op if the entity is not in the list. Cross-references
// held elsewhere (bodies, shapes) are not touched.
func (s *Scene) RemoveEntity(e *Entity) {
	for i, x := range s.entities {
		if x == e {
			copy(s.entities[i:], s.entities[i+1:])
			s.entities[len(s.entities)-1] = nil
			s.entities = s.entities[:len(s.entities)-1]
			e.scene = nil
			return
		}
	}
}

// Entities returns the entity list. The returned slice MUST NOT be mutated.
func (s *Scene) Entities() []*Entity {
	return s.entities
}

// snapshot copies the current entity list into the reused traversal buffer.
func (s *Scene) snapshot() []*Entity {
	s.iterBuf = append(s.iterBuf[:0], s.entities...)
	return s.iterBuf
}

// HandleEvent forwards one raw event to every entity in list order, then to
// the UI tree.
func (s *Scene) HandleEvent(ev Event, f *Frame) {
	for _, e := range s.snapshot() {
		e.HandleEvent(ev, f)
	}
	s.ui.HandleEvent(ev, f)
}

// Update ticks the scene: the scene hook first, then every entity in list
// order, then UI callbacks.
func (s *Scene) Update(f *Frame) {
	if s.UpdateFunc != nil {
		s.UpdateFunc(f)
	}
	for _, e := range s.snapshot() {
		e.Update(f)
	}
	s.ui.update(f)
}

// Render draws every entity in list order, then the UI tree on top.
func (s *Scene) Render(dst *ebiten.Image, f *Frame) {
	for _, e := range s.snapshot() {
		e.Render(dst, f)
	}
	s.ui.Render(dst, f)
}

func (s *Scene) enter() {
	if s.OnEnter != nil {
		s.OnEnter()
	}
}

func (s *Scene) exit() {
	if s.OnExit != nil {
		s.OnExit()
	}
}
