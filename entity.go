package rowan

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is the per-frame context passed explicitly through every update,
// render, and event call. Entities read resources and input from here rather
// than reaching through back-references.
type Frame struct {
	DT        float64 // seconds since the previous frame
	Input     *Input
	Resources *Resources
}

// entityIDCounter is a plain counter (no atomic; rowan is single-threaded).
var entityIDCounter uint32

func nextEntityID() uint32 {
	entityIDCounter++
	return entityIDCounter
}

// Entity is the fundamental scene element. A single flat struct is used for
// all entity types to avoid interface dispatch on the hot path; Type selects
// behavior through the update/render tables below.
type Entity struct {
	// Identity
	ID   uint32
	Name string
	Type EntityType

	// Transform
	X, Y          float64
	Width, Height float64
	Rotation      float64 // degrees
	Scale         float64 // uniform
	Visible       bool

	// Owning scene. Non-owning back-reference, set by Scene.AddEntity.
	scene *Scene

	// Sprite fields (EntitySprite, EntityAnimated)
	TextureName  string
	texture      *ebiten.Image // resolved lazily from the resource table
	SrcRect      *image.Rectangle
	FlipX, FlipY bool
	ColorMod     Color // multiply tint, RGB channels
	Alpha        uint8

	// Animation fields (EntityAnimated)
	animations  map[string]*Animation
	currentClip string

	// Optional attachments. Each points back at this entity without owning it.
	Body  *Body
	Shape *Shape

	// Per-entity callbacks (nil by default; zero cost when unused)
	OnEvent  func(*Entity, Event, *Frame)
	OnUpdate func(*Entity, *Frame)
	OnRender func(*Entity, *ebiten.Image, *Frame)
}

// entityDefaults sets the common default field values shared by all constructors.
func entityDefaults(e *Entity) {
	e.ID = nextEntityID()
	e.Scale = 1
	e.Visible = true
	e.ColorMod = ColorWhite
	e.Alpha = 255
}

// NewEntity creates a positioned entity with no visual output.
func NewEntity(name string) *Entity {
	e := &Entity{Name: name, Type: EntityBasic}
	entityDefaults(e)
	return e
}

// NewSprite creates a sprite entity that renders the named texture.
// The texture is resolved from the resource table on first render; until
// then the sprite's width and height are zero.
func NewSprite(name, textureName string) *Entity {
	e := &Entity{Name: name, Type: EntitySprite, TextureName: textureName}
	entityDefaults(e)
	return e
}

// NewAnimatedSprite creates a sprite entity driven by named animation clips.
func NewAnimatedSprite(name string) *Entity {
	e := &Entity{Name: name, Type: EntityAnimated, animations: make(map[string]*Animation)}
	entityDefaults(e)
	return e
}

// Scene returns the scene this entity belongs to, or nil when detached.
func (e *Entity) Scene() *Scene {
	return e.scene
}

// Position returns the entity's position as a vector.
func (e *Entity) Position() Vec2 {
	return Vec2{X: e.X, Y: e.Y}
}

// SetPosition moves the entity to (x, y).
func (e *Entity) SetPosition(x, y float64) {
	e.X, e.Y = x, y
}

// --- Behavior dispatch ---

// The tables are indexed by EntityType and cover every variant; adding a
// variant without an entry fails fast on the first frame.

var entityUpdateFuncs = [entityTypeCount]func(*Entity, *Frame){
	EntityBasic:    updateStatic,
	EntitySprite:   updateStatic,
	EntityAnimated: updateAnimated,
}

var entityRenderFuncs = [entityTypeCount]func(*Entity, *ebiten.Image, *Frame){
	EntityBasic:    renderNothing,
	EntitySprite:   renderSprite,
	EntityAnimated: renderSprite,
}

func updateStatic(e *Entity, f *Frame) {}

func renderNothing(e *Entity, dst *ebiten.Image, f *Frame) {}

// HandleEvent delivers one raw event to the entity.
func (e *Entity) HandleEvent(ev Event, f *Frame) {
	if e.OnEvent != nil {
		e.OnEvent(e, ev, f)
	}
}

// Update advances the entity by one tick: type-specific behavior (animation),
// then the attached physics body, then the user callback.
func (e *Entity) Update(f *Frame) {
	entityUpdateFuncs[e.Type](e, f)
	if e.Body != nil {
		e.Body.Step(f.DT)
	}
	if e.OnUpdate != nil {
		e.OnUpdate(e, f)
	}
}

// Render draws the entity onto dst.
func (e *Entity) Render(dst *ebiten.Image, f *Frame) {
	entityRenderFuncs[e.Type](e, dst, f)
	if e.OnRender != nil {
		e.OnRender(e, dst, f)
	}
}
