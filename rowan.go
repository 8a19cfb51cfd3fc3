package rowan

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color is an RGBA color with 8-bit components. The zero value is fully
// transparent black; use RGB for an opaque color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color with the given components.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// ColorWhite is the default sprite tint (no color modification).
var ColorWhite = RGB(255, 255, 255)

func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Vec2 is a 2D vector used for positions, offsets, velocities, and forces
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle identified by its top-left corner.
// The coordinate system has its origin at the top-left, with Y increasing
// downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectAround returns the rectangle of the given size centered at (cx, cy).
func RectAround(cx, cy, width, height float64) Rect {
	return Rect{X: cx - width/2, Y: cy - height/2, Width: width, Height: height}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Key identifies a keyboard key. Raw ebiten key codes are used directly.
type Key = ebiten.Key

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)

	mouseButtonCount
)

// EntityType distinguishes update/render behavior for an Entity.
type EntityType uint8

const (
	EntityBasic    EntityType = iota // positioned object with no visual output
	EntitySprite                     // renders a named texture
	EntityAnimated                   // sprite driven by named animation clips

	entityTypeCount
)

// WidgetType distinguishes behavior for a UI tree node.
type WidgetType uint8

const (
	WidgetPanel  WidgetType = iota // container with optional background and layout
	WidgetButton                   // clickable button with hover/press states
	WidgetLabel                    // text whose size follows its rendered extents

	widgetTypeCount
)

// ShapeType distinguishes collision shape variants.
type ShapeType uint8

const (
	ShapeBox    ShapeType = iota // axis-aligned rectangle
	ShapeCircle                  // circle

	shapeTypeCount
)

// LayoutKind selects the child-positioning strategy of a Panel.
type LayoutKind uint8

const (
	LayoutNone       LayoutKind = iota // children keep their own positions
	LayoutVertical                     // stack children along Y, centered on the panel origin
	LayoutHorizontal                   // stack children along X, centered on the panel origin

	layoutKindCount
)
