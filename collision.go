package rowan

import "math"

// Shape is a geometric collision proxy bound to one entity, offset from the
// entity's position. A single flat struct covers both variants; Type selects
// the pair test through the dispatch table below.
type Shape struct {
	Type   ShapeType
	entity *Entity // non-owning back-reference
	Offset Vec2

	// Box fields (ShapeBox)
	Width, Height float64

	// Circle fields (ShapeCircle)
	Radius float64
}

// NewBoxShape creates a box collider of the given size and attaches it to the
// entity.
func NewBoxShape(e *Entity, width, height float64) *Shape {
	s := &Shape{Type: ShapeBox, entity: e, Width: width, Height: height}
	e.Shape = s
	return s
}

// NewCircleShape creates a circle collider of the given radius and attaches
// it to the entity.
func NewCircleShape(e *Entity, radius float64) *Shape {
	s := &Shape{Type: ShapeCircle, entity: e, Radius: radius}
	e.Shape = s
	return s
}

// Entity returns the entity this shape is bound to.
func (s *Shape) Entity() *Entity {
	return s.entity
}

// Bounds returns the axis-aligned bounding box centered on the entity
// position plus the shape offset. For circles this is the bounding square.
func (s *Shape) Bounds() Rect {
	cx := s.entity.X + s.Offset.X
	cy := s.entity.Y + s.Offset.Y
	if s.Type == ShapeCircle {
		return RectAround(cx, cy, s.Radius*2, s.Radius*2)
	}
	return RectAround(cx, cy, s.Width, s.Height)
}

// collideFuncs is indexed by [a.Type][b.Type]. A nil entry means the pair is
// unsupported and reports no collision; box-vs-circle is intentionally left
// empty, so adding it later is a single table entry.
var collideFuncs = [shapeTypeCount][shapeTypeCount]func(a, b *Shape) bool{
	ShapeBox:    {ShapeBox: collideBoxBox},
	ShapeCircle: {ShapeCircle: collideCircleCircle},
}

// CollidesWith reports whether the two shapes overlap. Pairs without a table
// entry (box vs circle) always report false.
func (s *Shape) CollidesWith(other *Shape) bool {
	if other == nil {
		return false
	}
	fn := collideFuncs[s.Type][other.Type]
	if fn == nil {
		return false
	}
	return fn(s, other)
}

func collideBoxBox(a, b *Shape) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// collideCircleCircle compares entity center distance against the radius sum
// with a strict less-than: touching circles do not collide. Offsets do not
// participate in the circle test, only in Bounds.
func collideCircleCircle(a, b *Shape) bool {
	dx := a.entity.X - b.entity.X
	dy := a.entity.Y - b.entity.Y
	return math.Sqrt(dx*dx+dy*dy) < a.Radius+b.Radius
}
