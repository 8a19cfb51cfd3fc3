package rowan

import "testing"

func circleAt(x, y, r float64) *Shape {
	e := NewEntity("c")
	e.X, e.Y = x, y
	return NewCircleShape(e, r)
}

func boxAt(x, y, w, h float64) *Shape {
	e := NewEntity("b")
	e.X, e.Y = x, y
	return NewBoxShape(e, w, h)
}

func TestCircleCircleStrictBoundary(t *testing.T) {
	a := circleAt(0, 0, 5)

	// Centers exactly one radius sum apart: touching, not colliding.
	b := circleAt(10, 0, 5)
	if a.CollidesWith(b) {
		t.Error("touching circles (distance == radius sum) must not collide")
	}

	c := circleAt(9.99, 0, 5)
	if !a.CollidesWith(c) {
		t.Error("circles 9.99 apart with radius sum 10 must collide")
	}
}

func TestBoxBoxIntersection(t *testing.T) {
	a := boxAt(0, 0, 10, 10)

	b := boxAt(8, 0, 10, 10)
	if !a.CollidesWith(b) {
		t.Error("overlapping boxes must collide")
	}

	// Boxes sharing only an edge count as colliding; the box boundary is
	// inclusive, unlike the strict circle test.
	adjacent := boxAt(10, 0, 10, 10)
	if !a.CollidesWith(adjacent) {
		t.Error("edge-adjacent boxes must collide")
	}

	far := boxAt(100, 100, 10, 10)
	if a.CollidesWith(far) {
		t.Error("distant boxes must not collide")
	}
}

func TestCrossVariantPairsNeverCollide(t *testing.T) {
	box := boxAt(0, 0, 100, 100)
	circle := circleAt(0, 0, 5)

	// Fully overlapping, but the pair has no dispatch entry.
	if box.CollidesWith(circle) {
		t.Error("box vs circle must report false")
	}
	if circle.CollidesWith(box) {
		t.Error("circle vs box must report false")
	}
}

func TestCollidesWithNil(t *testing.T) {
	if circleAt(0, 0, 5).CollidesWith(nil) {
		t.Error("nil shape must not collide")
	}
}

func TestShapeBounds(t *testing.T) {
	b := boxAt(10, 20, 4, 6)
	b.Offset = Vec2{X: 1, Y: -1}
	got := b.Bounds()
	want := Rect{X: 9, Y: 16, Width: 4, Height: 6}
	if got != want {
		t.Errorf("box Bounds() = %v, want %v", got, want)
	}

	c := circleAt(0, 0, 5)
	got = c.Bounds()
	want = Rect{X: -5, Y: -5, Width: 10, Height: 10}
	if got != want {
		t.Errorf("circle Bounds() = %v, want %v", got, want)
	}
}

func TestCircleTestIgnoresOffset(t *testing.T) {
	a := circleAt(0, 0, 5)
	b := circleAt(10, 0, 5)
	// Offsets move Bounds but not the circle pair test.
	b.Offset = Vec2{X: -6}
	if a.CollidesWith(b) {
		t.Error("circle pair test uses entity centers, not offsets")
	}
}

func TestShapeAttachesToEntity(t *testing.T) {
	e := NewEntity("hit")
	s := NewCircleShape(e, 3)
	if e.Shape != s {
		t.Error("entity should reference its shape")
	}
	if s.Entity() != e {
		t.Error("shape should reference its entity")
	}
}
