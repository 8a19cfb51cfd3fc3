package rowan

// gravity is the downward acceleration added to every non-static body each
// tick, scaled by the body's GravityScale.
const gravity = 9.81

// Body gives an entity force/velocity motion. Exactly one entity owns a body;
// the body's entity pointer is a non-owning back-reference.
type Body struct {
	entity *Entity

	Velocity     Vec2
	Acceleration Vec2 // accumulated since the last Step, reset after integrating
	Mass         float64
	GravityScale float64
	Friction     float64
	Restitution  float64 // part of the data model; the integrator does not read it
	Static       bool
}

// NewBody creates a body with unit mass and attaches it to the entity.
func NewBody(e *Entity) *Body {
	b := &Body{
		entity:       e,
		Mass:         1,
		GravityScale: 1,
		Friction:     0.1,
		Restitution:  0.5,
	}
	e.Body = b
	return b
}

// Entity returns the entity this body moves.
func (b *Body) Entity() *Entity {
	return b.entity
}

// ApplyForce accumulates force/mass into the acceleration for the next Step.
// No-op on static bodies.
func (b *Body) ApplyForce(fx, fy float64) {
	if b.Static {
		return
	}
	b.Acceleration.X += fx / b.Mass
	b.Acceleration.Y += fy / b.Mass
}

// Step integrates one tick in fixed order: gravity into acceleration,
// acceleration into velocity, friction damping, velocity into position,
// then the acceleration reset. Static bodies never integrate.
//
// Friction is an unconditional (1 - Friction) multiply on both axes every
// tick, independent of dt. Trajectories depend on that exact per-tick decay,
// so it is deliberately not rescaled by dt.
func (b *Body) Step(dt float64) {
	if b.Static {
		return
	}

	b.Acceleration.Y += gravity * b.GravityScale

	b.Velocity.X += b.Acceleration.X * dt
	b.Velocity.Y += b.Acceleration.Y * dt

	b.Velocity.X *= 1 - b.Friction
	b.Velocity.Y *= 1 - b.Friction

	b.entity.X += b.Velocity.X * dt
	b.entity.Y += b.Velocity.Y * dt

	b.Acceleration = Vec2{}
}
