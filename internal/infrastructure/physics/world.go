// Package physics is the chipmunk-backed physics collaborator. It owns the
// rigid bodies, answers ground probes and reports projectile contacts.
// Screen coordinates are used throughout, so +Y points down.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/rockman/internal/application/system"
	"github.com/younwookim/rockman/internal/domain/entity"
)

const (
	collisionTypeSurface cp.CollisionType = iota + 1
	collisionTypePlayer
	collisionTypeProjectile
	collisionTypeEnemy
)

// Shapes in the same non-zero group never collide. The player and its
// projectiles share one so shots pass through their owner.
const actorGroup uint = 1

const allCategories = ^uint(0)

// Config holds the physics world settings
type Config struct {
	Gravity          float64 // px/s², applied along +Y
	Iterations       int
	ProjectileRadius float64 // base radius, multiplied by VisualScale
	IgnoreGravity    bool    // projectiles fly straight
}

// shapeTag is stored in cp.Shape.UserData
type shapeTag struct {
	ID      entity.EntityID
	Surface entity.SurfaceKind
}

// World wraps a chipmunk space
type World struct {
	space  *cp.Space
	config Config

	bodies map[entity.EntityID]*cp.Body
	shapes map[entity.EntityID][]*cp.Shape

	stepping bool
	pending  []entity.EntityID

	// OnCollision receives projectile contacts as they begin, with the
	// projectile first
	OnCollision func(self, other entity.EntityID)
}

// NewWorld creates an empty space with gravity and collision handlers set up
func NewWorld(cfg Config) *World {
	w := &World{
		space:  cp.NewSpace(),
		bodies: make(map[entity.EntityID]*cp.Body),
		shapes: make(map[entity.EntityID][]*cp.Shape),
	}
	w.SetConfig(cfg)
	w.setupHandlers()
	return w
}

// SetConfig applies new settings. Existing projectiles keep their radius.
func (w *World) SetConfig(cfg Config) {
	if cfg.Iterations <= 0 {
		cfg.Iterations = 10
	}
	w.config = cfg
	w.space.Iterations = uint(cfg.Iterations)
	w.space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})
}

// AddSurface adds a static box of ground geometry in the ground layer
func (w *World) AddSurface(id entity.EntityID, kind entity.SurfaceKind, min, max entity.Vec2) {
	bb := cp.BB{L: min.X, B: min.Y, R: max.X, T: max.Y}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSurface)
	shape.SetFilter(cp.ShapeFilter{Categories: uint(entity.LayerGround), Mask: allCategories})
	shape.UserData = shapeTag{ID: id, Surface: kind}
	w.space.AddShape(shape)
	w.shapes[id] = append(w.shapes[id], shape)
}

// AddPlayer creates the player's dynamic box body. Rotation is locked.
func (w *World) AddPlayer(id entity.EntityID, pos entity.Vec2, halfW, halfH float64) {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(toVector(pos))
	shape := cp.NewBox(body, halfW*2, halfH*2, 0)
	// Zero friction so the commanded horizontal velocity is what we get
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypePlayer)
	shape.SetFilter(cp.ShapeFilter{Group: actorGroup, Categories: uint(entity.LayerActors), Mask: allCategories})
	shape.UserData = shapeTag{ID: id}

	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.bodies[id] = body
	w.shapes[id] = []*cp.Shape{shape}
}

// AddEnemy adds a static box target
func (w *World) AddEnemy(id entity.EntityID, pos entity.Vec2, halfW, halfH float64) {
	bb := cp.BB{L: pos.X - halfW, B: pos.Y - halfH, R: pos.X + halfW, T: pos.Y + halfH}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetCollisionType(collisionTypeEnemy)
	shape.SetFilter(cp.ShapeFilter{Categories: uint(entity.LayerActors), Mask: allCategories})
	shape.UserData = shapeTag{ID: id}
	w.space.AddShape(shape)
	w.shapes[id] = []*cp.Shape{shape}
}

// Probe classifies the ground-layer shapes within radius of origin.
// Any ground surface in range wins over other hits, so a wall next to the
// floor never hides it. Implements system.GroundProber.
func (w *World) Probe(origin entity.Vec2, radius float64, mask entity.LayerMask) (entity.SurfaceKind, bool) {
	filter := cp.ShapeFilter{Categories: allCategories, Mask: uint(mask)}
	point := toVector(origin)
	radius = math.Max(radius, 0)

	kind := entity.SurfaceNone
	hit := false
	w.space.BBQuery(cp.NewBBForCircle(point, radius), filter, func(shape *cp.Shape, data interface{}) {
		if shape.PointQuery(point).Distance > radius {
			return
		}
		hit = true
		if kind.IsGround() {
			return
		}
		if tag, ok := shape.UserData.(shapeTag); ok {
			kind = tag.Surface
		}
	}, nil)
	return kind, hit
}

// BodyState returns the position and velocity of a body, zero if unknown
func (w *World) BodyState(id entity.EntityID) (entity.Vec2, entity.Vec2) {
	body, ok := w.bodies[id]
	if !ok {
		return entity.Vec2{}, entity.Vec2{}
	}
	return fromVector(body.Position()), fromVector(body.Velocity())
}

// SetVelocityX replaces the horizontal velocity, keeping the vertical one
func (w *World) SetVelocityX(intent system.MoveIntent) {
	body, ok := w.bodies[intent.EntityID]
	if !ok {
		return
	}
	body.SetVelocity(intent.VX, body.Velocity().Y)
}

// ApplyImpulse pushes a body upward, which is -Y on screen
func (w *World) ApplyImpulse(intent system.JumpIntent) {
	body, ok := w.bodies[intent.EntityID]
	if !ok {
		return
	}
	body.ApplyImpulseAtWorldPoint(cp.Vector{X: 0, Y: -intent.Impulse}, body.Position())
}

// SpawnProjectile creates a circle body scaled by the visual scale and
// applies the launch impulse once
func (w *World) SpawnProjectile(id entity.EntityID, intent system.SpawnIntent) {
	radius := w.config.ProjectileRadius * intent.VisualScale
	if radius <= 0 {
		radius = 1
	}
	mass := 1.0
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(toVector(intent.Position))
	if w.config.IgnoreGravity {
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
		})
	}

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetCollisionType(collisionTypeProjectile)
	shape.SetFilter(cp.ShapeFilter{Group: actorGroup, Categories: uint(entity.LayerActors), Mask: allCategories})
	shape.UserData = shapeTag{ID: id}

	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.bodies[id] = body
	w.shapes[id] = []*cp.Shape{shape}

	body.ApplyImpulseAtWorldPoint(toVector(intent.Impulse), body.Position())
}

// Destroy removes an entity's body and shapes. During a step the removal
// waits until the step has finished.
func (w *World) Destroy(intent system.DestroyIntent) {
	if w.stepping {
		w.pending = append(w.pending, intent.EntityID)
		return
	}
	w.remove(intent.EntityID)
}

// Step advances the simulation and flushes deferred removals
func (w *World) Step(dt float64) {
	w.stepping = true
	w.space.Step(dt)
	w.stepping = false

	for _, id := range w.pending {
		w.remove(id)
	}
	w.pending = w.pending[:0]
}

// Has reports whether an entity still has shapes in the space
func (w *World) Has(id entity.EntityID) bool {
	_, ok := w.shapes[id]
	return ok
}

// ShapeCount returns the number of shapes owned by entities
func (w *World) ShapeCount() int {
	n := 0
	for _, s := range w.shapes {
		n += len(s)
	}
	return n
}

func (w *World) remove(id entity.EntityID) {
	for _, shape := range w.shapes[id] {
		w.space.RemoveShape(shape)
	}
	delete(w.shapes, id)

	if body, ok := w.bodies[id]; ok {
		w.space.RemoveBody(body)
		delete(w.bodies, id)
	}
}

func (w *World) setupHandlers() {
	projectileBegin := func(respond bool) func(*cp.Arbiter, *cp.Space, interface{}) bool {
		return func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			world, ok := userData.(*World)
			if !ok || world == nil {
				return respond
			}
			a, b := arb.Shapes()
			tagA, okA := a.UserData.(shapeTag)
			tagB, okB := b.UserData.(shapeTag)
			if !okA || !okB {
				return respond
			}
			if world.OnCollision != nil {
				world.OnCollision(tagA.ID, tagB.ID)
			}
			return respond
		}
	}

	// Shots pass through targets physically; damage is the only response
	enemyHandler := w.space.NewCollisionHandler(collisionTypeProjectile, collisionTypeEnemy)
	enemyHandler.UserData = w
	enemyHandler.BeginFunc = projectileBegin(false)

	surfaceHandler := w.space.NewCollisionHandler(collisionTypeProjectile, collisionTypeSurface)
	surfaceHandler.UserData = w
	surfaceHandler.BeginFunc = projectileBegin(true)

	// The player walks through training dummies
	playerEnemy := w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeEnemy)
	playerEnemy.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		return false
	}
}

func toVector(v entity.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromVector(v cp.Vector) entity.Vec2 {
	return entity.Vec2{X: v.X, Y: v.Y}
}
