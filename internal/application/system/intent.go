package system

import "github.com/younwookim/rockman/internal/domain/entity"

// Intent represents a request the core hands to the physics world
type Intent interface {
	isIntent()
}

// MoveIntent sets the horizontal velocity of a body.
// The vertical component belongs to the physics world and is left alone.
type MoveIntent struct {
	EntityID entity.EntityID
	VX       float64
}

func (MoveIntent) isIntent() {}

// JumpIntent applies a single upward impulse to a body
type JumpIntent struct {
	EntityID entity.EntityID
	Impulse  float64 // magnitude, always upward
}

func (JumpIntent) isIntent() {}

// SpawnIntent asks for a projectile body to be instantiated
type SpawnIntent struct {
	Owner       entity.EntityID
	Position    entity.Vec2
	Impulse     entity.Vec2 // applied once at spawn
	AttackValue int
	VisualScale float64
	Facing      entity.Facing
	FlipX       bool
}

func (SpawnIntent) isIntent() {}

// DestroyIntent removes a body from the physics world
type DestroyIntent struct {
	EntityID entity.EntityID
}

func (DestroyIntent) isIntent() {}
