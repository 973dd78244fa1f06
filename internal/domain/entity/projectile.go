package entity

import "math"

// ProjectileLifetime is how long a projectile lives before it is destroyed
const ProjectileLifetime = 2.0

// lifetimeEpsilon absorbs float drift from summing fixed frame steps
const lifetimeEpsilon = 1e-6

// Projectile represents a fired charge shot.
// Motion is driven by the physics world after the spawn impulse; the
// projectile itself only tracks its fixed attack and its lifetime.
type Projectile struct {
	ID       EntityID
	Owner    EntityID
	Position Vec2
	Velocity Vec2
	Facing   Facing

	AttackValue int     // fixed at spawn
	VisualScale float64 // 1 + charge time, applied to both axes
	Lifetime    float64 // remaining seconds
	Active      bool
}

// ChargeAttack returns the attack value and visual scale for a charge time.
// The time is clamped into [0, MaxChargeTime] first, then rounded half away
// from zero.
func ChargeAttack(attackBase int, chargeTime float64) (attack int, scale float64) {
	t := ClampCharge(chargeTime)
	return attackBase + int(math.Round(t))*2, 1 + t
}

// ClampCharge clamps a charge time into [0, MaxChargeTime]
func ClampCharge(t float64) float64 {
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	if t > MaxChargeTime {
		return MaxChargeTime
	}
	return t
}

// NewProjectile creates an active projectile with a full lifetime
func NewProjectile(id, owner EntityID, pos Vec2, facing Facing, attack int, scale, lifetime float64) *Projectile {
	if lifetime <= 0 {
		lifetime = ProjectileLifetime
	}
	return &Projectile{
		ID:          id,
		Owner:       owner,
		Position:    pos,
		Facing:      facing,
		AttackValue: attack,
		VisualScale: scale,
		Lifetime:    lifetime,
		Active:      true,
	}
}

// Update counts the lifetime down. Returns true once the projectile expired.
func (p *Projectile) Update(dt float64) bool {
	if !p.Active {
		return true
	}
	p.Lifetime -= dt
	if p.Lifetime <= lifetimeEpsilon {
		p.Lifetime = 0
		p.Active = false
		return true
	}
	return false
}

// FlipX returns true when the sprite should be mirrored
func (p *Projectile) FlipX() bool {
	return p.Facing == FacingLeft
}

// Deactivate marks the projectile as inactive
func (p *Projectile) Deactivate() {
	p.Active = false
}
