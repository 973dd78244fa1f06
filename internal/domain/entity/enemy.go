package entity

// Damageable is the capability a combat target exposes to projectiles
type Damageable interface {
	ApplyDamage(amount int)
}

// Enemy represents a combat target. It has no behaviour of its own beyond
// taking damage.
type Enemy struct {
	ID       EntityID
	Position Vec2
	HalfW    float64
	HalfH    float64

	MaxHealth int
	Health    int
	Active    bool

	HitTimer float64 // flash after being hit (seconds)
}

// NewEnemy creates a new enemy with full health
func NewEnemy(id EntityID, pos Vec2, halfW, halfH float64, maxHealth int) *Enemy {
	return &Enemy{
		ID:        id,
		Position:  pos,
		HalfW:     halfW,
		HalfH:     halfH,
		MaxHealth: maxHealth,
		Health:    maxHealth,
		Active:    true,
	}
}

// ApplyDamage subtracts health and starts the hit flash
func (e *Enemy) ApplyDamage(amount int) {
	if !e.Active {
		return
	}
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
	e.HitTimer = 0.2
}

// Update decays the hit flash
func (e *Enemy) Update(dt float64) {
	if e.HitTimer > 0 {
		e.HitTimer -= dt
		if e.HitTimer < 0 {
			e.HitTimer = 0
		}
	}
}

// IsAlive returns true if enemy is still alive
func (e *Enemy) IsAlive() bool {
	return e.Health > 0 && e.Active
}
