package system

import (
	"github.com/younwookim/rockman/internal/domain/entity"
	"github.com/younwookim/rockman/internal/ecs"
)

// CombatResolver turns a projectile-vs-target contact into damage
type CombatResolver struct {
	world *ecs.World

	// OnDamage is called after damage was applied, if set
	OnDamage func(target entity.EntityID, amount int)
}

// NewCombatResolver creates a resolver looking targets up in the registry
func NewCombatResolver(world *ecs.World) *CombatResolver {
	return &CombatResolver{world: world}
}

// Resolve applies the projectile's attack to the target when the target is
// a combat target with the damage capability. A projectile never damages its
// owner. Returns true if damage was applied.
func (r *CombatResolver) Resolve(p *entity.Projectile, target entity.EntityID) bool {
	if p == nil || target == p.Owner || target == p.ID {
		return false
	}
	d, ok := r.world.Target(target)
	if !ok || d == nil {
		return false
	}
	d.ApplyDamage(p.AttackValue)
	if r.OnDamage != nil {
		r.OnDamage(target, p.AttackValue)
	}
	return true
}
