package system

import (
	"github.com/younwookim/rockman/internal/domain/entity"
	"github.com/younwookim/rockman/internal/ecs"
)

// ProjectileConfig holds projectile behaviour settings
type ProjectileConfig struct {
	Lifetime float64 // seconds, 0 = entity.ProjectileLifetime
	Pierce   bool    // keep flying after a hit, damaging each target it touches
}

type hitPair struct {
	projectile entity.EntityID
	target     entity.EntityID
}

// ProjectileSystem owns live projectiles after they are fired: it spawns
// them, counts their lifetimes down and forwards their collisions
type ProjectileSystem struct {
	config   ProjectileConfig
	world    *ecs.World
	bodies   ProjectileBodies
	resolver *CombatResolver

	// Pairs resolved during the current tick
	resolved map[hitPair]struct{}
}

// NewProjectileSystem creates a new projectile system
func NewProjectileSystem(cfg ProjectileConfig, world *ecs.World, bodies ProjectileBodies, resolver *CombatResolver) *ProjectileSystem {
	return &ProjectileSystem{
		config:   cfg,
		world:    world,
		bodies:   bodies,
		resolver: resolver,
		resolved: make(map[hitPair]struct{}),
	}
}

// SetConfig replaces the behaviour settings; live projectiles keep their
// remaining lifetime
func (s *ProjectileSystem) SetConfig(cfg ProjectileConfig) {
	s.config = cfg
}

// Spawn registers a projectile and asks the physics world for its body.
// Implements ProjectileSpawner.
func (s *ProjectileSystem) Spawn(intent SpawnIntent) entity.EntityID {
	p := s.world.CreateProjectile(func(id entity.EntityID) *entity.Projectile {
		return entity.NewProjectile(id, intent.Owner, intent.Position, intent.Facing,
			intent.AttackValue, intent.VisualScale, s.config.Lifetime)
	})
	s.bodies.SpawnProjectile(p.ID, intent)
	return p.ID
}

// Update counts lifetimes down and destroys expired projectiles.
// Also opens a new collision window for the coming physics step.
func (s *ProjectileSystem) Update(dt float64) {
	clear(s.resolved)

	for _, id := range s.world.ProjectileIDs() {
		p := s.world.Projectiles[id]
		if p.Update(dt) {
			s.destroy(id)
		}
	}
}

// SyncBodies copies body positions back into the projectile entities
func (s *ProjectileSystem) SyncBodies(driver BodyDriver) {
	for id, p := range s.world.Projectiles {
		p.Position, p.Velocity = driver.BodyState(id)
	}
}

// OnCollision is the collision-enter callback registered with the physics
// world. Either handle may be the projectile.
func (s *ProjectileSystem) OnCollision(self, other entity.EntityID) {
	p, ok := s.world.Projectiles[self]
	if !ok {
		p, ok = s.world.Projectiles[other]
		if !ok {
			return
		}
		self, other = other, self
	}
	if !p.Active || !s.world.KindOf(other).IsCombatTarget() {
		return
	}

	pair := hitPair{projectile: self, target: other}
	if _, seen := s.resolved[pair]; seen {
		return
	}
	s.resolved[pair] = struct{}{}

	if s.resolver.Resolve(p, other) && !s.config.Pierce {
		p.Deactivate()
		s.destroy(self)
	}
}

// Count returns the number of live projectiles
func (s *ProjectileSystem) Count() int {
	return s.world.CountProjectiles()
}

func (s *ProjectileSystem) destroy(id entity.EntityID) {
	s.bodies.Destroy(DestroyIntent{EntityID: id})
	s.world.DestroyEntity(id)
}
