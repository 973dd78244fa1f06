// Package ecs is the entity registry shared by the controller, the
// projectile system and the physics world. Components are resolved once
// when an entity is created and looked up by ID afterwards.
package ecs

import (
	"sort"

	"github.com/younwookim/rockman/internal/domain/entity"
)

// EntityID aliases the domain ID so callers need only one import
type EntityID = entity.EntityID

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Kind        map[EntityID]entity.EntityKind
	Surface     map[EntityID]entity.SurfaceKind
	Projectiles map[EntityID]*entity.Projectile
	Enemies     map[EntityID]*entity.Enemy
	Targets     map[EntityID]entity.Damageable

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:      1, // 0 is "nil"
		Kind:        make(map[EntityID]entity.EntityKind),
		Surface:     make(map[EntityID]entity.SurfaceKind),
		Projectiles: make(map[EntityID]*entity.Projectile),
		Enemies:     make(map[EntityID]*entity.Enemy),
		Targets:     make(map[EntityID]entity.Damageable),
	}
}

// NewEntity returns a new unique entity ID (never recycled)
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Kind, id)
	delete(w.Surface, id)
	delete(w.Projectiles, id)
	delete(w.Enemies, id)
	delete(w.Targets, id)
	if w.PlayerID == id {
		w.PlayerID = entity.NoEntity
	}
}

// Exists checks if an entity has a Kind component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Kind[id]
	return ok
}

// KindOf returns the kind of an entity, KindNone if unknown
func (w *World) KindOf(id EntityID) entity.EntityKind {
	return w.Kind[id]
}

// CreatePlayer registers the player entity
func (w *World) CreatePlayer() EntityID {
	id := w.NewEntity()
	w.Kind[id] = entity.KindPlayer
	w.PlayerID = id
	return id
}

// CreateSurface registers a piece of static ground geometry
func (w *World) CreateSurface(kind entity.SurfaceKind) EntityID {
	id := w.NewEntity()
	w.Kind[id] = entity.KindSurface
	w.Surface[id] = kind
	return id
}

// CreateEnemy registers a combat target with the damage capability
func (w *World) CreateEnemy(pos entity.Vec2, halfW, halfH float64, maxHealth int) *entity.Enemy {
	id := w.NewEntity()
	e := entity.NewEnemy(id, pos, halfW, halfH, maxHealth)
	w.Kind[id] = entity.KindEnemy
	w.Enemies[id] = e
	w.Targets[id] = e
	return e
}

// CreateProjectile registers a projectile built by the caller with a fresh ID
func (w *World) CreateProjectile(build func(id EntityID) *entity.Projectile) *entity.Projectile {
	id := w.NewEntity()
	p := build(id)
	w.Kind[id] = entity.KindProjectile
	w.Projectiles[id] = p
	return p
}

// Target returns the damage capability of a combat target
func (w *World) Target(id EntityID) (entity.Damageable, bool) {
	if !w.KindOf(id).IsCombatTarget() {
		return nil, false
	}
	t, ok := w.Targets[id]
	return t, ok
}

// ProjectileIDs returns live projectile IDs in ascending order so that
// iteration is deterministic across runs and replays
func (w *World) ProjectileIDs() []EntityID {
	return sortedKeys(w.Projectiles)
}

// EnemyIDs returns live enemy IDs in ascending order
func (w *World) EnemyIDs() []EntityID {
	return sortedKeys(w.Enemies)
}

// CountProjectiles returns the number of live projectiles
func (w *World) CountProjectiles() int {
	return len(w.Projectiles)
}

// CountEnemies returns the number of registered enemies
func (w *World) CountEnemies() int {
	return len(w.Enemies)
}

func sortedKeys[V any](m map[EntityID]V) []EntityID {
	ids := make([]EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
