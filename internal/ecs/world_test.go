package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/rockman/internal/domain/entity"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Kind)
	assert.NotNil(t, w.Projectiles)
	assert.NotNil(t, w.Targets)
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld()

	id1 := w.CreateSurface(entity.SurfaceFloor)
	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld()
	enemy := w.CreateEnemy(entity.Vec2{X: 10, Y: 20}, 8, 8, 30)

	require.True(t, w.Exists(enemy.ID))

	w.DestroyEntity(enemy.ID)

	assert.False(t, w.Exists(enemy.ID))
	_, hasEnemy := w.Enemies[enemy.ID]
	assert.False(t, hasEnemy)
	_, hasTarget := w.Targets[enemy.ID]
	assert.False(t, hasTarget)
	assert.Equal(t, entity.KindNone, w.KindOf(enemy.ID))
}

func TestCreatePlayer(t *testing.T) {
	w := NewWorld()

	id := w.CreatePlayer()

	assert.Equal(t, id, w.PlayerID)
	assert.Equal(t, entity.KindPlayer, w.KindOf(id))

	w.DestroyEntity(id)
	assert.Equal(t, entity.NoEntity, w.PlayerID)
}

func TestCreateSurface(t *testing.T) {
	w := NewWorld()

	id := w.CreateSurface(entity.SurfaceJumpPad)

	assert.Equal(t, entity.KindSurface, w.KindOf(id))
	assert.Equal(t, entity.SurfaceJumpPad, w.Surface[id])
}

func TestCreateProjectile(t *testing.T) {
	w := NewWorld()
	owner := w.CreatePlayer()

	p := w.CreateProjectile(func(id EntityID) *entity.Projectile {
		return entity.NewProjectile(id, owner, entity.Vec2{}, entity.FacingRight, 12, 2, 0)
	})

	require.NotNil(t, p)
	assert.Equal(t, EntityID(2), p.ID)
	assert.Equal(t, entity.KindProjectile, w.KindOf(p.ID))
	assert.Same(t, p, w.Projectiles[p.ID])
	assert.Equal(t, 1, w.CountProjectiles())
}

func TestTarget(t *testing.T) {
	w := NewWorld()
	player := w.CreatePlayer()
	floor := w.CreateSurface(entity.SurfaceFloor)
	enemy := w.CreateEnemy(entity.Vec2{}, 8, 8, 30)

	target, ok := w.Target(enemy.ID)
	require.True(t, ok)
	assert.Same(t, enemy, target)

	_, ok = w.Target(player)
	assert.False(t, ok, "player is not a combat target")

	_, ok = w.Target(floor)
	assert.False(t, ok, "surface is not a combat target")

	_, ok = w.Target(EntityID(999))
	assert.False(t, ok, "unknown entity is not a combat target")
}

func TestProjectileIDs_Sorted(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 20; i++ {
		w.CreateProjectile(func(id EntityID) *entity.Projectile {
			return entity.NewProjectile(id, 0, entity.Vec2{}, entity.FacingRight, 10, 1, 0)
		})
	}
	w.CreateEnemy(entity.Vec2{}, 4, 4, 1)

	ids := w.ProjectileIDs()

	require.Len(t, ids, 20)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
	assert.Len(t, w.EnemyIDs(), 1)
	assert.Equal(t, 1, w.CountEnemies())
}
