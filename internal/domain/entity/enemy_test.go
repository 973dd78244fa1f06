package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnemy(t *testing.T) {
	enemy := NewEnemy(3, Vec2{X: 100, Y: 200}, 8, 12, 50)

	require.NotNil(t, enemy)
	assert.Equal(t, EntityID(3), enemy.ID)
	assert.Equal(t, Vec2{X: 100, Y: 200}, enemy.Position)
	assert.Equal(t, 50, enemy.Health)
	assert.Equal(t, 50, enemy.MaxHealth)
	assert.True(t, enemy.Active)
}

func TestEnemy_ApplyDamage(t *testing.T) {
	enemy := NewEnemy(1, Vec2{}, 8, 8, 50)

	enemy.ApplyDamage(20)
	assert.Equal(t, 30, enemy.Health)
	assert.InDelta(t, 0.2, enemy.HitTimer, 0.001)
	assert.True(t, enemy.IsAlive())

	enemy.ApplyDamage(40)
	assert.Equal(t, 0, enemy.Health, "health floors at zero")
	assert.False(t, enemy.IsAlive())
}

func TestEnemy_ApplyDamage_Inactive(t *testing.T) {
	enemy := NewEnemy(1, Vec2{}, 8, 8, 50)
	enemy.Active = false

	enemy.ApplyDamage(20)

	assert.Equal(t, 50, enemy.Health)
	assert.False(t, enemy.IsAlive())
}

func TestEnemy_Update(t *testing.T) {
	enemy := NewEnemy(1, Vec2{}, 8, 8, 50)
	enemy.ApplyDamage(1)

	enemy.Update(0.1)
	assert.InDelta(t, 0.1, enemy.HitTimer, 0.001)

	enemy.Update(0.5)
	assert.Zero(t, enemy.HitTimer)
}

func TestEnemy_IsDamageable(t *testing.T) {
	var _ Damageable = (*Enemy)(nil)
}
