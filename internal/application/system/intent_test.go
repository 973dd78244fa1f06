package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/rockman/internal/domain/entity"
)

func TestIntentsAreSealed(t *testing.T) {
	intents := []Intent{
		MoveIntent{EntityID: 1, VX: 80},
		JumpIntent{EntityID: 1, Impulse: 320},
		SpawnIntent{Owner: 1, AttackValue: 10, VisualScale: 1},
		DestroyIntent{EntityID: 2},
	}

	for _, i := range intents {
		i.isIntent() // Should not panic
	}
	assert.Len(t, intents, 4)
}

func TestSpawnIntent_Fields(t *testing.T) {
	intent := SpawnIntent{
		Owner:       entity.EntityID(3),
		Position:    entity.Vec2{X: 10, Y: 20},
		Impulse:     entity.Vec2{X: -400},
		AttackValue: 14,
		VisualScale: 3.4,
		Facing:      entity.FacingLeft,
		FlipX:       true,
	}

	assert.Equal(t, entity.EntityID(3), intent.Owner)
	assert.Equal(t, -400.0, intent.Impulse.X)
	assert.Equal(t, 0.0, intent.Impulse.Y)
	assert.True(t, intent.FlipX)
}
