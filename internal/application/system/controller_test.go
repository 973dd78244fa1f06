package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/rockman/internal/domain/entity"
)

type controllerFixture struct {
	ctrl    *PlayerController
	player  *entity.Player
	phys    *fakePhysics
	spawner *fakeSpawner
	effects *fakeEffects
	anim    *fakeAnimator
}

func newControllerFixture() *controllerFixture {
	f := &controllerFixture{
		player:  createTestPlayer(),
		phys:    newFakePhysics(),
		spawner: &fakeSpawner{},
		effects: &fakeEffects{},
		anim:    newFakeAnimator(),
	}
	f.phys.positions[f.player.ID] = f.player.Position
	f.ctrl = NewPlayerController(f.player, ControllerDeps{
		Body:     f.phys,
		Prober:   f.phys,
		Spawner:  f.spawner,
		Effects:  f.effects,
		Animator: f.anim,
	})
	return f
}

func TestPlayerController_Initialize(t *testing.T) {
	f := newControllerFixture()
	f.player.ChargeTimer = 3
	f.player.IsGrounded = true
	f.phys.airborne()

	f.ctrl.Initialize()

	assert.Equal(t, 0.0, f.player.ChargeTimer)
	assert.False(t, f.player.IsGrounded)
	assert.Equal(t, ChargeIdle, f.ctrl.Charge().State())
	assert.Len(t, f.phys.probes, 1, "first ground reading taken")
	assert.Equal(t, uint64(0), f.ctrl.Ticks())
}

func TestPlayerController_TickAutoInitializes(t *testing.T) {
	f := newControllerFixture()
	f.player.ChargeTimer = 3

	f.ctrl.Tick(testDT, InputState{})

	assert.Equal(t, 0.0, f.player.ChargeTimer)
	assert.Equal(t, uint64(1), f.ctrl.Ticks())
}

func TestPlayerController_GroundBeforeJump(t *testing.T) {
	f := newControllerFixture()
	f.phys.airborne()
	f.ctrl.Initialize()

	// Land and press jump in the same tick: the fresh reading allows the jump
	f.phys.groundAt(entity.SurfaceFloor)
	f.ctrl.Tick(testDT, InputState{Jump: true})
	assert.Len(t, f.phys.jumps(), 1)

	// Leave the ground: the next press does nothing
	f.phys.airborne()
	f.ctrl.Tick(testDT, InputState{Jump: true})
	assert.Len(t, f.phys.jumps(), 1, "no double jump")
}

func TestPlayerController_SyncsBodyState(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Initialize()

	f.phys.positions[f.player.ID] = entity.Vec2{X: 250, Y: 80}
	f.ctrl.Tick(testDT, InputState{FireDown: true, FireUp: true})

	require.Len(t, f.spawner.intents, 1)
	assert.Equal(t, entity.Vec2{X: 260, Y: 78}, f.spawner.intents[0].Position, "muzzle follows the body")
}

func TestPlayerController_FacingAppliesBeforeFire(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Initialize()

	f.ctrl.Tick(testDT, InputState{FaceLeft: true, FireDown: true, FireUp: true})

	require.Len(t, f.spawner.intents, 1)
	shot := f.spawner.intents[0]
	assert.Equal(t, entity.FacingLeft, shot.Facing)
	assert.Equal(t, -400.0, shot.Impulse.X)
	assert.True(t, shot.FlipX)
}

func TestPlayerController_ChargeWhileMoving(t *testing.T) {
	f := newControllerFixture()
	f.phys.groundAt(entity.SurfaceFloor)
	f.ctrl.Initialize()

	f.ctrl.Tick(0.5, InputState{Horizontal: 1, FireDown: true, FireHeld: true})
	for i := 0; i < 4; i++ {
		f.ctrl.Tick(0.5, InputState{Horizontal: 1, FireHeld: true})
	}
	f.ctrl.Tick(0.5, InputState{Horizontal: 1, FireUp: true, Jump: true})

	require.Len(t, f.spawner.intents, 1)
	assert.Equal(t, 14, f.spawner.intents[0].AttackValue, "2s charge")
	assert.Equal(t, 3.0, f.spawner.intents[0].VisualScale)
	assert.Len(t, f.phys.jumps(), 1)
	assert.True(t, f.anim.bools[AnimIsMoving])
	assert.Equal(t, []AnimParam{AnimAttack}, f.anim.triggers)
	assert.Equal(t, []string{"begin", "end", "fire"}, f.effects.calls)
	assert.Equal(t, uint64(6), f.ctrl.Ticks())
}

func TestPlayerController_ReinitializeMidCharge(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Tick(0.5, InputState{FireDown: true, FireHeld: true})
	f.ctrl.Tick(0.5, InputState{FireHeld: true})
	require.Equal(t, ChargeCharging, f.ctrl.Charge().State())

	f.ctrl.Initialize()
	f.ctrl.Tick(0.5, InputState{FireUp: true})

	assert.Equal(t, ChargeIdle, f.ctrl.Charge().State())
	assert.Empty(t, f.spawner.intents, "restart cancels the pending shot")
}

func TestMultiEffects_FansOut(t *testing.T) {
	a, b := &fakeEffects{}, &fakeEffects{}
	m := MultiEffects{a, b}

	m.BeginChargeEffect()
	m.PlayFireSound()
	m.EndChargeEffect()

	assert.Equal(t, []string{"begin", "fire", "end"}, a.calls)
	assert.Equal(t, a.calls, b.calls)
}
