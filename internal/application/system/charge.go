package system

import "github.com/younwookim/rockman/internal/domain/entity"

// ChargeState represents the state of the charge-fire cycle
type ChargeState int

const (
	ChargeIdle ChargeState = iota
	ChargeCharging
	ChargeReleased // transient, only observable from inside a tick
)

// String returns the string representation of the charge state
func (s ChargeState) String() string {
	switch s {
	case ChargeIdle:
		return "Idle"
	case ChargeCharging:
		return "Charging"
	case ChargeReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// ChargeFireController tracks how long fire is held and spawns a projectile
// on release. There is no minimum charge and no cooldown.
type ChargeFireController struct {
	state    ChargeState
	spawner  ProjectileSpawner
	effects  Effects
	animator Animator

	// LastShot is the most recent spawn request, for HUD and tests
	LastShot SpawnIntent
	Shots    int
}

// NewChargeFireController creates a controller in the Idle state
func NewChargeFireController(spawner ProjectileSpawner, effects Effects, animator Animator) *ChargeFireController {
	if effects == nil {
		effects = NopEffects{}
	}
	if animator == nil {
		animator = NopAnimator{}
	}
	return &ChargeFireController{
		state:    ChargeIdle,
		spawner:  spawner,
		effects:  effects,
		animator: animator,
	}
}

// State returns the current state
func (c *ChargeFireController) State() ChargeState {
	return c.state
}

// Tick advances the state machine by one frame
func (c *ChargeFireController) Tick(player *entity.Player, input InputState, dt float64) {
	switch c.state {
	case ChargeIdle:
		if !input.FireDown {
			return
		}
		c.state = ChargeCharging
		c.effects.BeginChargeEffect()
		// Down and up in the same tick still fires, at zero charge
		if input.FireUp {
			c.release(player)
		}

	case ChargeCharging:
		switch {
		case input.FireUp:
			c.release(player)
		case input.FireHeld:
			player.ChargeTimer = entity.ClampCharge(player.ChargeTimer + dt)
		default:
			// Level dropped without an up edge (lost focus, cut replay)
			c.release(player)
		}
	}
}

// Preview returns the attack value and scale a release would produce now
func (c *ChargeFireController) Preview(player *entity.Player) (attack int, scale float64) {
	return entity.ChargeAttack(player.AttackBase, player.ChargeTimer)
}

// release performs the whole fire sequence within the current tick
func (c *ChargeFireController) release(player *entity.Player) {
	c.state = ChargeReleased

	c.effects.EndChargeEffect()
	c.effects.PlayFireSound()
	c.animator.Trigger(AnimAttack)

	player.ChargeTimer = entity.ClampCharge(player.ChargeTimer)
	attack, scale := entity.ChargeAttack(player.AttackBase, player.ChargeTimer)

	intent := SpawnIntent{
		Owner:       player.ID,
		Position:    player.MuzzlePoint(),
		Impulse:     entity.Vec2{X: player.Facing.Sign() * player.Config.ProjectileSpeed},
		AttackValue: attack,
		VisualScale: scale,
		Facing:      player.Facing,
		FlipX:       player.Facing == entity.FacingLeft,
	}
	c.spawner.Spawn(intent)
	c.LastShot = intent
	c.Shots++

	player.ChargeTimer = 0
	c.state = ChargeIdle
}
