package system

import (
	"github.com/younwookim/rockman/internal/domain/entity"
)

// PlayerController runs the per-tick player logic in a fixed order:
// body sync, ground sensor, motion, charge-fire
type PlayerController struct {
	player *entity.Player
	body   BodyDriver

	ground *GroundSensor
	motion *MotionController
	charge *ChargeFireController

	initialized bool
	ticks       uint64
}

// ControllerDeps bundles the collaborators a PlayerController needs
type ControllerDeps struct {
	Body     BodyDriver
	Prober   GroundProber
	Spawner  ProjectileSpawner
	Effects  Effects
	Animator Animator
}

// NewPlayerController wires the three per-tick components around a player
func NewPlayerController(player *entity.Player, deps ControllerDeps) *PlayerController {
	return &PlayerController{
		player: player,
		body:   deps.Body,
		ground: NewGroundSensor(deps.Prober),
		motion: NewMotionController(deps.Body, deps.Animator),
		charge: NewChargeFireController(deps.Spawner, deps.Effects, deps.Animator),
	}
}

// Initialize resets runtime state and takes the first ground reading.
// Safe to call again on restart.
func (c *PlayerController) Initialize() {
	c.player.ChargeTimer = 0
	c.player.IsGrounded = false
	c.player.Position, c.player.Velocity = c.body.BodyState(c.player.ID)
	c.ground.Update(c.player)
	c.charge.state = ChargeIdle
	c.ticks = 0
	c.initialized = true
}

// Tick runs one simulation step
func (c *PlayerController) Tick(dt float64, input InputState) {
	if !c.initialized {
		c.Initialize()
	}

	c.player.Position, c.player.Velocity = c.body.BodyState(c.player.ID)

	c.ground.Update(c.player)
	c.motion.Tick(c.player, input, dt)
	c.charge.Tick(c.player, input, dt)

	c.ticks++
}

// Player returns the controlled player
func (c *PlayerController) Player() *entity.Player {
	return c.player
}

// Charge returns the charge-fire controller
func (c *PlayerController) Charge() *ChargeFireController {
	return c.charge
}

// Ticks returns the number of ticks run since Initialize
func (c *PlayerController) Ticks() uint64 {
	return c.ticks
}
