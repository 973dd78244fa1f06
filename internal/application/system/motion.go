package system

import "github.com/younwookim/rockman/internal/domain/entity"

// MotionController turns horizontal input into velocity and handles jumps
type MotionController struct {
	body     BodyDriver
	animator Animator
}

// NewMotionController creates a new motion controller
func NewMotionController(body BodyDriver, animator Animator) *MotionController {
	if animator == nil {
		animator = NopAnimator{}
	}
	return &MotionController{body: body, animator: animator}
}

// Tick applies one frame of movement input. Must run after the ground
// sensor so the jump check sees this tick's grounded flag.
func (c *MotionController) Tick(player *entity.Player, input InputState, dt float64) {
	h := clampAxis(input.Horizontal)

	// Frame-time scaled, same as the tuning values expect
	vx := h * player.Config.MovementSpeed * dt
	c.body.SetVelocityX(MoveIntent{EntityID: player.ID, VX: vx})
	player.Velocity.X = vx

	if input.FaceRight {
		player.Facing = entity.FacingRight
	} else if input.FaceLeft {
		player.Facing = entity.FacingLeft
	}

	// No double jump, no buffering
	if input.Jump && player.IsGrounded {
		c.body.ApplyImpulse(JumpIntent{EntityID: player.ID, Impulse: player.Config.JumpImpulse})
	}

	c.animator.SetBool(AnimIsMoving, h != 0)
}

func clampAxis(h float64) float64 {
	if h < -1 {
		return -1
	}
	if h > 1 {
		return 1
	}
	if h != h { // NaN
		return 0
	}
	return h
}
