package playing

import "github.com/younwookim/rockman/internal/application/system"

const (
	attackPoseDuration = 0.2  // seconds
	walkCycle          = 0.25 // seconds per step
)

// animator is the scene's animation collaborator. There is no sprite
// sheet, so it only keeps the state the draw code needs.
type animator struct {
	bools      map[system.AnimParam]bool
	attackTime float64
	walkTime   float64
}

func newAnimator() *animator {
	return &animator{bools: make(map[system.AnimParam]bool)}
}

// SetBool implements system.Animator
func (a *animator) SetBool(param system.AnimParam, value bool) {
	a.bools[param] = value
}

// Trigger implements system.Animator
func (a *animator) Trigger(param system.AnimParam) {
	if param == system.AnimAttack {
		a.attackTime = attackPoseDuration
	}
}

func (a *animator) update(dt float64) {
	if a.attackTime > 0 {
		a.attackTime -= dt
		if a.attackTime < 0 {
			a.attackTime = 0
		}
	}
	if a.bools[system.AnimIsMoving] {
		a.walkTime += dt
	} else {
		a.walkTime = 0
	}
}

func (a *animator) moving() bool {
	return a.bools[system.AnimIsMoving]
}

func (a *animator) attacking() bool {
	return a.attackTime > 0
}

// bob returns the vertical walk offset in pixels
func (a *animator) bob() float64 {
	if !a.moving() {
		return 0
	}
	if int(a.walkTime/walkCycle)%2 == 0 {
		return 0
	}
	return -1
}

func (a *animator) reset() {
	clear(a.bools)
	a.attackTime = 0
	a.walkTime = 0
}
