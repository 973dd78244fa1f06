package system

import "github.com/younwookim/rockman/internal/domain/entity"

// GroundProber answers point/radius overlap queries against a layer mask.
// ok is false when nothing was hit.
type GroundProber interface {
	Probe(origin entity.Vec2, radius float64, mask entity.LayerMask) (kind entity.SurfaceKind, ok bool)
}

// BodyDriver drives the player's rigid body
type BodyDriver interface {
	BodyState(id entity.EntityID) (position, velocity entity.Vec2)
	SetVelocityX(intent MoveIntent)
	ApplyImpulse(intent JumpIntent)
}

// ProjectileBodies creates and removes projectile bodies
type ProjectileBodies interface {
	SpawnProjectile(id entity.EntityID, intent SpawnIntent)
	Destroy(intent DestroyIntent)
}

// ProjectileSpawner turns a spawn request into a live projectile
type ProjectileSpawner interface {
	Spawn(intent SpawnIntent) entity.EntityID
}

// Effects receives fire-and-forget charge and fire notifications. Each sink
// reacts in its own medium, so PlayFireSound is a flash for the VFX sink.
type Effects interface {
	BeginChargeEffect()
	EndChargeEffect()
	PlayFireSound()
}

// AnimParam names an animator parameter
type AnimParam string

const (
	AnimIsMoving AnimParam = "isMoving"
	AnimAttack   AnimParam = "attack"
)

// Animator receives animation-state notifications
type Animator interface {
	SetBool(param AnimParam, value bool)
	Trigger(param AnimParam)
}

// MultiEffects fans notifications out to several sinks
type MultiEffects []Effects

func (m MultiEffects) BeginChargeEffect() {
	for _, e := range m {
		e.BeginChargeEffect()
	}
}

func (m MultiEffects) EndChargeEffect() {
	for _, e := range m {
		e.EndChargeEffect()
	}
}

func (m MultiEffects) PlayFireSound() {
	for _, e := range m {
		e.PlayFireSound()
	}
}

// NopEffects discards all effect notifications
type NopEffects struct{}

func (NopEffects) BeginChargeEffect() {}
func (NopEffects) EndChargeEffect()   {}
func (NopEffects) PlayFireSound()     {}

// NopAnimator discards all animation notifications
type NopAnimator struct{}

func (NopAnimator) SetBool(AnimParam, bool) {}
func (NopAnimator) Trigger(AnimParam)       {}
