package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// NoEntity is the zero ID, never handed out by the registry
const NoEntity EntityID = 0

// EntityKind classifies what an entity is for collision dispatch
type EntityKind int

const (
	KindNone EntityKind = iota
	KindPlayer
	KindProjectile
	KindEnemy   // combat target
	KindSurface // static ground geometry
)

// String returns the string representation of the kind
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindProjectile:
		return "Projectile"
	case KindEnemy:
		return "Enemy"
	case KindSurface:
		return "Surface"
	default:
		return "None"
	}
}

// IsCombatTarget returns true if projectiles may damage this kind
func (k EntityKind) IsCombatTarget() bool {
	return k == KindEnemy
}

// SurfaceKind classifies static geometry hit by the ground probe
type SurfaceKind int

const (
	SurfaceNone SurfaceKind = iota
	SurfaceFloor
	SurfaceJumpPad
	SurfaceWall // solid, but not standable for grounding purposes
)

// String returns the string representation of the surface kind
func (s SurfaceKind) String() string {
	switch s {
	case SurfaceFloor:
		return "Floor"
	case SurfaceJumpPad:
		return "JumpPad"
	case SurfaceWall:
		return "Wall"
	default:
		return "None"
	}
}

// IsGround returns true for surfaces that count as support
func (s SurfaceKind) IsGround() bool {
	return s == SurfaceFloor || s == SurfaceJumpPad
}

// LayerMask selects which collision layers a query considers
type LayerMask uint

const (
	LayerDefault LayerMask = 1 << 0
	LayerGround  LayerMask = 1 << 8
	LayerActors  LayerMask = 1 << 9
)

// Facing is the binary horizontal orientation
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right, -1 for left
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Rotation returns the rotation about the vertical axis in degrees (0 or 180)
func (f Facing) Rotation() float64 {
	if f == FacingLeft {
		return 180
	}
	return 0
}

// String returns the string representation of the facing
func (f Facing) String() string {
	if f == FacingLeft {
		return "Left"
	}
	return "Right"
}

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Local converts a local-space offset into world space for the given facing.
// Facing left is a 180° turn about the vertical axis, which mirrors X.
func (f Facing) Local(offset Vec2) Vec2 {
	return Vec2{X: offset.X * f.Sign(), Y: offset.Y}
}
