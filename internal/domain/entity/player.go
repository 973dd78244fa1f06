package entity

// MaxChargeTime is the cap on the charge timer in seconds
const MaxChargeTime = 5.0

// PlayerConfig holds the tunable parameters of the player controller
type PlayerConfig struct {
	MovementSpeed      float64 // 0-5000, horizontal speed scale
	JumpImpulse        float64 // 0-3000, vertical impulse magnitude
	ProjectileSpeed    float64 // 0-5000, launch impulse magnitude
	GroundSensorOffset Vec2    // local space, mirrored with facing
	GroundSensorRadius float64
	MuzzleOffset       Vec2 // local space, mirrored with facing
	MaxHP              int  // 0-200
	AttackBase         int
}

// PropKind identifies a pickup the player can consume
type PropKind int

const (
	PropNone PropKind = iota
	PropHealth
	PropEnergy
)

// Player represents the player avatar state owned by the controller
type Player struct {
	ID       EntityID
	Position Vec2
	Velocity Vec2
	Facing   Facing

	HP    int
	MaxHP int

	IsGrounded  bool
	ChargeTimer float64 // seconds held, 0 <= ChargeTimer <= MaxChargeTime
	AttackBase  int

	Config PlayerConfig
}

// NewPlayer creates a new player facing right at the given position
func NewPlayer(id EntityID, pos Vec2, cfg PlayerConfig) *Player {
	return &Player{
		ID:         id,
		Position:   pos,
		Facing:     FacingRight,
		HP:         cfg.MaxHP,
		MaxHP:      cfg.MaxHP,
		AttackBase: cfg.AttackBase,
		Config:     cfg,
	}
}

// SensorOrigin returns the world-space centre of the ground probe
func (p *Player) SensorOrigin() Vec2 {
	return p.Position.Add(p.Facing.Local(p.Config.GroundSensorOffset))
}

// MuzzlePoint returns the world-space projectile spawn point
func (p *Player) MuzzlePoint() Vec2 {
	return p.Position.Add(p.Facing.Local(p.Config.MuzzleOffset))
}

// ApplyConfig swaps tuning values in place, keeping runtime state.
// HP is clamped to the new ceiling.
func (p *Player) ApplyConfig(cfg PlayerConfig) {
	p.Config = cfg
	p.MaxHP = cfg.MaxHP
	p.AttackBase = cfg.AttackBase
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// Hit is the damage-taken extension point. Not implemented.
func (p *Player) Hit(damage int) {}

// Dead reports whether the player is dead. Not implemented, always false.
func (p *Player) Dead() bool {
	return false
}

// EatProp is the pickup extension point. Not implemented.
func (p *Player) EatProp(prop PropKind) {}
